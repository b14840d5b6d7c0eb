package model

import "fmt"

// User owns budgets. Usernames are unique case-insensitively.
type User struct {
	ID       int    `json:"Id"`
	Username string `json:"Username"`
	Name     string `json:"Name"`
}

// Row renders the user as an id-prefixed table row for selection lists.
func (u User) Row() string {
	return fmt.Sprintf("%-5d | %-15s | %-20s", u.ID, u.Username, u.Name)
}
