package model

import "fmt"

// Category is a global, reusable tag applied to expenses. Names are unique
// case-insensitively. A category cannot be deleted while expenses reference
// it.
type Category struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

// Row renders the category as an id-prefixed table row for selection lists.
func (c Category) Row() string {
	return fmt.Sprintf("%-5d | %-30s", c.ID, c.Name)
}
