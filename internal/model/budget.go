package model

import "fmt"

// Budget is a named, date-bounded spending allowance owned by a user.
// StartDate <= EndDate and Amount >= 0 are enforced at creation.
type Budget struct {
	ID        int    `json:"Id"`
	UserID    int    `json:"UserId"`
	Name      string `json:"Name"`
	StartDate Date   `json:"StartDate"`
	EndDate   Date   `json:"EndDate"`
	Amount    Amount `json:"Amount"`
}

// Contains reports whether d falls within the budget's inclusive date range.
func (b Budget) Contains(d Date) bool {
	return d.WithinRange(b.StartDate, b.EndDate)
}

// Row renders the budget as an id-prefixed table row for selection lists.
func (b Budget) Row() string {
	return fmt.Sprintf("%-5d | %-30s | %-12s | %-12s | %-10s",
		b.ID, b.Name, b.StartDate, b.EndDate, b.Amount)
}
