package model

import "fmt"

// Expense is a dated, categorized charge against a budget. Category is the
// resolved reference for display only; it is rebuilt from CategoryID when
// the document loads and never persisted.
type Expense struct {
	ID          int    `json:"Id"`
	BudgetID    int    `json:"BudgetId"`
	CategoryID  int    `json:"CategoryId"`
	Amount      Amount `json:"Amount"`
	Date        Date   `json:"Date"`
	Description string `json:"Description"`

	Category *Category `json:"-"`
}

// CategoryName returns the resolved category name, or a placeholder when the
// reference has not been resolved.
func (e Expense) CategoryName() string {
	if e.Category == nil {
		return "Unknown"
	}
	return e.Category.Name
}

// Row renders the expense as an id-prefixed table row for selection lists.
func (e Expense) Row() string {
	return fmt.Sprintf("%-5d | %-30s | %-20s | %-12s | %-10s",
		e.ID, e.Description, e.CategoryName(), e.Date, e.Amount)
}
