package service

import "budgetbook/internal/store"

// Services bundles the four domain services over a shared store.
type Services struct {
	Users      *UserService
	Budgets    *BudgetService
	Categories *CategoryService
	Expenses   *ExpenseService
}

// New wires the services over the given store.
func New(st *store.Store) *Services {
	budgets := &BudgetService{store: st}
	return &Services{
		Users:      &UserService{store: st, budgets: budgets},
		Budgets:    budgets,
		Categories: &CategoryService{store: st},
		Expenses:   &ExpenseService{store: st},
	}
}
