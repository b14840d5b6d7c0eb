package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"budgetbook/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data.json"), nil)
	require.NoError(t, err)
	return s
}

func amount(t *testing.T, raw string) model.Amount {
	t.Helper()
	a, err := model.ParseAmount(raw)
	require.NoError(t, err)
	return a
}

// seed populates the store with one user owning one budget, one category and
// one expense, all with id 1.
func seed(t *testing.T, s *Store) {
	t.Helper()
	require.NoError(t, s.AddUser(model.User{ID: 1, Username: "alice", Name: "Alice Smith"}))
	require.NoError(t, s.AddBudget(model.Budget{
		ID:        1,
		UserID:    1,
		Name:      "Groceries",
		StartDate: model.NewDate(2024, 1, 1),
		EndDate:   model.NewDate(2024, 1, 31),
		Amount:    amount(t, "500"),
	}))
	require.NoError(t, s.AddCategory(model.Category{ID: 1, Name: "Food"}))
	require.NoError(t, s.AddExpense(model.Expense{
		ID:          1,
		BudgetID:    1,
		CategoryID:  1,
		Amount:      amount(t, "12.5"),
		Date:        model.NewDate(2024, 1, 5),
		Description: "Milk",
	}))
}
