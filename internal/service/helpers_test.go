package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"budgetbook/internal/model"
	"budgetbook/internal/store"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"), nil)
	require.NoError(t, err)
	return New(st)
}

func amount(t *testing.T, raw string) model.Amount {
	t.Helper()
	a, err := model.ParseAmount(raw)
	require.NoError(t, err)
	return a
}

func date(t *testing.T, raw string) model.Date {
	t.Helper()
	d, err := model.ParseDate(raw)
	require.NoError(t, err)
	return d
}

// juneSetup builds the common fixture: alice with a June budget of 500 and a
// pre-existing Food category.
func juneSetup(t *testing.T, svc *Services) (user model.User, budget model.Budget, category model.Category) {
	t.Helper()

	created := svc.Users.Create("alice", "Alice A")
	require.True(t, created.OK, created.Message)
	user = created.Value

	cat := svc.Categories.Create("Food")
	require.True(t, cat.OK, cat.Message)
	category = cat.Value

	b := svc.Budgets.Create(user.ID, "June", date(t, "01-06-2024"), date(t, "30-06-2024"), amount(t, "500"))
	require.True(t, b.OK, b.Message)
	budget = b.Value
	return user, budget, category
}
