package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetCreate_Validation(t *testing.T) {
	svc := newTestServices(t)
	u, _, _ := juneSetup(t, svc)

	out := svc.Budgets.Create(u.ID, "  ", date(t, "01-06-2024"), date(t, "30-06-2024"), amount(t, "100"))
	assert.False(t, out.OK)
	assert.Equal(t, "Name cannot be empty or whitespace.", out.Message)

	out = svc.Budgets.Create(u.ID, "Backwards", date(t, "30-06-2024"), date(t, "01-06-2024"), amount(t, "100"))
	assert.False(t, out.OK)
	assert.Equal(t, "End date cannot be earlier than start date.", out.Message)

	out = svc.Budgets.Create(u.ID, "Negative", date(t, "01-06-2024"), date(t, "30-06-2024"), amount(t, "-1"))
	assert.False(t, out.OK)
	assert.Equal(t, "Amount cannot be negative.", out.Message)
}

func TestBudgetCreate_SingleDayRangeAllowed(t *testing.T) {
	svc := newTestServices(t)
	u, _, _ := juneSetup(t, svc)

	out := svc.Budgets.Create(u.ID, "One day", date(t, "15-06-2024"), date(t, "15-06-2024"), amount(t, "50"))
	assert.True(t, out.OK, out.Message)
}

func TestBudgetSelect(t *testing.T) {
	svc := newTestServices(t)
	sess := NewSession()
	_, b, _ := juneSetup(t, svc)

	out := svc.Budgets.Select(sess, b.ID)
	require.True(t, out.OK)
	selected, ok := sess.SelectedBudget()
	require.True(t, ok)
	assert.Equal(t, b.ID, selected.ID)

	out = svc.Budgets.Select(sess, 99)
	assert.False(t, out.OK)
	assert.Equal(t, "Budget not found.", out.Message)
}

func TestBudgetTotalSpent(t *testing.T) {
	svc := newTestServices(t)
	_, b, c := juneSetup(t, svc)

	assert.Equal(t, "0", svc.Budgets.TotalSpent(b.ID).String())

	require.True(t, svc.Expenses.Add(b.ID, c.ID, "Lunch", date(t, "15-06-2024"), amount(t, "20")).OK)
	require.True(t, svc.Expenses.Add(b.ID, c.ID, "Dinner", date(t, "16-06-2024"), amount(t, "35.5")).OK)

	assert.Equal(t, "55.5", svc.Budgets.TotalSpent(b.ID).String())
}

// Blank input keeps the current amount and still reports success.
func TestBudgetUpdateAmount_BlankKeepsValue(t *testing.T) {
	svc := newTestServices(t)
	_, b, _ := juneSetup(t, svc)

	out := svc.Budgets.UpdateAmount(b.ID, "")
	require.True(t, out.OK)
	assert.Equal(t, "500", out.Value.Amount.String())

	stored, ok := svc.Budgets.Summarize(b.ID)
	require.True(t, ok)
	assert.Equal(t, "500", stored.Budget.Amount.String())
}

func TestBudgetUpdateAmount(t *testing.T) {
	svc := newTestServices(t)
	_, b, _ := juneSetup(t, svc)

	out := svc.Budgets.UpdateAmount(b.ID, "750.25")
	require.True(t, out.OK)
	assert.Equal(t, "Budget amount for 'June' has been successfully updated.", out.Message)

	sum, ok := svc.Budgets.Summarize(b.ID)
	require.True(t, ok)
	assert.Equal(t, "750.25", sum.Budget.Amount.String())
}

func TestBudgetUpdateAmount_Rejections(t *testing.T) {
	svc := newTestServices(t)
	_, b, _ := juneSetup(t, svc)

	out := svc.Budgets.UpdateAmount(b.ID, "abc")
	assert.False(t, out.OK)
	assert.Equal(t, "Invalid amount format. Please enter a valid number.", out.Message)

	out = svc.Budgets.UpdateAmount(b.ID, "-5")
	assert.False(t, out.OK)
	assert.Equal(t, "Amount cannot be negative.", out.Message)

	out = svc.Budgets.UpdateAmount(99, "10")
	assert.False(t, out.OK)
	assert.Equal(t, "Budget not found.", out.Message)
}

func TestBudgetSummarize(t *testing.T) {
	svc := newTestServices(t)
	_, b, food := juneSetup(t, svc)
	drinks := svc.Categories.Create("Drinks")
	require.True(t, drinks.OK)

	require.True(t, svc.Expenses.Add(b.ID, food.ID, "Lunch", date(t, "10-06-2024"), amount(t, "100")).OK)
	require.True(t, svc.Expenses.Add(b.ID, drinks.Value.ID, "Coffee", date(t, "11-06-2024"), amount(t, "150")).OK)

	sum, ok := svc.Budgets.Summarize(b.ID)
	require.True(t, ok)
	assert.Equal(t, "250", sum.TotalSpent.String())
	assert.Equal(t, "250", sum.Remaining.String())
	assert.Equal(t, "50", sum.PercentUsed.String())
	assert.Equal(t, "50", sum.PercentRemaining.String())

	require.Len(t, sum.Breakdown, 2)
	assert.Equal(t, "Drinks", sum.Breakdown[0].CategoryName, "breakdown sorted by total descending")
	assert.Equal(t, "150", sum.Breakdown[0].Total.String())
	assert.Equal(t, "Food", sum.Breakdown[1].CategoryName)
	assert.Equal(t, "100", sum.Breakdown[1].Total.String())
}

func TestBudgetSummarize_ZeroAllowance(t *testing.T) {
	svc := newTestServices(t)
	u, _, food := juneSetup(t, svc)

	created := svc.Budgets.Create(u.ID, "Zero", date(t, "01-06-2024"), date(t, "30-06-2024"), amount(t, "0"))
	require.True(t, created.OK)
	require.True(t, svc.Expenses.Add(created.Value.ID, food.ID, "Lunch", date(t, "10-06-2024"), amount(t, "10")).OK)

	sum, ok := svc.Budgets.Summarize(created.Value.ID)
	require.True(t, ok)
	assert.Equal(t, "0", sum.PercentUsed.String(), "percent of a zero allowance is zero, not a fault")
}
