package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"budgetbook/internal/model"
	"budgetbook/internal/store"
)

// BudgetService creates and deletes budgets and computes the derived budget
// figures (total spent, remaining balance, percent used, per-category
// breakdown).
type BudgetService struct {
	store *store.Store
}

// Create validates and adds a new budget for the given user. Validation
// order: name non-blank, start <= end, amount >= 0.
func (s *BudgetService) Create(userID int, name string, start, end model.Date, amount model.Amount) Outcome[model.Budget] {
	if strings.TrimSpace(name) == "" {
		return failure[model.Budget]("Name cannot be empty or whitespace.")
	}
	if start.After(end.Time) {
		return failure[model.Budget]("End date cannot be earlier than start date.")
	}
	if amount.Negative() {
		return failure[model.Budget]("Amount cannot be negative.")
	}

	b := model.Budget{
		ID:        s.store.NextBudgetID(),
		UserID:    userID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Amount:    amount,
	}
	if err := s.store.AddBudget(b); err != nil {
		return persistFailure[model.Budget](err)
	}

	slog.Info("budget created", "id", b.ID, "user_id", userID, "name", name)
	return success(fmt.Sprintf("Budget '%s' has been successfully created.", name), b)
}

// ListByUser returns the budgets owned by the given user.
func (s *BudgetService) ListByUser(userID int) []model.Budget {
	return s.store.BudgetsByUserID(userID)
}

// Select resolves the budget by id and makes it the session's selection.
func (s *BudgetService) Select(sess *Session, id int) Outcome[model.Budget] {
	b, ok := s.store.BudgetByID(id)
	if !ok {
		return failure[model.Budget]("Budget not found.")
	}
	sess.SetSelectedBudget(b)
	return success(fmt.Sprintf("Selected budget '%s'.", b.Name), b)
}

// DeleteByUser removes every budget owned by the user, expenses first, one
// budget at a time. The explicit sequence keeps the store free of cascade
// knowledge.
func (s *BudgetService) DeleteByUser(userID int) error {
	for _, b := range s.store.BudgetsByUserID(userID) {
		if _, err := s.store.RemoveExpensesByBudgetID(b.ID); err != nil {
			return err
		}
		if _, err := s.store.RemoveBudget(b.ID); err != nil {
			return err
		}
		slog.Info("budget deleted", "id", b.ID, "user_id", userID)
	}
	return nil
}

// UpdateAmount sets a new allowance on the budget. A blank input keeps the
// current amount and still succeeds; anything else must parse as a
// non-negative decimal.
func (s *BudgetService) UpdateAmount(budgetID int, raw string) Outcome[model.Budget] {
	b, ok := s.store.BudgetByID(budgetID)
	if !ok {
		return failure[model.Budget]("Budget not found.")
	}

	amount := b.Amount
	if strings.TrimSpace(raw) != "" {
		parsed, err := model.ParseAmount(raw)
		if err != nil {
			return failure[model.Budget]("Invalid amount format. Please enter a valid number.")
		}
		amount = parsed
	}
	if amount.Negative() {
		return failure[model.Budget]("Amount cannot be negative.")
	}

	if _, err := s.store.UpdateBudgetAmount(b.ID, amount); err != nil {
		return persistFailure[model.Budget](err)
	}
	b.Amount = amount

	slog.Info("budget amount updated", "id", b.ID, "amount", amount.String())
	return success(fmt.Sprintf("Budget amount for '%s' has been successfully updated.", b.Name), b)
}

// TotalSpent sums the amounts of all expenses charged against the budget.
func (s *BudgetService) TotalSpent(budgetID int) model.Amount {
	total := model.AmountFromInt(0)
	for _, e := range s.store.ExpensesByBudgetID(budgetID) {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryTotal is one row of a budget's per-category breakdown.
type CategoryTotal struct {
	CategoryName string       `json:"category"`
	Total        model.Amount `json:"total"`
}

// Summary holds every derived figure for one budget.
type Summary struct {
	Budget           model.Budget    `json:"budget"`
	TotalSpent       model.Amount    `json:"total_spent"`
	Remaining        model.Amount    `json:"remaining"`
	PercentUsed      model.Amount    `json:"percent_used"`
	PercentRemaining model.Amount    `json:"percent_remaining"`
	Breakdown        []CategoryTotal `json:"breakdown"`
}

// Summarize computes the derived figures for the budget: total spent,
// remaining balance, percent used (0 when the allowance is 0) and the
// per-category totals sorted by total descending.
func (s *BudgetService) Summarize(budgetID int) (Summary, bool) {
	b, ok := s.store.BudgetByID(budgetID)
	if !ok {
		return Summary{}, false
	}

	spent := s.TotalSpent(b.ID)
	pctUsed := spent.PercentOf(b.Amount)

	byCategory := map[string]model.Amount{}
	var names []string
	for _, e := range s.store.ExpensesByBudgetID(b.ID) {
		name := e.CategoryName()
		if _, seen := byCategory[name]; !seen {
			names = append(names, name)
		}
		byCategory[name] = byCategory[name].Add(e.Amount)
	}
	breakdown := make([]CategoryTotal, 0, len(names))
	for _, name := range names {
		breakdown = append(breakdown, CategoryTotal{CategoryName: name, Total: byCategory[name]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total.GreaterThan(breakdown[j].Total.Decimal)
	})

	return Summary{
		Budget:           b,
		TotalSpent:       spent,
		Remaining:        b.Amount.Sub(spent),
		PercentUsed:      pctUsed,
		PercentRemaining: model.AmountFromInt(100).Sub(pctUsed),
		Breakdown:        breakdown,
	}, true
}
