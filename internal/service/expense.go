package service

import (
	"fmt"
	"log/slog"
	"strings"

	"budgetbook/internal/model"
	"budgetbook/internal/store"
)

// ExpenseService adds, updates and deletes expenses. An expense's date must
// fall within its budget's inclusive date range, checked against effective
// values on both create and update.
type ExpenseService struct {
	store *store.Store
}

// Add validates and records a new expense against the budget. Validation
// order: budget exists, description non-blank, date within the budget's
// range, amount >= 0, category exists.
func (s *ExpenseService) Add(budgetID, categoryID int, description string, date model.Date, amount model.Amount) Outcome[model.Expense] {
	budget, ok := s.store.BudgetByID(budgetID)
	if !ok {
		return failure[model.Expense]("Budget not found.")
	}
	if strings.TrimSpace(description) == "" {
		return failure[model.Expense]("Description cannot be empty or whitespace.")
	}
	if !budget.Contains(date) {
		return failure[model.Expense]("Date must be within budget start and end date.")
	}
	if amount.Negative() {
		return failure[model.Expense]("Amount cannot be negative.")
	}
	category, ok := s.store.CategoryByID(categoryID)
	if !ok {
		return failure[model.Expense]("Category not found.")
	}

	e := model.Expense{
		ID:          s.store.NextExpenseID(),
		BudgetID:    budgetID,
		CategoryID:  categoryID,
		Category:    &category,
		Amount:      amount,
		Date:        date,
		Description: description,
	}
	if err := s.store.AddExpense(e); err != nil {
		return persistFailure[model.Expense](err)
	}

	slog.Info("expense added", "id", e.ID, "budget_id", budgetID, "amount", amount.String())
	return success(fmt.Sprintf("Expense '%s' has been successfully added.", description), e)
}

// ByBudget returns the expenses charged against the budget.
func (s *ExpenseService) ByBudget(budgetID int) []model.Expense {
	return s.store.ExpensesByBudgetID(budgetID)
}

// Update rewrites an expense. Blank description, date or amount inputs keep
// the existing values, as does a zero category id; the date-range and
// non-negativity invariants are re-checked against the effective values.
func (s *ExpenseService) Update(id, categoryID int, description, dateRaw, amountRaw string) Outcome[model.Expense] {
	e, ok := s.store.ExpenseByID(id)
	if !ok {
		return failure[model.Expense]("Expense not found.")
	}
	budget, ok := s.store.BudgetByID(e.BudgetID)
	if !ok {
		return failure[model.Expense]("Budget not found.")
	}

	newDescription := e.Description
	if strings.TrimSpace(description) != "" {
		newDescription = description
	}

	newDate := e.Date
	if strings.TrimSpace(dateRaw) != "" {
		parsed, err := model.ParseDate(dateRaw)
		if err != nil {
			return failure[model.Expense]("Invalid date format. Please use dd-mm-yyyy format.")
		}
		newDate = parsed
	}

	newAmount := e.Amount
	if strings.TrimSpace(amountRaw) != "" {
		parsed, err := model.ParseAmount(amountRaw)
		if err != nil {
			return failure[model.Expense]("Invalid amount format. Please enter a valid number.")
		}
		newAmount = parsed
	}

	newCategoryID := e.CategoryID
	if categoryID != 0 {
		if _, ok := s.store.CategoryByID(categoryID); !ok {
			return failure[model.Expense]("Category not found.")
		}
		newCategoryID = categoryID
	}

	if !budget.Contains(newDate) {
		return failure[model.Expense]("Date must be within budget start and end date.")
	}
	if newAmount.Negative() {
		return failure[model.Expense]("Amount cannot be negative.")
	}

	updated, err := s.store.UpdateExpense(id, func(exp *model.Expense) {
		exp.CategoryID = newCategoryID
		exp.Description = newDescription
		exp.Date = newDate
		exp.Amount = newAmount
	})
	if err != nil {
		return persistFailure[model.Expense](err)
	}
	if !updated {
		return failure[model.Expense]("Expense not found.")
	}

	e, _ = s.store.ExpenseByID(id)
	slog.Info("expense updated", "id", id, "budget_id", e.BudgetID)
	return success(fmt.Sprintf("Expense '%s' has been successfully updated.", newDescription), e)
}

// Delete removes the expense with the given id.
func (s *ExpenseService) Delete(id int) Outcome[model.Expense] {
	e, ok := s.store.ExpenseByID(id)
	if !ok {
		return failure[model.Expense]("There was a problem deleting the expense.")
	}

	removed, err := s.store.RemoveExpense(id)
	if err != nil {
		return persistFailure[model.Expense](err)
	}
	if !removed {
		return failure[model.Expense]("There was a problem deleting the expense.")
	}

	slog.Info("expense deleted", "id", id, "budget_id", e.BudgetID)
	return success("Expense removed successfully.", e)
}
