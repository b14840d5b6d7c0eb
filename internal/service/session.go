package service

import "budgetbook/internal/model"

// Session holds the process-local selection state: the active user and the
// currently selected budget and category. Absence is represented by nil,
// never by a zero-id record.
//
// Snapshots returned by the accessors are cached copies for display. They
// are not authoritative; services re-resolve by id against the store before
// acting on them.
type Session struct {
	activeUser       *model.User
	selectedBudget   *model.Budget
	selectedCategory *model.Category
}

// NewSession returns a session with nothing selected.
func NewSession() *Session {
	return &Session{}
}

// ActiveUser returns the active user snapshot, if any.
func (s *Session) ActiveUser() (model.User, bool) {
	if s.activeUser == nil {
		return model.User{}, false
	}
	return *s.activeUser, true
}

// SetActiveUser makes u the active user and drops any budget selection,
// which belonged to the previous user's context.
func (s *Session) SetActiveUser(u model.User) {
	s.activeUser = &u
	s.selectedBudget = nil
}

// ClearActiveUser drops the active user and the selected budget.
func (s *Session) ClearActiveUser() {
	s.activeUser = nil
	s.selectedBudget = nil
}

// SelectedBudget returns the selected budget snapshot, if any.
func (s *Session) SelectedBudget() (model.Budget, bool) {
	if s.selectedBudget == nil {
		return model.Budget{}, false
	}
	return *s.selectedBudget, true
}

// SetSelectedBudget records b as the selected budget.
func (s *Session) SetSelectedBudget(b model.Budget) {
	s.selectedBudget = &b
}

// ClearSelectedBudget drops the budget selection.
func (s *Session) ClearSelectedBudget() {
	s.selectedBudget = nil
}

// SelectedCategory returns the selected category snapshot, if any.
func (s *Session) SelectedCategory() (model.Category, bool) {
	if s.selectedCategory == nil {
		return model.Category{}, false
	}
	return *s.selectedCategory, true
}

// SetSelectedCategory records c as the selected category.
func (s *Session) SetSelectedCategory(c model.Category) {
	s.selectedCategory = &c
}

// ClearSelectedCategory drops the category selection.
func (s *Session) ClearSelectedCategory() {
	s.selectedCategory = nil
}
