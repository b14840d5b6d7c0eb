package store

import "budgetbook/internal/model"

// AddUser appends the user and persists the document.
func (s *Store) AddUser(u model.User) error {
	s.doc.Users = append(s.doc.Users, u)
	return s.persist()
}

// AddBudget appends the budget and persists the document.
func (s *Store) AddBudget(b model.Budget) error {
	s.doc.Budgets = append(s.doc.Budgets, b)
	return s.persist()
}

// AddCategory appends the category and persists the document.
func (s *Store) AddCategory(c model.Category) error {
	s.doc.Categories = append(s.doc.Categories, c)
	return s.persist()
}

// AddExpense appends the expense and persists the document.
func (s *Store) AddExpense(e model.Expense) error {
	s.doc.Expenses = append(s.doc.Expenses, e)
	return s.persist()
}

// RemoveUser removes the user record only. Cascading removal of the user's
// budgets and expenses is the domain layer's responsibility and must happen
// before this call.
func (s *Store) RemoveUser(id int) (bool, error) {
	for i, u := range s.doc.Users {
		if u.ID == id {
			s.doc.Users = append(s.doc.Users[:i], s.doc.Users[i+1:]...)
			return true, s.persist()
		}
	}
	return false, nil
}

// RemoveBudget removes the budget record only; its expenses must already be
// gone.
func (s *Store) RemoveBudget(id int) (bool, error) {
	for i, b := range s.doc.Budgets {
		if b.ID == id {
			s.doc.Budgets = append(s.doc.Budgets[:i], s.doc.Budgets[i+1:]...)
			return true, s.persist()
		}
	}
	return false, nil
}

// RemoveCategory removes the category unless any expense still references
// it. The dependency guard runs before any mutation; a guarded category
// leaves the collection untouched.
func (s *Store) RemoveCategory(id int) (bool, error) {
	if s.CategoryInUse(id) {
		return false, nil
	}
	for i, c := range s.doc.Categories {
		if c.ID == id {
			s.doc.Categories = append(s.doc.Categories[:i], s.doc.Categories[i+1:]...)
			return true, s.persist()
		}
	}
	return false, nil
}

// RemoveExpense removes the expense with the given id.
func (s *Store) RemoveExpense(id int) (bool, error) {
	for i, e := range s.doc.Expenses {
		if e.ID == id {
			s.doc.Expenses = append(s.doc.Expenses[:i], s.doc.Expenses[i+1:]...)
			return true, s.persist()
		}
	}
	return false, nil
}

// RemoveExpensesByBudgetID removes every expense charged against the budget
// and returns how many were removed.
func (s *Store) RemoveExpensesByBudgetID(budgetID int) (int, error) {
	kept := s.doc.Expenses[:0]
	removed := 0
	for _, e := range s.doc.Expenses {
		if e.BudgetID == budgetID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.doc.Expenses = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, s.persist()
}

// UpdateUserName sets the display name of the user with the given id.
func (s *Store) UpdateUserName(id int, name string) (bool, error) {
	for i := range s.doc.Users {
		if s.doc.Users[i].ID == id {
			s.doc.Users[i].Name = name
			return true, s.persist()
		}
	}
	return false, nil
}

// UpdateCategoryName sets the name of the category with the given id.
func (s *Store) UpdateCategoryName(id int, name string) (bool, error) {
	for i := range s.doc.Categories {
		if s.doc.Categories[i].ID == id {
			s.doc.Categories[i].Name = name
			return true, s.persist()
		}
	}
	return false, nil
}

// UpdateBudgetAmount sets the allowance of the budget with the given id.
func (s *Store) UpdateBudgetAmount(id int, amount model.Amount) (bool, error) {
	for i := range s.doc.Budgets {
		if s.doc.Budgets[i].ID == id {
			s.doc.Budgets[i].Amount = amount
			return true, s.persist()
		}
	}
	return false, nil
}

// UpdateExpense applies mutate to the expense with the given id and persists
// the document. The mutation must not change the expense's id.
func (s *Store) UpdateExpense(id int, mutate func(*model.Expense)) (bool, error) {
	for i := range s.doc.Expenses {
		if s.doc.Expenses[i].ID == id {
			mutate(&s.doc.Expenses[i])
			s.doc.Expenses[i].ID = id
			return true, s.persist()
		}
	}
	return false, nil
}
