package store

import "budgetbook/internal/model"

// Users returns all users in insertion order.
func (s *Store) Users() []model.User {
	out := make([]model.User, len(s.doc.Users))
	copy(out, s.doc.Users)
	return out
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id int) (model.User, bool) {
	for _, u := range s.doc.Users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// UsernameTaken reports whether any user already holds the username,
// compared case-insensitively.
func (s *Store) UsernameTaken(username string) bool {
	for _, u := range s.doc.Users {
		if s.SameName(u.Username, username) {
			return true
		}
	}
	return false
}

// Budgets returns all budgets in insertion order.
func (s *Store) Budgets() []model.Budget {
	out := make([]model.Budget, len(s.doc.Budgets))
	copy(out, s.doc.Budgets)
	return out
}

// BudgetByID returns the budget with the given id.
func (s *Store) BudgetByID(id int) (model.Budget, bool) {
	for _, b := range s.doc.Budgets {
		if b.ID == id {
			return b, true
		}
	}
	return model.Budget{}, false
}

// BudgetsByUserID returns the budgets owned by the given user.
func (s *Store) BudgetsByUserID(userID int) []model.Budget {
	var out []model.Budget
	for _, b := range s.doc.Budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// Categories returns all categories in insertion order.
func (s *Store) Categories() []model.Category {
	out := make([]model.Category, len(s.doc.Categories))
	copy(out, s.doc.Categories)
	return out
}

// CategoryByID returns the category with the given id.
func (s *Store) CategoryByID(id int) (model.Category, bool) {
	for _, c := range s.doc.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// CategoryNameTaken reports whether any category already holds the name,
// compared case-insensitively.
func (s *Store) CategoryNameTaken(name string) bool {
	for _, c := range s.doc.Categories {
		if s.SameName(c.Name, name) {
			return true
		}
	}
	return false
}

// CategoryInUse reports whether any expense references the category.
func (s *Store) CategoryInUse(id int) bool {
	for _, e := range s.doc.Expenses {
		if e.CategoryID == id {
			return true
		}
	}
	return false
}

// Expenses returns all expenses with their category references resolved.
func (s *Store) Expenses() []model.Expense {
	out := make([]model.Expense, len(s.doc.Expenses))
	for i, e := range s.doc.Expenses {
		out[i] = s.resolve(e)
	}
	return out
}

// ExpenseByID returns the expense with the given id, category resolved.
func (s *Store) ExpenseByID(id int) (model.Expense, bool) {
	for _, e := range s.doc.Expenses {
		if e.ID == id {
			return s.resolve(e), true
		}
	}
	return model.Expense{}, false
}

// ExpensesByBudgetID returns the expenses charged against the given budget,
// category references resolved.
func (s *Store) ExpensesByBudgetID(budgetID int) []model.Expense {
	var out []model.Expense
	for _, e := range s.doc.Expenses {
		if e.BudgetID == budgetID {
			out = append(out, s.resolve(e))
		}
	}
	return out
}

// resolve attaches a fresh copy of the referenced category so renames are
// reflected on the next read rather than captured at insert time.
func (s *Store) resolve(e model.Expense) model.Expense {
	if c, ok := s.CategoryByID(e.CategoryID); ok {
		e.Category = &c
	}
	return e
}

// NextUserID returns max(existing)+1, or 1 for an empty collection.
func (s *Store) NextUserID() int {
	next := 1
	for _, u := range s.doc.Users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}

// NextBudgetID returns max(existing)+1, or 1 for an empty collection.
func (s *Store) NextBudgetID() int {
	next := 1
	for _, b := range s.doc.Budgets {
		if b.ID >= next {
			next = b.ID + 1
		}
	}
	return next
}

// NextCategoryID returns max(existing)+1, or 1 for an empty collection.
func (s *Store) NextCategoryID() int {
	next := 1
	for _, c := range s.doc.Categories {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

// NextExpenseID returns max(existing)+1, or 1 for an empty collection.
func (s *Store) NextExpenseID() int {
	next := 1
	for _, e := range s.doc.Expenses {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return next
}
