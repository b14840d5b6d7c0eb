package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"budgetbook/internal/model"
	"budgetbook/internal/query"
	"budgetbook/internal/service"
)

// outcomeNotice turns a domain outcome into a dismissable notice, styling
// failures in the error color.
func outcomeNotice[T any](o service.Outcome[T]) *noticeFrame {
	if o.OK {
		return notice(o.Message)
	}
	return notice(errorStyle.Render(o.Message))
}

func requireDate(value string) string {
	if _, err := model.ParseDate(value); err != nil {
		return "Invalid date format. Please use dd-mm-yyyy format."
	}
	return ""
}

func requireAmount(value string) string {
	if _, err := model.ParseAmount(value); err != nil {
		return "Invalid amount format. Please enter a valid number."
	}
	return ""
}

func optionalDate(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return requireDate(value)
}

func optionalAmount(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return requireAmount(value)
}

// --- top level -------------------------------------------------------------

// mainMenu is the bottom frame. It can never be popped; leaving the program
// goes through the Exit item or ctrl+c.
func (m *Model) mainMenu() frame {
	return &menuFrame{
		title: "Main Menu",
		items: []menuItem{
			{label: "Budgets", action: func(m *Model) tea.Cmd {
				m.push(m.budgetsMenu())
				return nil
			}},
			{label: "Add, Filter and Sort Expenses", action: func(m *Model) tea.Cmd {
				if _, ok := m.sess.SelectedBudget(); !ok {
					m.push(notice(errorStyle.Render("No budget selected.")))
					return nil
				}
				m.push(m.selectedBudgetMenu())
				return nil
			}},
			{label: "Manage Categories", action: func(m *Model) tea.Cmd {
				m.push(m.categoriesMenu())
				return nil
			}},
			{label: "Switch User", action: func(m *Model) tea.Cmd {
				m.push(m.userSetupMenu())
				return nil
			}},
			{label: "Edit User", action: func(m *Model) tea.Cmd {
				m.push(m.renameUserForm())
				return nil
			}},
			{label: "Delete User", action: func(m *Model) tea.Cmd {
				m.push(m.deleteUserConfirm())
				return nil
			}},
			{label: "Exit", action: func(m *Model) tea.Cmd {
				return m.quit()
			}},
		},
	}
}

// --- users -----------------------------------------------------------------

// userSetupMenu picks or creates the active user. Back is only offered when
// a user is already active; on first launch the choice is mandatory.
func (m *Model) userSetupMenu() frame {
	_, hasUser := m.sess.ActiveUser()
	return &menuFrame{
		title:     "User Setup",
		allowBack: hasUser,
		items: []menuItem{
			{label: "Select Existing User", action: func(m *Model) tea.Cmd {
				users := m.svc.Users.List()
				if len(users) == 0 {
					m.push(notice("No users found. Create a user first."))
					return nil
				}
				items := make([]menuItem, 0, len(users))
				for _, u := range users {
					id := u.ID
					items = append(items, menuItem{label: u.Row(), action: func(m *Model) tea.Cmd {
						out := m.svc.Users.Select(m.sess, id)
						if !out.OK {
							m.push(outcomeNotice(out))
							return nil
						}
						m.popTo(1)
						return nil
					}})
				}
				m.push(&menuFrame{
					title:     "Select a User",
					header:    []string{userHeader},
					items:     items,
					allowBack: true,
				})
				return nil
			}},
			{label: "Create New User", action: func(m *Model) tea.Cmd {
				m.push(newForm("Create New User", []field{
					newField("Enter a username:", "username", nil),
					newField("Enter your name:", "name", nil),
				}, func(m *Model, values []string) tea.Cmd {
					out := m.svc.Users.Create(values[0], values[1])
					if !out.OK {
						m.push(outcomeNotice(out))
						return nil
					}
					m.svc.Users.Select(m.sess, out.Value.ID)
					m.popTo(1)
					m.push(notice(out.Message))
					return nil
				}))
				return nil
			}},
			{label: "Exit", action: func(m *Model) tea.Cmd {
				return m.quit()
			}},
		},
	}
}

func (m *Model) renameUserForm() frame {
	return newForm("Edit User", []field{
		newField("Enter the new name:", "name", nil),
	}, func(m *Model, values []string) tea.Cmd {
		m.push(outcomeNotice(m.svc.Users.Rename(m.sess, values[0])))
		return nil
	})
}

func (m *Model) deleteUserConfirm() frame {
	u, ok := m.sess.ActiveUser()
	if !ok {
		return notice(errorStyle.Render("No user selected."))
	}
	return &confirmFrame{
		question: fmt.Sprintf("Delete user '%s' and all their budgets and expenses?", u.Username),
		onYes: func(m *Model) tea.Cmd {
			out := m.svc.Users.Delete(m.sess)
			n := outcomeNotice(out)
			if out.OK {
				n.onDismiss = func(m *Model) tea.Cmd {
					m.push(m.userSetupMenu())
					return nil
				}
			}
			m.push(n)
			return nil
		},
	}
}

// --- budgets ---------------------------------------------------------------

func (m *Model) budgetsMenu() frame {
	return &menuFrame{
		title:     "Budgets",
		allowBack: true,
		items: []menuItem{
			{label: "View Budgets", action: func(m *Model) tea.Cmd {
				u, ok := m.sess.ActiveUser()
				if !ok {
					m.push(notice(errorStyle.Render("No user selected.")))
					return nil
				}
				budgets := m.svc.Budgets.ListByUser(u.ID)
				if len(budgets) == 0 {
					m.push(notice("No budgets found. Create a budget first."))
					return nil
				}
				items := make([]menuItem, 0, len(budgets))
				for _, b := range budgets {
					id := b.ID
					items = append(items, menuItem{label: b.Row(), action: func(m *Model) tea.Cmd {
						out := m.svc.Budgets.Select(m.sess, id)
						if !out.OK {
							m.push(outcomeNotice(out))
							return nil
						}
						m.push(m.selectedBudgetMenu())
						return nil
					}})
				}
				m.push(&menuFrame{
					title:     "Select a Budget",
					header:    []string{budgetHeader},
					items:     items,
					allowBack: true,
				})
				return nil
			}},
			{label: "Create Budget", action: func(m *Model) tea.Cmd {
				m.push(m.createBudgetForm())
				return nil
			}},
		},
	}
}

func (m *Model) createBudgetForm() frame {
	return newForm("Create Budget", []field{
		newField("Enter the budget name:", "name", nil),
		newField("Enter the start date (dd-mm-yyyy):", "dd-mm-yyyy", requireDate),
		newField("Enter the end date (dd-mm-yyyy):", "dd-mm-yyyy", requireDate),
		newField("Enter the budget amount:", "0.00", requireAmount),
	}, func(m *Model, values []string) tea.Cmd {
		u, ok := m.sess.ActiveUser()
		if !ok {
			m.push(notice(errorStyle.Render("No user selected.")))
			return nil
		}
		start, _ := model.ParseDate(values[1])
		end, _ := model.ParseDate(values[2])
		amount, _ := model.ParseAmount(values[3])
		m.push(outcomeNotice(m.svc.Budgets.Create(u.ID, values[0], start, end, amount)))
		return nil
	})
}

func (m *Model) selectedBudgetMenu() frame {
	b, _ := m.sess.SelectedBudget()
	return &menuFrame{
		title:     fmt.Sprintf("Budget '%s'", b.Name),
		allowBack: true,
		items: []menuItem{
			{label: "Add Expense", action: func(m *Model) tea.Cmd {
				m.startAddExpense(b.ID)
				return nil
			}},
			{label: "View Expenses", action: func(m *Model) tea.Cmd {
				m.startViewExpenses(b.ID)
				return nil
			}},
			{label: "Set Budget Amount", action: func(m *Model) tea.Cmd {
				m.push(newForm("Set Budget Amount", []field{
					newField("Enter the new budget amount:", "0.00", optionalAmount),
				}, func(m *Model, values []string) tea.Cmd {
					m.push(outcomeNotice(m.svc.Budgets.UpdateAmount(b.ID, values[0])))
					return nil
				}))
				return nil
			}},
			{label: "View Budget Summary", action: func(m *Model) tea.Cmd {
				sum, ok := m.svc.Budgets.Summarize(b.ID)
				if !ok {
					m.push(notice(errorStyle.Render("Budget not found.")))
					return nil
				}
				m.push(notice(m.summaryLines(sum)...))
				return nil
			}},
		},
	}
}

// --- categories ------------------------------------------------------------

func (m *Model) categoriesMenu() frame {
	return &menuFrame{
		title:     "Manage Categories",
		allowBack: true,
		items: []menuItem{
			{label: "View Categories", action: func(m *Model) tea.Cmd {
				start := m.depth()
				m.pushCategoryPicker("Select a Category", func(m *Model, id int) tea.Cmd {
					out := m.svc.Categories.Select(m.sess, id)
					if !out.OK {
						m.push(outcomeNotice(out))
						return nil
					}
					m.push(m.selectedCategoryMenu(id, start))
					return nil
				})
				return nil
			}},
			{label: "Create Category", action: func(m *Model) tea.Cmd {
				m.push(newForm("Create Category", []field{
					newField("Enter the category name:", "name", nil),
				}, func(m *Model, values []string) tea.Cmd {
					m.push(outcomeNotice(m.svc.Categories.Create(values[0])))
					return nil
				}))
				return nil
			}},
		},
	}
}

// selectedCategoryMenu offers edit and delete on one category. Both unwind
// to the depth recorded when the view-categories flow started.
func (m *Model) selectedCategoryMenu(categoryID, start int) frame {
	c, _ := m.sess.SelectedCategory()
	return &menuFrame{
		title:     fmt.Sprintf("Category '%s'", c.Name),
		allowBack: true,
		items: []menuItem{
			{label: "Edit Category", action: func(m *Model) tea.Cmd {
				m.push(newForm("Edit Category", []field{
					newField("Enter the new category name:", "name", nil),
				}, func(m *Model, values []string) tea.Cmd {
					out := m.svc.Categories.Rename(categoryID, values[0])
					if out.OK {
						m.popTo(start)
					}
					m.push(outcomeNotice(out))
					return nil
				}))
				return nil
			}},
			{label: "Delete Category", action: func(m *Model) tea.Cmd {
				m.push(&confirmFrame{
					question: fmt.Sprintf("Delete category '%s'?", c.Name),
					onYes: func(m *Model) tea.Cmd {
						out := m.svc.Categories.Delete(categoryID)
						if out.OK {
							m.popTo(start)
							m.sess.ClearSelectedCategory()
						}
						m.push(outcomeNotice(out))
						return nil
					},
				})
				return nil
			}},
		},
	}
}

// pushCategoryPicker pushes the category selection list, or a notice when no
// categories exist yet. onPick runs with the picker still on the stack so it
// can pop past it once done.
func (m *Model) pushCategoryPicker(title string, onPick func(m *Model, id int) tea.Cmd) {
	categories := m.svc.Categories.List()
	if len(categories) == 0 {
		m.push(notice("No categories found. Create a category first."))
		return
	}
	items := make([]menuItem, 0, len(categories))
	for _, c := range categories {
		id := c.ID
		items = append(items, menuItem{label: c.Row(), action: func(m *Model) tea.Cmd {
			return onPick(m, id)
		}})
	}
	m.push(&menuFrame{
		title:     title,
		header:    []string{categoryHeader},
		items:     items,
		allowBack: true,
	})
}

// --- expenses --------------------------------------------------------------

// startAddExpense runs the three-stage add flow: description and date, then
// category, then amount. The flow unwinds to its starting depth whichever
// way it ends.
func (m *Model) startAddExpense(budgetID int) {
	start := m.depth()
	m.push(newForm("Add Expense", []field{
		newField("Enter a description:", "description", nil),
		newField("Enter the date (dd-mm-yyyy):", "dd-mm-yyyy", requireDate),
	}, func(m *Model, values []string) tea.Cmd {
		description := values[0]
		date, _ := model.ParseDate(values[1])
		m.pushCategoryPicker("Select a Category", func(m *Model, categoryID int) tea.Cmd {
			m.push(newForm("Add Expense", []field{
				newField("Enter the amount:", "0.00", requireAmount),
			}, func(m *Model, values []string) tea.Cmd {
				amount, _ := model.ParseAmount(values[0])
				out := m.svc.Expenses.Add(budgetID, categoryID, description, date, amount)
				m.popTo(start)
				m.push(outcomeNotice(out))
				return nil
			}))
			return nil
		})
		return nil
	}))
}

// startViewExpenses runs the view flow: sort choice, filter choice, filter
// parameters, then the expense list with per-expense edit and delete.
func (m *Model) startViewExpenses(budgetID int) {
	start := m.depth()
	sortKeys := []query.SortKey{
		query.SortNone,
		query.SortDateAscending,
		query.SortAmountDescending,
		query.SortCategoryAscending,
	}
	items := make([]menuItem, 0, len(sortKeys))
	for _, key := range sortKeys {
		items = append(items, menuItem{label: key.String(), action: func(m *Model) tea.Cmd {
			m.pushFilterMenu(budgetID, start, key)
			return nil
		}})
	}
	m.push(&menuFrame{
		title:     "View Expenses",
		items:     items,
		allowBack: true,
	})
}

func (m *Model) pushFilterMenu(budgetID, start int, sortKey query.SortKey) {
	m.push(&menuFrame{
		title:     "Filter Expenses",
		allowBack: true,
		items: []menuItem{
			{label: "No Filtering", action: func(m *Model) tea.Cmd {
				m.pushExpenseList(budgetID, start, query.Options{Sort: sortKey})
				return nil
			}},
			{label: "Filter by Date Range", action: func(m *Model) tea.Cmd {
				m.push(newForm("Filter by Date Range", []field{
					newField("Enter the start date (dd-mm-yyyy):", "dd-mm-yyyy", requireDate),
					newField("Enter the end date (dd-mm-yyyy):", "dd-mm-yyyy", requireDate),
				}, func(m *Model, values []string) tea.Cmd {
					from, _ := model.ParseDate(values[0])
					to, _ := model.ParseDate(values[1])
					m.pushExpenseList(budgetID, start, query.Options{
						Sort: sortKey,
						Filter: query.Filter{
							Mode:  query.FilterDateRange,
							Start: from,
							End:   to,
						},
					})
					return nil
				}))
				return nil
			}},
			{label: "Filter by Category", action: func(m *Model) tea.Cmd {
				m.pushCategoryPicker("Filter by Category", func(m *Model, id int) tea.Cmd {
					m.pushExpenseList(budgetID, start, query.Options{
						Sort:   sortKey,
						Filter: query.Filter{Mode: query.FilterCategory, CategoryID: id},
					})
					return nil
				})
				return nil
			}},
		},
	})
}

func (m *Model) pushExpenseList(budgetID, start int, opts query.Options) {
	expenses := query.Apply(m.svc.Expenses.ByBudget(budgetID), opts)
	if len(expenses) == 0 {
		m.popTo(start)
		m.push(notice("No expenses found."))
		return
	}
	items := make([]menuItem, 0, len(expenses))
	for _, e := range expenses {
		id := e.ID
		items = append(items, menuItem{label: e.Row(), action: func(m *Model) tea.Cmd {
			m.push(m.expenseMenu(id, start))
			return nil
		}})
	}
	m.push(&menuFrame{
		title:     "Expenses",
		header:    []string{expenseHeader},
		items:     items,
		allowBack: true,
	})
}

func (m *Model) expenseMenu(expenseID, start int) frame {
	return &menuFrame{
		title:     "Expense",
		allowBack: true,
		items: []menuItem{
			{label: "Edit Expense", action: func(m *Model) tea.Cmd {
				m.push(newForm("Edit Expense (leave a field blank to keep it)", []field{
					newField("Enter a new description:", "description", nil),
					newField("Enter a new date (dd-mm-yyyy):", "dd-mm-yyyy", optionalDate),
					newField("Enter a new amount:", "0.00", optionalAmount),
				}, func(m *Model, values []string) tea.Cmd {
					description, dateRaw, amountRaw := values[0], values[1], values[2]
					m.pushCategoryKeeper(func(m *Model, categoryID int) tea.Cmd {
						out := m.svc.Expenses.Update(expenseID, categoryID, description, dateRaw, amountRaw)
						m.popTo(start)
						m.push(outcomeNotice(out))
						return nil
					})
					return nil
				}))
				return nil
			}},
			{label: "Delete Expense", action: func(m *Model) tea.Cmd {
				m.push(&confirmFrame{
					question: "Delete this expense?",
					onYes: func(m *Model) tea.Cmd {
						out := m.svc.Expenses.Delete(expenseID)
						m.popTo(start)
						m.push(outcomeNotice(out))
						return nil
					},
				})
				return nil
			}},
		},
	}
}

// pushCategoryKeeper is the category picker variant for edits: the first
// item keeps the current category (id 0 means "unchanged" downstream).
func (m *Model) pushCategoryKeeper(onPick func(m *Model, id int) tea.Cmd) {
	items := []menuItem{
		{label: "Keep current category", action: func(m *Model) tea.Cmd {
			return onPick(m, 0)
		}},
	}
	for _, c := range m.svc.Categories.List() {
		id := c.ID
		items = append(items, menuItem{label: c.Row(), action: func(m *Model) tea.Cmd {
			return onPick(m, id)
		}})
	}
	m.push(&menuFrame{
		title:     "Select a Category",
		items:     items,
		allowBack: true,
	})
}
