package service

import (
	"fmt"
	"log/slog"
	"strings"

	"budgetbook/internal/model"
	"budgetbook/internal/store"
)

// UserService creates, renames and deletes users. Deleting a user cascades
// through the user's budgets and their expenses.
type UserService struct {
	store   *store.Store
	budgets *BudgetService
}

// Create validates and adds a new user. Validation order: username
// non-blank, name non-blank, username free (case-insensitive).
func (s *UserService) Create(username, name string) Outcome[model.User] {
	if strings.TrimSpace(username) == "" {
		return failure[model.User]("Username cannot be empty or whitespace.")
	}
	if strings.TrimSpace(name) == "" {
		return failure[model.User]("Name cannot be empty or whitespace.")
	}
	if s.store.UsernameTaken(username) {
		return failure[model.User](fmt.Sprintf("A user with the username '%s' already exists.", username))
	}

	u := model.User{
		ID:       s.store.NextUserID(),
		Username: username,
		Name:     name,
	}
	if err := s.store.AddUser(u); err != nil {
		return persistFailure[model.User](err)
	}

	slog.Info("user created", "id", u.ID, "username", u.Username)
	return success(fmt.Sprintf("User '%s' has been successfully created.", username), u)
}

// List returns all users.
func (s *UserService) List() []model.User {
	return s.store.Users()
}

// ByID looks up a user by id.
func (s *UserService) ByID(id int) (model.User, bool) {
	return s.store.UserByID(id)
}

// Select resolves the user by id and makes it the session's active user.
func (s *UserService) Select(sess *Session, id int) Outcome[model.User] {
	u, ok := s.store.UserByID(id)
	if !ok {
		return failure[model.User]("User not found.")
	}
	sess.SetActiveUser(u)
	return success(fmt.Sprintf("Active user is now '%s'.", u.Username), u)
}

// Rename sets a new display name for the session's active user. A blank
// name is rejected; a stale session (user deleted meanwhile) is a
// recoverable not-found outcome.
func (s *UserService) Rename(sess *Session, name string) Outcome[model.User] {
	if strings.TrimSpace(name) == "" {
		return failure[model.User]("Name cannot be empty or whitespace.")
	}

	active, ok := sess.ActiveUser()
	if !ok {
		return failure[model.User]("No user selected.")
	}
	u, ok := s.store.UserByID(active.ID)
	if !ok {
		return failure[model.User]("User not found.")
	}

	if _, err := s.store.UpdateUserName(u.ID, name); err != nil {
		return persistFailure[model.User](err)
	}
	u.Name = name
	sess.SetActiveUser(u)

	slog.Info("user renamed", "id", u.ID, "username", u.Username)
	return success(fmt.Sprintf("User '%s' has been successfully updated.", u.Username), u)
}

// Delete removes the session's active user together with all of the user's
// budgets and their expenses, then clears the session's selection. The
// session snapshot is re-resolved against the store first.
func (s *UserService) Delete(sess *Session) Outcome[model.User] {
	active, ok := sess.ActiveUser()
	if !ok {
		return failure[model.User]("No user selected.")
	}
	u, ok := s.store.UserByID(active.ID)
	if !ok {
		sess.ClearActiveUser()
		return failure[model.User]("User not found.")
	}

	if err := s.budgets.DeleteByUser(u.ID); err != nil {
		return persistFailure[model.User](err)
	}
	removed, err := s.store.RemoveUser(u.ID)
	if err != nil {
		return persistFailure[model.User](err)
	}
	if !removed {
		return failure[model.User]("There was a problem deleting the user.")
	}
	sess.ClearActiveUser()

	slog.Info("user deleted", "id", u.ID, "username", u.Username)
	return success("User removed successfully.", u)
}
