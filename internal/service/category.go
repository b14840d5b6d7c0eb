package service

import (
	"fmt"
	"log/slog"
	"strings"

	"budgetbook/internal/model"
	"budgetbook/internal/store"
)

// CategoryService creates, renames and deletes the global expense
// categories.
type CategoryService struct {
	store *store.Store
}

// Create validates and adds a new category. Validation order: name
// non-blank, name free (case-insensitive).
func (s *CategoryService) Create(name string) Outcome[model.Category] {
	if strings.TrimSpace(name) == "" {
		return failure[model.Category]("Name cannot be empty or whitespace.")
	}
	if s.store.CategoryNameTaken(name) {
		return failure[model.Category](fmt.Sprintf("A category with the name '%s' already exists.", name))
	}

	c := model.Category{
		ID:   s.store.NextCategoryID(),
		Name: name,
	}
	if err := s.store.AddCategory(c); err != nil {
		return persistFailure[model.Category](err)
	}

	slog.Info("category created", "id", c.ID, "name", name)
	return success(fmt.Sprintf("'%s' Category has been successfully created.", name), c)
}

// List returns all categories.
func (s *CategoryService) List() []model.Category {
	return s.store.Categories()
}

// ByID looks up a category by id.
func (s *CategoryService) ByID(id int) (model.Category, bool) {
	return s.store.CategoryByID(id)
}

// Select resolves the category by id and makes it the session's selection.
func (s *CategoryService) Select(sess *Session, id int) Outcome[model.Category] {
	c, ok := s.store.CategoryByID(id)
	if !ok {
		return failure[model.Category]("Category not found.")
	}
	sess.SetSelectedCategory(c)
	return success(fmt.Sprintf("Selected category '%s'.", c.Name), c)
}

// Rename gives the category a new name. A collision with a different
// category is rejected; resubmitting the category's own name, in any case,
// succeeds as a no-op rename.
func (s *CategoryService) Rename(id int, name string) Outcome[model.Category] {
	if strings.TrimSpace(name) == "" {
		return failure[model.Category]("Name cannot be empty or whitespace.")
	}

	c, ok := s.store.CategoryByID(id)
	if !ok {
		return failure[model.Category]("Category not found.")
	}
	if !s.store.SameName(name, c.Name) && s.store.CategoryNameTaken(name) {
		return failure[model.Category](fmt.Sprintf("A category with the name '%s' already exists.", name))
	}

	if _, err := s.store.UpdateCategoryName(c.ID, name); err != nil {
		return persistFailure[model.Category](err)
	}
	previous := c.Name
	c.Name = name

	slog.Info("category renamed", "id", c.ID, "from", previous, "to", name)
	return success(fmt.Sprintf("'%s' Category has been successfully updated.", previous), c)
}

// Delete removes the category unless expenses still reference it. The
// dependency-guard rejection and "not found" report distinct messages.
func (s *CategoryService) Delete(id int) Outcome[model.Category] {
	c, ok := s.store.CategoryByID(id)
	if !ok {
		return failure[model.Category]("Category not found.")
	}
	if s.store.CategoryInUse(c.ID) {
		return failure[model.Category]("There was a problem deleting the category, there may be dependencies.")
	}

	removed, err := s.store.RemoveCategory(c.ID)
	if err != nil {
		return persistFailure[model.Category](err)
	}
	if !removed {
		return failure[model.Category]("There was a problem deleting the category, there may be dependencies.")
	}

	slog.Info("category deleted", "id", c.ID, "name", c.Name)
	return success("Category removed successfully.", c)
}
