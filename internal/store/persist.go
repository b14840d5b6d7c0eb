package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// persist serializes the document and replaces the data file wholesale.
// The write goes to a uniquely named temp file in the same directory first,
// then renames over the target, so readers never observe a partial write.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", filepath.Base(s.path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.log.Error("write data file failed", "path", tmp, "error", err)
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		s.log.Error("replace data file failed", "path", s.path, "error", err)
		return fmt.Errorf("replace document: %w", err)
	}

	s.log.Debug("document persisted",
		"path", s.path,
		"users", len(s.doc.Users),
		"budgets", len(s.doc.Budgets),
		"categories", len(s.doc.Categories),
		"expenses", len(s.doc.Expenses),
	)
	return nil
}

// load reads the data file into memory. A missing file is a normal first
// run: the store starts empty. A malformed file or a dangling category
// reference is an error; startup should fail loudly instead of quietly
// losing records.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("data file not found, starting empty", "path", s.path)
		s.doc = document{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	s.doc = doc

	if err := s.relink(); err != nil {
		return err
	}

	s.log.Info("document loaded",
		"path", s.path,
		"users", len(s.doc.Users),
		"budgets", len(s.doc.Budgets),
		"categories", len(s.doc.Categories),
		"expenses", len(s.doc.Expenses),
	)
	return nil
}

// relink verifies that every expense's CategoryId resolves against the
// loaded categories. Resolution itself happens on read; this pass only
// surfaces broken references up front.
func (s *Store) relink() error {
	for _, e := range s.doc.Expenses {
		if _, ok := s.CategoryByID(e.CategoryID); !ok {
			return &IntegrityError{
				Kind:    "Expense",
				ID:      e.ID,
				RefKind: "Category",
				RefID:   e.CategoryID,
			}
		}
	}
	return nil
}
