package store

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"

	"budgetbook/internal/model"
)

// document is the full persisted state. Field names match the pre-existing
// data file and must not change.
type document struct {
	Users      []model.User     `json:"Users"`
	Budgets    []model.Budget   `json:"Budgets"`
	Categories []model.Category `json:"Categories"`
	Expenses   []model.Expense  `json:"Expenses"`
}

// Store owns the in-memory document and writes it through to disk after
// every mutation. It is not safe for concurrent use; the tracker has a
// single logical actor.
type Store struct {
	path   string
	log    *slog.Logger
	folder cases.Caser
	doc    document
}

// Open loads the document at path, or starts empty when the file does not
// exist yet. A present-but-malformed file is an error: refusing to start is
// better than silently discarding data.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:   path,
		log:    logger.With("component", "store"),
		folder: cases.Fold(),
	}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return s, nil
}

// Path returns the location of the persisted document.
func (s *Store) Path() string {
	return s.path
}

// fold normalizes a name for case-insensitive comparison.
func (s *Store) fold(name string) string {
	return s.folder.String(name)
}

// SameName compares two names case-insensitively using Unicode case folding.
func (s *Store) SameName(a, b string) bool {
	return s.fold(a) == s.fold(b)
}
