// Package memory holds an in-memory sheet fake used by worker tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"finbook/internal/sheets"
)

type Store struct {
	mu   sync.Mutex
	rows []sheets.Row

	// AppendErr, when set, makes every Append fail with it.
	AppendErr error
}

func New() *Store {
	return &Store{}
}

// Append stores the row and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, row sheets.Row) (string, error) {
	if s.AppendErr != nil {
		return "", s.AppendErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, row)
	return fmt.Sprintf("mem:%d", len(s.rows)), nil
}

// Rows returns a copy of everything appended so far.
func (s *Store) Rows() []sheets.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sheets.Row, len(s.rows))
	copy(out, s.rows)
	return out
}
