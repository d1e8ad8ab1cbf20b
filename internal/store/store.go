package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-restaurant-os/internal/model"
	"go-restaurant-os/pkg/validator"
)

// ErrSnapshot wraps every persistence failure surfaced by the store
var ErrSnapshot = errors.New("snapshot persistence failed")

// Store owns the process-wide State and its durable JSON snapshot.
// Every mutating operation commits the full state; a failed write keeps
// the in-memory state authoritative and is retried on the next commit.
type Store struct {
	path  string
	state *model.State

	pendingErr error
}

// Open reads the snapshot at path. A missing or malformed file degrades
// to a freshly initialized empty state instead of failing the session.
func Open(path string) *Store {
	s := &Store{path: path}
	s.state = s.loadOrInit()
	return s
}

// State returns the in-memory document. Callers mutate it through the
// services and then Commit.
func (s *Store) State() *model.State {
	return s.state
}

// Pending returns the error of the last failed commit, nil when the
// snapshot on disk is current.
func (s *Store) Pending() error {
	return s.pendingErr
}

// Commit writes the full state as one snapshot. The write goes to a
// temp file first and is renamed into place so a crash mid-write can
// never leave a half-written file readable as valid.
func (s *Store) Commit() error {
	if err := s.write(); err != nil {
		s.pendingErr = err
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	s.pendingErr = nil
	return nil
}

func (s *Store) write() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

func (s *Store) loadOrInit() *model.State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.NewState()
	}

	var state model.State
	if err := json.Unmarshal(data, &state); err != nil {
		return model.NewState()
	}

	quarantine(&state)
	state.Normalize()
	return &state
}

// quarantine drops entries that fail schema validation so one malformed
// record cannot poison the whole load. A negative stock quantity is an
// invariant violation and is dropped with the rest.
func quarantine(state *model.State) {
	for category, items := range state.Menu {
		kept := items[:0]
		for _, item := range items {
			if len(validator.ValidateStruct(&item)) == 0 {
				kept = append(kept, item)
			}
		}
		state.Menu[category] = kept
	}

	for name, entry := range state.Inventory {
		if name == "" || len(validator.ValidateStruct(&entry)) > 0 {
			delete(state.Inventory, name)
		}
	}

	orders := state.Orders[:0]
	for _, o := range state.Orders {
		if o.ID > 0 && len(validator.ValidateStruct(&o)) == 0 {
			orders = append(orders, o)
		}
	}
	state.Orders = orders

	customers := state.Customers[:0]
	for _, c := range state.Customers {
		if len(validator.ValidateStruct(&c)) == 0 {
			customers = append(customers, c)
		}
	}
	state.Customers = customers

	employees := state.Employees[:0]
	for _, e := range state.Employees {
		if len(validator.ValidateStruct(&e)) == 0 {
			employees = append(employees, e)
		}
	}
	state.Employees = employees

	expenses := state.Expenses[:0]
	for _, e := range state.Expenses {
		if len(validator.ValidateStruct(&e)) == 0 {
			expenses = append(expenses, e)
		}
	}
	state.Expenses = expenses
}
