package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go-restaurant-os/internal/model"
)

// Accounts is the credential store backed by its own JSON document,
// keyed by username.
type Accounts struct {
	path     string
	accounts map[string]*model.Account
}

// OpenAccounts reads the credential file at path. When the file is
// missing or malformed the three default accounts are seeded and
// persisted. The only hard failure is the seed hash itself.
func OpenAccounts(path string) (*Accounts, error) {
	a := &Accounts{path: path}

	data, err := os.ReadFile(path)
	if err == nil {
		var accounts map[string]*model.Account
		if err := json.Unmarshal(data, &accounts); err == nil && len(accounts) > 0 {
			a.accounts = accounts
			return a, nil
		}
	}

	seeded, err := model.DefaultAccounts()
	if err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}
	a.accounts = seeded
	if err := a.Save(); err != nil {
		// Seeds stay usable in memory even if the first write fails.
		return a, err
	}
	return a, nil
}

// Find returns the account for username, or nil
func (a *Accounts) Find(username string) *model.Account {
	return a.accounts[username]
}

// Usernames returns all account names in stable order
func (a *Accounts) Usernames() []string {
	names := make([]string, 0, len(a.accounts))
	for name := range a.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the credential document with the same temp-then-rename
// discipline as the state snapshot.
func (a *Accounts) Save() error {
	data, err := json.MarshalIndent(a.accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}

	dir := filepath.Dir(a.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(a.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	if err := os.Rename(tmpName, a.path); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	return nil
}
