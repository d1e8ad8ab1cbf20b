package model

import (
	"golang.org/x/crypto/bcrypt"
)

// Account represents a login account in the credential store
type Account struct {
	Username     string   `json:"username" validate:"required"`
	PasswordHash string   `json:"password"` // bcrypt digest, never the clear text
	Role         Role     `json:"role" validate:"required,oneof=Administrator Manager Cashier"`
	DisplayName  string   `json:"name"`
	Permissions  []string `json:"permissions"`
	TokenVersion string   `json:"token_version,omitempty"` // For single session enforcement
}

// SetPassword hashes and sets the account's password
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}

// HasPermission checks if the account may invoke the given action.
// The "all" tag grants everything.
func (a *Account) HasPermission(action string) bool {
	for _, p := range a.Permissions {
		if p == ActionAll || p == action {
			return true
		}
	}
	return false
}

// AccountInfo is the account view handed to callers (without the hash)
type AccountInfo struct {
	Username    string   `json:"username"`
	Role        Role     `json:"role"`
	DisplayName string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// ToInfo converts Account to AccountInfo
func (a *Account) ToInfo() AccountInfo {
	return AccountInfo{
		Username:    a.Username,
		Role:        a.Role,
		DisplayName: a.DisplayName,
		Permissions: a.Permissions,
	}
}

// DefaultAccounts returns the three seed accounts created on first run.
// Passwords are hashed at seed time.
func DefaultAccounts() (map[string]*Account, error) {
	seeds := []struct {
		username string
		password string
		role     Role
		name     string
	}{
		{"admin", "admin123", RoleAdministrator, "System Administrator"},
		{"manager", "manager123", RoleManager, "Restaurant Manager"},
		{"cashier", "cashier123", RoleCashier, "Cashier"},
	}

	accounts := make(map[string]*Account, len(seeds))
	for _, s := range seeds {
		acc := &Account{
			Username:    s.username,
			Role:        s.role,
			DisplayName: s.name,
			Permissions: DefaultPermissions[s.role],
		}
		if err := acc.SetPassword(s.password); err != nil {
			return nil, err
		}
		accounts[s.username] = acc
	}
	return accounts, nil
}
