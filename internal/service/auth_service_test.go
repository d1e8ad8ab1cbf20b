package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-restaurant-os/internal/model"
	"go-restaurant-os/internal/store"
)

func testAccounts(t *testing.T) *store.Accounts {
	t.Helper()
	accounts, err := store.OpenAccounts(filepath.Join(t.TempDir(), "restaurant_users.json"))
	require.NoError(t, err)
	return accounts
}

func TestLoginSeededAccounts(t *testing.T) {
	svc := NewAuthService(testAccounts(t))

	tests := []struct {
		username string
		password string
		role     model.Role
	}{
		{"admin", "admin123", model.RoleAdministrator},
		{"manager", "manager123", model.RoleManager},
		{"cashier", "cashier123", model.RoleCashier},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			resp, err := svc.Login(tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.role, resp.Account.Role)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, model.DefaultPermissions[tt.role], resp.Permissions)
		})
	}
}

func TestLoginFailsClosed(t *testing.T) {
	svc := NewAuthService(testAccounts(t))

	_, unknownUser := svc.Login("nobody", "admin123")
	_, wrongPassword := svc.Login("admin", "nope")

	require.Error(t, unknownUser)
	require.Error(t, wrongPassword)
	// No oracle: both failures are the identical error
	assert.Equal(t, unknownUser, wrongPassword)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(testAccounts(t))

	resp, err := svc.Login("manager", "manager123")
	require.NoError(t, err)

	session, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "manager", session.Account.Username)
	assert.Equal(t, model.RoleManager, session.Account.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(testAccounts(t))
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestSecondLoginInvalidatesOldToken(t *testing.T) {
	svc := NewAuthService(testAccounts(t))

	first, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	_, err = svc.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(first.Token)
	assert.Error(t, err, "token from the earlier session must be rejected")
}

func TestChangePassword(t *testing.T) {
	accounts := testAccounts(t)
	svc := NewAuthService(accounts)

	assert.ErrorIs(t, svc.ChangePassword("cashier", "wrong", "newpass"), ErrWrongPassword)
	assert.True(t, IsValidation(svc.ChangePassword("cashier", "cashier123", "")))

	require.NoError(t, svc.ChangePassword("cashier", "cashier123", "newpass"))

	_, err := svc.Login("cashier", "cashier123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("cashier", "newpass")
	assert.NoError(t, err)
}

func TestSetPermissions(t *testing.T) {
	accounts := testAccounts(t)
	svc := NewAuthService(accounts)

	err := svc.SetPermissions(managerActor(), "cashier", []string{model.ActionOrders, model.ActionMenu})
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.SetPermissions(adminActor(), "cashier", []string{model.ActionOrders, model.ActionMenu}))
	assert.True(t, accounts.Find("cashier").HasPermission(model.ActionMenu))
}
