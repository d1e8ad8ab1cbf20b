package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryEntryStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		minStock int
		want     StockStatus
	}{
		{"wellStocked", 50, 10, StockOK},
		{"justAboveThreshold", 11, 10, StockOK},
		{"exactlyAtThreshold", 10, 10, StockLow},
		{"belowThreshold", 3, 10, StockLow},
		{"zeroQuantity", 0, 10, StockLow},
		{"zeroThresholdZeroQuantity", 0, 0, StockLow},
		{"zeroThresholdPositiveQuantity", 1, 0, StockOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := InventoryEntry{Quantity: tt.quantity, MinStock: tt.minStock}
			assert.Equal(t, tt.want, entry.Status())
		})
	}
}

func TestAccountPassword(t *testing.T) {
	acc := &Account{Username: "admin"}
	require.NoError(t, acc.SetPassword("admin123"))

	assert.NotEqual(t, "admin123", acc.PasswordHash)
	assert.True(t, acc.CheckPassword("admin123"))
	assert.False(t, acc.CheckPassword("wrong"))
	assert.False(t, acc.CheckPassword(""))
}

func TestAccountHasPermission(t *testing.T) {
	admin := &Account{Permissions: []string{ActionAll}}
	cashier := &Account{Permissions: []string{ActionOrders}}

	assert.True(t, admin.HasPermission(ActionEmployees))
	assert.True(t, admin.HasPermission(ActionOrders))
	assert.True(t, cashier.HasPermission(ActionOrders))
	assert.False(t, cashier.HasPermission(ActionMenu))
}

func TestDefaultAccounts(t *testing.T) {
	accounts, err := DefaultAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	admin := accounts["admin"]
	require.NotNil(t, admin)
	assert.Equal(t, RoleAdministrator, admin.Role)
	assert.Equal(t, []string{ActionAll}, admin.Permissions)
	assert.True(t, admin.CheckPassword("admin123"))

	manager := accounts["manager"]
	require.NotNil(t, manager)
	assert.Equal(t, RoleManager, manager.Role)
	assert.Contains(t, manager.Permissions, ActionReports)
	assert.NotContains(t, manager.Permissions, ActionAll)

	cashier := accounts["cashier"]
	require.NotNil(t, cashier)
	assert.Equal(t, []string{ActionOrders}, cashier.Permissions)
}

func TestMenuItemProfitDerived(t *testing.T) {
	item := MenuItem{Name: "Steak", Price: 25.00, Cost: 15.00}
	assert.InDelta(t, 10.00, item.Profit(), 1e-9)
}

func TestNewStateSeedsFixedEntries(t *testing.T) {
	s := NewState()

	require.Len(t, s.Menu, len(Categories))
	for _, c := range Categories {
		assert.NotNil(t, s.Menu[c])
	}
	require.Len(t, s.Tables, TableCount)
	for i := 1; i <= TableCount; i++ {
		require.NotNil(t, s.Tables[i])
		assert.Equal(t, TableAvailable, s.Tables[i].Status)
	}
	assert.Equal(t, DefaultTaxSettings, s.TaxSettings)
}

func TestNormalizeClampsCounters(t *testing.T) {
	s := NewState()
	s.Orders = []Order{{ID: 7}, {ID: 3}}
	s.Customers = []Customer{{ID: 2}}
	s.Employees = []Employee{{ID: 5}}
	s.Counters = Counters{} // as if an old snapshot predates counters

	s.Normalize()

	assert.Equal(t, 7, s.Counters.Order)
	assert.Equal(t, 2, s.Counters.Customer)
	assert.Equal(t, 5, s.Counters.Employee)
	assert.Equal(t, 8, s.NextOrderID())
}

func TestNormalizeRestoresMissingTables(t *testing.T) {
	s := &State{}
	s.Normalize()

	require.Len(t, s.Tables, TableCount)
	require.NotNil(t, s.DailySales)
	assert.Equal(t, DefaultTaxSettings, s.TaxSettings)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdministrator.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleCashier.Valid())
	assert.False(t, Role("Intern").Valid())
}
