package service

import (
	"path/filepath"
	"testing"
	"time"

	"go-restaurant-os/internal/model"
	"go-restaurant-os/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "restaurant_data.json"))
}

func fixedClock(value string) func() time.Time {
	at, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return at }
}

func adminActor() model.AccountInfo {
	return model.AccountInfo{
		Username:    "admin",
		Role:        model.RoleAdministrator,
		DisplayName: "System Administrator",
		Permissions: model.DefaultPermissions[model.RoleAdministrator],
	}
}

func managerActor() model.AccountInfo {
	return model.AccountInfo{
		Username:    "manager",
		Role:        model.RoleManager,
		DisplayName: "Restaurant Manager",
		Permissions: model.DefaultPermissions[model.RoleManager],
	}
}

func cashierActor() model.AccountInfo {
	return model.AccountInfo{
		Username:    "cashier",
		Role:        model.RoleCashier,
		DisplayName: "Cashier",
		Permissions: model.DefaultPermissions[model.RoleCashier],
	}
}
