package app

import (
	"go-restaurant-os/internal/service"
	"go-restaurant-os/internal/store"
)

// App owns the state and wires every component for one interactive
// session. The GUI shell constructs one App and calls into it; there are
// no ambient singletons.
type App struct {
	Store    *store.Store
	Accounts *store.Accounts

	Gate       *service.Gate
	Auth       service.AuthService
	Catalog    service.CatalogService
	Orders     service.OrderService
	Directory  service.DirectoryService
	Reports    service.ReportService
	Accounting service.AccountingService
}

// New opens (or initializes) both documents and wires the services.
// A missing or corrupt data file degrades to an empty state; a missing
// credential file is seeded with the three default accounts.
func New(dataPath, usersPath string) (*App, error) {
	st := store.Open(dataPath)
	accounts, err := store.OpenAccounts(usersPath)
	if err != nil {
		return nil, err
	}

	return &App{
		Store:      st,
		Accounts:   accounts,
		Gate:       service.NewGate(),
		Auth:       service.NewAuthService(accounts),
		Catalog:    service.NewCatalogService(st),
		Orders:     service.NewOrderService(st),
		Directory:  service.NewDirectoryService(st),
		Reports:    service.NewReportService(st),
		Accounting: service.NewAccountingService(st),
	}, nil
}
