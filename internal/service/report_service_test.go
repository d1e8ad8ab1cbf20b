package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-restaurant-os/internal/model"
)

func TestFinancialReport(t *testing.T) {
	st := testStore(t)
	svc := NewReportService(st)

	state := st.State()
	state.DailySales["2026-08-27"] = 400.00
	state.DailySales["2026-08-28"] = 600.00
	state.Expenses = append(state.Expenses, model.Expense{Description: "Produce", Amount: 200.00, Date: "2026-08-28"})
	state.TaxSettings = model.TaxSettings{Rate: 0.08, Name: "Sales Tax"}

	report, err := svc.FinancialReport(managerActor())
	require.NoError(t, err)
	assert.InDelta(t, 1000.00, report.TotalRevenue, 1e-9)
	assert.InDelta(t, 200.00, report.TotalExpenses, 1e-9)
	assert.InDelta(t, 800.00, report.NetProfit, 1e-9)
	assert.InDelta(t, 80.00, report.TaxCollected, 1e-9)
}

func TestSalesReportEmptyLedger(t *testing.T) {
	svc := NewReportService(testStore(t))

	report, err := svc.SalesReport(managerActor())
	require.NoError(t, err)
	assert.Zero(t, report.TotalOrders)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.AverageOrderValue)
	assert.Empty(t, report.TopItems)
}

func TestSalesReportAggregates(t *testing.T) {
	st := testStore(t)
	reports := NewReportService(st).(*reportService)
	reports.now = fixedClock("2026-08-28 20:00")
	orders := NewOrderService(st).(*orderService)
	orders.now = fixedClock("2026-08-28 19:00")

	_, err := orders.PlaceOrder(cashierActor(), PlaceOrderInput{
		Table: 1,
		Items: []model.OrderItem{{Name: "Burger", Price: 10}, {Name: "Soda", Price: 2}},
	})
	require.NoError(t, err)
	_, err = orders.PlaceOrder(cashierActor(), PlaceOrderInput{
		Table: 2,
		Items: []model.OrderItem{{Name: "Burger", Price: 10}},
	})
	require.NoError(t, err)

	report, err := reports.SalesReport(managerActor())
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalOrders)
	assert.InDelta(t, 22.00, report.TotalRevenue, 1e-9)
	assert.InDelta(t, 11.00, report.AverageOrderValue, 1e-9)
	assert.InDelta(t, 22.00, report.TodayRevenue, 1e-9)

	require.Len(t, report.TopItems, 2)
	assert.Equal(t, ItemCount{Name: "Burger", Count: 2}, report.TopItems[0])
	assert.Equal(t, ItemCount{Name: "Soda", Count: 1}, report.TopItems[1])
}

func TestSalesReportTopItemsTieBreakLexical(t *testing.T) {
	st := testStore(t)
	svc := NewReportService(st)

	st.State().Orders = []model.Order{
		{ID: 1, Items: []model.OrderItem{{Name: "Zucchini Fries", Price: 5}, {Name: "Apple Pie", Price: 4}}},
	}

	report, err := svc.SalesReport(managerActor())
	require.NoError(t, err)
	require.Len(t, report.TopItems, 2)
	assert.Equal(t, "Apple Pie", report.TopItems[0].Name)
	assert.Equal(t, "Zucchini Fries", report.TopItems[1].Name)
}

func TestInventoryReportLowStockOnly(t *testing.T) {
	st := testStore(t)
	svc := NewReportService(st)

	st.State().Inventory["Flour"] = model.InventoryEntry{Quantity: 3, Unit: "kg", MinStock: 10}
	st.State().Inventory["Sugar"] = model.InventoryEntry{Quantity: 30, Unit: "kg", MinStock: 10}
	st.State().Inventory["Salt"] = model.InventoryEntry{Quantity: 10, Unit: "kg", MinStock: 10}

	report, err := svc.InventoryReport(managerActor())
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalItems)
	require.Len(t, report.LowStock, 2)
	assert.Equal(t, "Flour", report.LowStock[0].Name)
	assert.Equal(t, "Salt", report.LowStock[1].Name)
}

func TestCustomerReportSpendMatching(t *testing.T) {
	st := testStore(t)
	svc := NewReportService(st)

	state := st.State()
	state.Customers = []model.Customer{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}
	state.Orders = []model.Order{
		{ID: 1, CustomerID: 1, Customer: "Alice", Total: 30},
		{ID: 2, Customer: "Alice", Total: 12}, // legacy order, matched by name
		{ID: 3, Customer: "Bob", Total: 5},
		{ID: 4, Customer: "Walk-in", Total: 100},
	}

	report, err := svc.CustomerReport(managerActor())
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalCustomers)
	require.Len(t, report.TopSpenders, 2)
	assert.Equal(t, CustomerSpend{Name: "Alice", Spent: 42}, report.TopSpenders[0])
	assert.Equal(t, CustomerSpend{Name: "Bob", Spent: 5}, report.TopSpenders[1])
}

func TestReportsForbiddenForCashier(t *testing.T) {
	svc := NewReportService(testStore(t))

	_, err := svc.SalesReport(cashierActor())
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.InventoryReport(cashierActor())
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.CustomerReport(cashierActor())
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.FinancialReport(cashierActor())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDashboardStats(t *testing.T) {
	st := testStore(t)
	reports := NewReportService(st).(*reportService)
	reports.now = fixedClock("2026-08-28 09:00")

	state := st.State()
	state.Orders = []model.Order{
		{ID: 1, Date: "2026-08-27", Total: 10},
		{ID: 2, Date: "2026-08-28", Total: 20},
		{ID: 3, Date: "2026-08-28", Total: 5},
	}
	state.DailySales["2026-08-27"] = 10
	state.DailySales["2026-08-28"] = 25

	stats := reports.DashboardStats()
	assert.Equal(t, 2, stats.TodayOrders)
	assert.InDelta(t, 25, stats.TodayRevenue, 1e-9)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.InDelta(t, 35, stats.TotalRevenue, 1e-9)
}
