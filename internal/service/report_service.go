package service

import (
	"sort"
	"time"

	"go-restaurant-os/internal/model"
	"go-restaurant-os/internal/store"
)

// topN is how many entries the top-items and top-spenders listings carry
const topN = 10

type ReportService interface {
	SalesReport(actor model.AccountInfo) (*SalesReport, error)
	InventoryReport(actor model.AccountInfo) (*InventoryReport, error)
	CustomerReport(actor model.AccountInfo) (*CustomerReport, error)
	FinancialReport(actor model.AccountInfo) (*FinancialReport, error)
	DashboardStats() DashboardStats
}

type ItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SalesReport struct {
	TotalRevenue      float64     `json:"total_revenue"`
	TotalOrders       int         `json:"total_orders"`
	AverageOrderValue float64     `json:"average_order_value"`
	TodayRevenue      float64     `json:"today_revenue"`
	TopItems          []ItemCount `json:"top_items"`
}

type InventoryReport struct {
	TotalItems int               `json:"total_items"`
	LowStock   []model.StockLine `json:"low_stock"`
}

type CustomerSpend struct {
	Name  string  `json:"name"`
	Spent float64 `json:"spent"`
}

type CustomerReport struct {
	TotalCustomers int             `json:"total_customers"`
	TopSpenders    []CustomerSpend `json:"top_spenders"`
}

type FinancialReport struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	TaxCollected  float64 `json:"tax_collected"`
}

type DashboardStats struct {
	TodayOrders  int     `json:"today_orders"`
	TodayRevenue float64 `json:"today_revenue"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// reportService is pure read-side aggregation; nothing here mutates
// state or touches the snapshot.
type reportService struct {
	store *store.Store
	now   func() time.Time
}

func NewReportService(st *store.Store) ReportService {
	return &reportService{store: st, now: time.Now}
}

func (s *reportService) today() string {
	return s.now().Format("2006-01-02")
}

func (s *reportService) SalesReport(actor model.AccountInfo) (*SalesReport, error) {
	if err := requirePerm(actor, model.ActionReports); err != nil {
		return nil, err
	}
	state := s.store.State()

	report := &SalesReport{
		TotalOrders:  len(state.Orders),
		TodayRevenue: state.DailySales[s.today()],
	}
	for _, revenue := range state.DailySales {
		report.TotalRevenue += revenue
	}
	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	// Order-line frequency per item name, descending; ties break
	// lexically so the listing is deterministic.
	counts := make(map[string]int)
	for _, o := range state.Orders {
		for _, item := range o.Items {
			counts[item.Name]++
		}
	}
	items := make([]ItemCount, 0, len(counts))
	for name, count := range counts {
		items = append(items, ItemCount{Name: name, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > topN {
		items = items[:topN]
	}
	report.TopItems = items

	return report, nil
}

func (s *reportService) InventoryReport(actor model.AccountInfo) (*InventoryReport, error) {
	if err := requirePerm(actor, model.ActionReports); err != nil {
		return nil, err
	}
	state := s.store.State()

	report := &InventoryReport{TotalItems: len(state.Inventory)}
	for name, entry := range state.Inventory {
		if entry.Status() == model.StockLow {
			report.LowStock = append(report.LowStock, model.StockLine{Name: name, Entry: entry, Status: model.StockLow})
		}
	}
	sort.Slice(report.LowStock, func(i, j int) bool { return report.LowStock[i].Name < report.LowStock[j].Name })
	return report, nil
}

// CustomerReport totals spend per customer. Orders that carry a customer
// id are matched by id; legacy orders without one fall back to the name.
func (s *reportService) CustomerReport(actor model.AccountInfo) (*CustomerReport, error) {
	if err := requirePerm(actor, model.ActionReports); err != nil {
		return nil, err
	}
	state := s.store.State()

	report := &CustomerReport{TotalCustomers: len(state.Customers)}
	spends := make([]CustomerSpend, 0, len(state.Customers))
	for _, customer := range state.Customers {
		spent := 0.0
		for _, o := range state.Orders {
			if o.CustomerID == customer.ID || (o.CustomerID == 0 && o.Customer == customer.Name) {
				spent += o.Total
			}
		}
		spends = append(spends, CustomerSpend{Name: customer.Name, Spent: spent})
	}
	sort.Slice(spends, func(i, j int) bool {
		if spends[i].Spent != spends[j].Spent {
			return spends[i].Spent > spends[j].Spent
		}
		return spends[i].Name < spends[j].Name
	})
	if len(spends) > topN {
		spends = spends[:topN]
	}
	report.TopSpenders = spends
	return report, nil
}

func (s *reportService) FinancialReport(actor model.AccountInfo) (*FinancialReport, error) {
	if err := requirePerm(actor, model.ActionReports); err != nil {
		return nil, err
	}
	state := s.store.State()

	report := &FinancialReport{}
	for _, revenue := range state.DailySales {
		report.TotalRevenue += revenue
	}
	for _, e := range state.Expenses {
		report.TotalExpenses += e.Amount
	}
	report.NetProfit = report.TotalRevenue - report.TotalExpenses
	report.TaxCollected = report.TotalRevenue * state.TaxSettings.Rate
	return report, nil
}

// DashboardStats is the sidebar summary, available to every role
func (s *reportService) DashboardStats() DashboardStats {
	state := s.store.State()
	today := s.today()

	stats := DashboardStats{
		TotalOrders:  len(state.Orders),
		TodayRevenue: state.DailySales[today],
	}
	for _, o := range state.Orders {
		if o.Date == today {
			stats.TodayOrders++
		}
	}
	for _, revenue := range state.DailySales {
		stats.TotalRevenue += revenue
	}
	return stats
}
