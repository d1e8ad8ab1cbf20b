// Package export renders core data as plain text and CSV. It is a thin
// collaborator: the services compute everything, this package only
// formats and writes.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go-restaurant-os/internal/model"
	"go-restaurant-os/internal/service"
)

// WriteOrdersCSV writes the order history with the classic export header
func WriteOrdersCSV(w io.Writer, orders []model.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Table", "Customer", "Total", "Date", "Time", "Status"}); err != nil {
		return err
	}
	for _, o := range orders {
		record := []string{
			strconv.Itoa(o.ID),
			strconv.Itoa(o.Table),
			o.Customer,
			fmt.Sprintf("%.2f", o.Total),
			o.Date,
			o.Time,
			string(o.Status),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// OrderListText renders the printable order list with its header block
func OrderListText(orders []model.Order, date, printedBy string) string {
	var b strings.Builder
	b.WriteString("ORDER LIST\n")
	fmt.Fprintf(&b, "Date: %s\n", date)
	fmt.Fprintf(&b, "Printed by: %s\n", printedBy)
	b.WriteString(strings.Repeat("-", 80) + "\n")
	b.WriteString("ID\tTable\tCustomer\tItems\tTotal\tStatus\tTime\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "%d\t%d\t%s\t%d\t$%.2f\t%s\t%s\n",
			o.ID, o.Table, o.Customer, len(o.Items), o.Total, o.Status, o.Time)
	}
	return b.String()
}

func reportHeader(b *strings.Builder, title string, generatedAt time.Time) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(b, "Generated on: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))
}

func SalesReportText(r *service.SalesReport, generatedAt time.Time) string {
	var b strings.Builder
	reportHeader(&b, "SALES REPORT", generatedAt)
	fmt.Fprintf(&b, "Total Revenue: $%.2f\n", r.TotalRevenue)
	fmt.Fprintf(&b, "Total Orders: %d\n", r.TotalOrders)
	fmt.Fprintf(&b, "Average Order Value: $%.2f\n\n", r.AverageOrderValue)
	fmt.Fprintf(&b, "Today's Sales: $%.2f\n\n", r.TodayRevenue)
	if len(r.TopItems) > 0 {
		b.WriteString("TOP SELLING ITEMS:\n")
		for _, item := range r.TopItems {
			fmt.Fprintf(&b, "  %s: %d orders\n", item.Name, item.Count)
		}
	}
	return b.String()
}

func InventoryReportText(r *service.InventoryReport, generatedAt time.Time) string {
	var b strings.Builder
	reportHeader(&b, "INVENTORY REPORT", generatedAt)
	fmt.Fprintf(&b, "Total Items: %d\n\n", r.TotalItems)
	if len(r.LowStock) > 0 {
		fmt.Fprintf(&b, "LOW STOCK ITEMS (%d):\n", len(r.LowStock))
		for _, line := range r.LowStock {
			fmt.Fprintf(&b, "  %s: %d %s\n", line.Name, line.Entry.Quantity, line.Entry.Unit)
		}
	} else {
		b.WriteString("No items are low in stock\n")
	}
	return b.String()
}

func CustomerReportText(r *service.CustomerReport, generatedAt time.Time) string {
	var b strings.Builder
	reportHeader(&b, "CUSTOMER REPORT", generatedAt)
	fmt.Fprintf(&b, "Total Customers: %d\n\n", r.TotalCustomers)
	if len(r.TopSpenders) > 0 {
		b.WriteString("TOP CUSTOMERS BY SPENDING:\n")
		for _, spend := range r.TopSpenders {
			fmt.Fprintf(&b, "  %s: $%.2f\n", spend.Name, spend.Spent)
		}
	}
	return b.String()
}

func FinancialReportText(r *service.FinancialReport, generatedAt time.Time) string {
	var b strings.Builder
	reportHeader(&b, "FINANCIAL REPORT", generatedAt)
	fmt.Fprintf(&b, "Total Revenue: $%.2f\n", r.TotalRevenue)
	fmt.Fprintf(&b, "Total Expenses: $%.2f\n", r.TotalExpenses)
	fmt.Fprintf(&b, "Net Profit: $%.2f\n", r.NetProfit)
	fmt.Fprintf(&b, "Tax Collected: $%.2f\n", r.TaxCollected)
	return b.String()
}

// WriteFile writes rendered content to a caller-chosen path
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
