package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"go-restaurant-os/internal/app"
	"go-restaurant-os/internal/export"
)

// export renders the order history or one of the reports to a file.
// It authenticates like any other caller, so role permissions apply.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	username := flag.String("username", "admin", "account to authenticate as")
	password := flag.String("password", "admin123", "account password")
	what := flag.String("what", "orders-csv", "orders-csv | order-list | sales | inventory | customers | financial")
	out := flag.String("out", "", "output file path (required)")
	flag.Parse()

	if *out == "" {
		log.Fatal("❌ -out is required")
	}

	dataPath := envOr("RESTAURANT_DATA_FILE", "restaurant_data.json")
	usersPath := envOr("RESTAURANT_USERS_FILE", "restaurant_users.json")

	// 2. Open the session
	session, err := app.New(dataPath, usersPath)
	if err != nil {
		log.Fatalf("❌ Failed to open session: %v", err)
	}

	login, err := session.Auth.Login(*username, *password)
	if err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}
	actor := login.Account

	now := time.Now()

	// 3. Render
	switch *what {
	case "orders-csv":
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("❌ Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		if err := export.WriteOrdersCSV(f, session.Orders.ListOrders()); err != nil {
			log.Fatalf("❌ Export failed: %v", err)
		}
	case "order-list":
		content := export.OrderListText(session.Orders.ListOrders(), now.Format("2006-01-02"), actor.DisplayName)
		if err := export.WriteFile(*out, content); err != nil {
			log.Fatalf("❌ Export failed: %v", err)
		}
	case "sales":
		report, err := session.Reports.SalesReport(actor)
		if err != nil {
			log.Fatalf("❌ Report failed: %v", err)
		}
		if err := export.WriteFile(*out, export.SalesReportText(report, now)); err != nil {
			log.Fatalf("❌ Export failed: %v", err)
		}
	case "inventory":
		report, err := session.Reports.InventoryReport(actor)
		if err != nil {
			log.Fatalf("❌ Report failed: %v", err)
		}
		if err := export.WriteFile(*out, export.InventoryReportText(report, now)); err != nil {
			log.Fatalf("❌ Export failed: %v", err)
		}
	case "customers":
		report, err := session.Reports.CustomerReport(actor)
		if err != nil {
			log.Fatalf("❌ Report failed: %v", err)
		}
		if err := export.WriteFile(*out, export.CustomerReportText(report, now)); err != nil {
			log.Fatalf("❌ Export failed: %v", err)
		}
	case "financial":
		report, err := session.Reports.FinancialReport(actor)
		if err != nil {
			log.Fatalf("❌ Report failed: %v", err)
		}
		if err := export.WriteFile(*out, export.FinancialReportText(report, now)); err != nil {
			log.Fatalf("❌ Export failed: %v", err)
		}
	default:
		log.Fatalf("❌ Unknown export target %q", *what)
	}

	log.Printf("✅ Exported %s to %s", *what, *out)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
