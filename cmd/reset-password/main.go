package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-restaurant-os/internal/store"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	username := flag.String("username", "admin", "account to reset")
	password := flag.String("password", "admin123", "new password")
	flag.Parse()

	usersPath := os.Getenv("RESTAURANT_USERS_FILE")
	if usersPath == "" {
		usersPath = "restaurant_users.json"
	}

	// 2. Open the credential file (seeds defaults on first run)
	accounts, err := store.OpenAccounts(usersPath)
	if err != nil {
		log.Fatalf("❌ Failed to open credential file %s: %v", usersPath, err)
	}

	// 3. Find the account
	account := accounts.Find(*username)
	if account == nil {
		log.Fatalf("❌ Account %s not found (known accounts: %v)", *username, accounts.Usernames())
	}

	// 4. Hash and update
	if err := account.SetPassword(*password); err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}
	if err := accounts.Save(); err != nil {
		log.Fatalf("❌ Failed to write credential file: %v", err)
	}

	log.Printf("✅ Success! Password for %s has been reset", *username)
}
