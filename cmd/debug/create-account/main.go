// Debug tool: create an account directly in the database.
//
// Usage: go run ./cmd/debug/create-account <email> <password> [full name]
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/db"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/hash"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/models"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/repository"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: create-account <email> <password> [full name]")
		os.Exit(1)
	}

	if err := db.InitDB(); err != nil {
		log.Fatal("Failed to init DB:", err)
	}
	defer db.CloseDB()

	passwordHash, err := hash.HashPassword(os.Args[2])
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	account := &models.Account{
		Email:        os.Args[1],
		PasswordHash: passwordHash,
	}
	if len(os.Args) > 3 {
		account.FullName = os.Args[3]
	}

	repo := repository.NewAccountRepository()
	id, err := repo.Create(context.Background(), account)
	if err != nil {
		log.Fatal("Failed to create account:", err)
	}

	fmt.Printf("Created account %d (%s)\n", id, account.Email)
}
