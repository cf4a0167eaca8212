// Debug tool: clear an account's lockout state.
//
// Usage: go run ./cmd/debug/unlock-account <email>
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/db"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/repository"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: unlock-account <email>")
		os.Exit(1)
	}

	if err := db.InitDB(); err != nil {
		log.Fatal("Failed to init DB:", err)
	}
	defer db.CloseDB()

	repo := repository.NewAccountRepository()
	cleared, err := repo.ClearLockout(context.Background(), os.Args[1])
	if err != nil {
		log.Fatal("Failed to unlock account:", err)
	}

	if cleared {
		fmt.Printf("Unlocked %s\n", os.Args[1])
	} else {
		fmt.Printf("No lockout state to clear for %s\n", os.Args[1])
	}
}
