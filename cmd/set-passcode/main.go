// CLI tool to set (or reset) the app passcode. Hashes the passcode with
// bcrypt, mints a fresh session token, and writes both to the kv store.
// Usage: go run ./cmd/set-passcode (from the repo root)
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Passcode: ")
	passcode, _ := reader.ReadString('\n')
	passcode = strings.TrimSpace(passcode)
	if passcode == "" {
		fmt.Fprintln(os.Stderr, "Passcode must not be empty")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing passcode: %v\n", err)
		os.Exit(1)
	}

	token := uuid.New().String()

	value, err := json.Marshal(map[string]string{
		"passcode_hash": string(hash),
		"token":         token,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding auth config: %v\n", err)
		os.Exit(1)
	}

	_, err = conn.Exec(ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		"snapcalorie_auth", string(value))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing auth config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nPasscode set successfully!\n")
	fmt.Printf("  Session token: %s\n", token)
}
