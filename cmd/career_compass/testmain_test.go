package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain loads .env before the CLI tests so DATABASE_URL and friends are
// available locally; missing .env is fine (CI sets env directly).
func TestMain(m *testing.M) {
	_ = godotenv.Load()

	os.Exit(m.Run())
}
