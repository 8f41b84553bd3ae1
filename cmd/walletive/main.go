// Package main is the entry point for the walletive command line.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/walletive/backend/internal/cli"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
