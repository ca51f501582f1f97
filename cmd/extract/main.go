package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/omatviiv/appstore-ratings/cli"
)

func main() {
	// Load environment variables from .env if present (optional)
	_ = godotenv.Load()

	os.Exit(cli.Run(os.Stderr))
}
