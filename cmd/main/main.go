package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/BartekS5/cellcheck/internal/cli"
	"github.com/BartekS5/cellcheck/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if logFile := os.Getenv("CELLCHECK_LOG_FILE"); logFile != "" {
		if err := logger.InitLogger(logFile); err != nil {
			log.Printf("Could not open log file %s: %v", logFile, err)
		}
		defer logger.Close()
	}

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrFindings) {
			os.Exit(cli.ExitFindings)
		}
		os.Exit(cli.ExitError)
	}
}
