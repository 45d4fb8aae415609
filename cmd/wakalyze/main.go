package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/masaishi/wakalyze/internal/cli"
	"github.com/masaishi/wakalyze/internal/db"
	"github.com/masaishi/wakalyze/internal/repository"
	"github.com/masaishi/wakalyze/internal/wakapi"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.wakalyze/wakalyze.db
	dbPath := os.Getenv("WAKALYZE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".wakalyze", "wakalyze.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer wakapi.Observer = wakapi.NoopObserver{}
	if os.Getenv("WAKALYZE_LOG_CALLS") != "" {
		observer = wakapi.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Cache:    repository.NewSQLiteHeartbeatCacheRepo(database),
		Observer: observer,
		IsTerminal: func() bool {
			return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		},
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SetArgs(cli.NormalizeArgs(os.Args[1:]))
	return rootCmd.Execute()
}
