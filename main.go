package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/cli"
	"memo/internal/config"
	"memo/internal/logs"
	"memo/internal/memos/data"
	"memo/internal/memos/service"
	"memo/internal/tui"
)

func main() {
	// Parse CLI flags
	dirFlag := flag.String("dir", "", "Memo directory")
	flag.StringVar(dirFlag, "d", "", "Memo directory (shorthand)")
	dbFlag := flag.String("db", "", "PostgreSQL connection URI")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{
		Dir:         *dirFlag,
		DatabaseURI: *dbFlag,
	})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Ensure memo directory exists; it also holds the debug log
	if err := cfg.EnsureDir(); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	if err := logs.Initialize(cfg.Dir, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open memo store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	memoSvc, err := service.NewMemoService(ctx, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not initialize memo service: %v\n", err)
		os.Exit(1)
	}

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		exitCode := cli.Run(args, memoSvc)
		store.Close()
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Infof("Starting app in TUI mode (%d memos)", memoSvc.Count())
	p := tea.NewProgram(tui.NewAppModel(memoSvc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (data.Store, error) {
	if cfg.UsesDatabase() {
		logs.Logger.Infof("Using PostgreSQL memo store")
		return data.NewPGStore(ctx, cfg.DatabaseURI)
	}
	logs.Logger.Infof("Using file memo store at %s", cfg.Dir)
	return data.NewFileStore(cfg.Dir)
}
