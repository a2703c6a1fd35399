package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"matchreview/internal/adapters/sqlite"
	"matchreview/internal/application"
	"matchreview/internal/config"
	"matchreview/internal/logging"
)

var (
	configPath string
	storePath  string

	cfg     *config.Config
	logger  *slog.Logger
	store   *sqlite.Store
	manager *application.Manager
)

var rootCmd = &cobra.Command{
	Use:   "matchreview-cli",
	Short: "CLI for image match selections",
	Long: `matchreview-cli works on the selections made while reviewing
image matches: list them, export them as CSV, clear or toggle them,
and inspect the pages of a matcher catalog.

It shares the selection store with the matchreview TUI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help and setup commands
		switch cmd.Name() {
		case "help", "completion", "init":
			return nil
		}

		var err error
		cfg, _, _, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if storePath != "" {
			cfg.Store.Path = storePath
		}

		logger, err = logging.NewFromConfig(cfg)
		if err != nil {
			return err
		}
		logger = logger.With("component", "cli", "command", cmd.Name())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// Execute runs the root command
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command and closes the store on every path.
// cobra skips the post-run hook when RunE fails.
func run() error {
	err := rootCmd.Execute()
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	return err
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store, manager = nil, nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", "", "path to the selection store")
}

// GetManager opens the selection store on first use and returns the
// manager backed by it
func GetManager(ctx context.Context) (*application.Manager, error) {
	if manager != nil {
		return manager, nil
	}
	var err error
	store, err = sqlite.Open(cfg.Store.Path, logger)
	if err != nil {
		return nil, err
	}
	manager = application.NewManager(ctx, store, logger)
	return manager, nil
}
