package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"matchreview/internal/adapters/catalog"
	"matchreview/internal/adapters/editor"
	"matchreview/internal/adapters/sqlite"
	"matchreview/internal/adapters/tui"
	"matchreview/internal/adapters/tui/views"
	"matchreview/internal/adapters/viewer"
	"matchreview/internal/application"
	"matchreview/internal/config"
	"matchreview/internal/logging"
)

var (
	configPath  string
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "matchreview [catalog]",
	Short: "Review image matches in the terminal",
	Long: `matchreview shows every source image of a matcher catalog next to its
candidate matches. Select the right matches with the keyboard or the
mouse and download them as CSV.

The catalog is the <name>_matches.json file written by the matcher.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			catalogPath = args[0]
		}
		return run(cmd.Context())
	},
}

func main() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the config file")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the catalog file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("matchreview needs a terminal; use matchreview-cli for scripting")
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if err := cfg.RequireCatalog(); err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	cat, err := catalog.NewFile(cfg.Catalog.Path).LoadCatalog()
	if err != nil {
		return err
	}

	store, err := sqlite.Open(cfg.Store.Path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Info("review started",
		"catalog", cfg.Catalog.Path,
		"pages", len(cat.Pages),
		"items", cat.ItemCount(),
		"store", store.Path(),
	)

	app := tui.NewApp(views.ReviewDeps{
		Catalog:     cat,
		Manager:     application.NewManager(ctx, store, logger),
		Exporter:    application.NewExporter(cfg.Export.Dir, logger),
		Viewer:      viewer.NewOpener(cfg.Viewer.Command),
		Logger:      logger,
		DoubleClick: cfg.DoubleClickWindow(),
	}, editor.NewOpener())

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	logger.Info("review finished")
	return nil
}
