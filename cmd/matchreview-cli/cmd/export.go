package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"matchreview/internal/adapters/editor"
	"matchreview/internal/application"
	"matchreview/internal/application/commands"
)

var (
	exportDir  string
	exportEdit bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write selections to a CSV file",
	Long: `Write all selections to selected_matches_<date>.csv in the export
directory and print the path of the file.

Examples:
  matchreview-cli export
  matchreview-cli export --dir ./out
  matchreview-cli export --edit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		m, err := GetManager(ctx)
		if err != nil {
			return err
		}

		dir := cfg.Export.Dir
		if exportDir != "" {
			dir = exportDir
		}

		result, err := commands.NewExportSelectionsCommand(m, application.NewExporter(dir, logger)).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), result.Message)
		fmt.Fprintln(cmd.OutOrStdout(), result.Path)

		if exportEdit {
			return editor.NewOpener().OpenFile(result.Path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "directory for the export file")
	exportCmd.Flags().BoolVarP(&exportEdit, "edit", "e", false, "open the export file in $EDITOR")
	rootCmd.AddCommand(exportCmd)
}
