package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"matchreview/internal/application/commands"
	"matchreview/internal/domain"
)

var listObject string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved selections",
	Long: `List the saved selections in the order they were made.

On a terminal the selections are shown as a table; when the output is
piped the CSV export text is printed instead.

Examples:
  matchreview-cli list
  matchreview-cli list --object NK1234-a
  matchreview-cli list > selections.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		m, err := GetManager(ctx)
		if err != nil {
			return err
		}

		records, err := commands.NewListSelectionsCommand(m, listObject).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !stdoutIsTerminal() {
			_, err := fmt.Fprintln(out, domain.FormatExport(records))
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No selections")
			return nil
		}
		fmt.Fprintln(out, selectionTable(records))
		return nil
	},
}

func selectionTable(records []domain.SelectionRecord) string {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.ObjectNumber,
			r.SourceFile,
			r.MatchFile,
			r.MatchBase,
			domain.FormatSimilarity(r.Similarity),
		})
	}
	return renderTable(
		[]string{"#", "Object", "Source", "Match", "Match ID", "Similarity"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

func init() {
	listCmd.Flags().StringVarP(&listObject, "object", "o", "", "only selections for this object number")
	rootCmd.AddCommand(listCmd)
}
