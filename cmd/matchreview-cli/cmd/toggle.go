package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"matchreview/internal/application/commands"
	"matchreview/internal/domain"
)

var (
	toggleBase       string
	toggleSimilarity float64
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <object-number> <source-file> <match-file>",
	Short: "Select or unselect one match",
	Long: `Toggle the selection of a match for an object. A selected match is
removed, any other match is added.

Examples:
  matchreview-cli toggle NK1234-a NK1234-a.jpg 98765_2.jpg --base 98765 --similarity 0.91
  matchreview-cli toggle NK1234-a NK1234-a.jpg 98765_2.jpg   # unselect`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		m, err := GetManager(ctx)
		if err != nil {
			return err
		}

		rec := domain.SelectionRecord{
			ObjectNumber: args[0],
			SourceFile:   args[1],
			MatchFile:    args[2],
			MatchBase:    toggleBase,
			Similarity:   toggleSimilarity,
		}
		if rec.MatchBase == "" {
			rec.MatchBase = domain.MatchBase(rec.MatchFile)
		}

		result, err := commands.NewToggleSelectionCommand(m, rec).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d selected)\n", result.Message, result.Count)
		return nil
	},
}

func init() {
	toggleCmd.Flags().StringVarP(&toggleBase, "base", "b", "", "match id (defaults to the file name before the first underscore)")
	toggleCmd.Flags().Float64Var(&toggleSimilarity, "similarity", 0, "similarity score to record")
	rootCmd.AddCommand(toggleCmd)
}
