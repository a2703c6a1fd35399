package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"matchreview/internal/adapters/catalog"
	"matchreview/internal/application/commands"
)

var pagesCatalog string

var pagesCmd = &cobra.Command{
	Use:   "pages [object-base]",
	Short: "List the pages of a catalog",
	Long: `List the pages of a matcher catalog (<name>_matches.json). Items are
grouped into pages by object base; each page shows how many items and
matches it has and how many of them are selected.

Examples:
  matchreview-cli pages --catalog ./out/NK_collectie_matches.json
  matchreview-cli pages NK1234`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if pagesCatalog != "" {
			cfg.Catalog.Path = pagesCatalog
		}
		if err := cfg.RequireCatalog(); err != nil {
			return err
		}

		m, err := GetManager(ctx)
		if err != nil {
			return err
		}

		base := ""
		if len(args) == 1 {
			base = args[0]
		}
		pages, err := commands.NewListPagesCommand(catalog.NewFile(cfg.Catalog.Path), m, base).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !stdoutIsTerminal() {
			for _, p := range pages {
				fmt.Fprintf(out, "%s\t%d\t%d\t%d\n", p.Base, p.Items, p.Matches, p.Selected)
			}
			return nil
		}

		rows := make([][]string, 0, len(pages))
		for _, p := range pages {
			rows = append(rows, []string{
				p.Base,
				strconv.Itoa(p.Items),
				strconv.Itoa(p.Matches),
				strconv.Itoa(p.Selected),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Base", "Items", "Matches", "Selected"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
		))
		return nil
	},
}

func init() {
	pagesCmd.Flags().StringVar(&pagesCatalog, "catalog", "", "path to the catalog file")
	rootCmd.AddCommand(pagesCmd)
}
