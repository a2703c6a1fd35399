package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"matchreview/internal/application/commands"
	"matchreview/internal/ports"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all selections",
	Long: `Remove all saved selections after asking for confirmation.

Warning: This operation cannot be undone. Export first if you need
the current selections.

Examples:
  matchreview-cli clear
  matchreview-cli clear --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		m, err := GetManager(ctx)
		if err != nil {
			return err
		}

		confirm := ports.Approved
		if !clearYes {
			confirm = stdinConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
		}

		result, err := commands.NewClearSelectionsCommand(m, confirm).Execute(ctx)
		if err != nil {
			return err
		}
		if result.Declined {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

// stdinConfirmer asks on out and reads a y/N answer from in
func stdinConfirmer(in io.Reader, out io.Writer) ports.Confirmer {
	reader := bufio.NewReader(in)
	return ports.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
}
