package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

var openIndex int

var openCmd = &cobra.Command{
	Use:   "open [term]",
	Short: "Activate a result",
	Long: `Aggregates the results for a term and activates one row: a tab is
focused, a bookmark opens in a new tab and the web search entry runs the
search in a new tab.

The first row is used unless --index is given. Indices match the
output of 'quickswitch search'.`,
	Example: `  quickswitch open github
  quickswitch open "go modules" --index 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().IntVarP(&openIndex, "index", "i", 0, "row to activate")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd.Context())
	if err != nil {
		return err
	}

	term := ""
	if len(args) == 1 {
		term = args[0]
	}

	results := svc.Aggregator.Aggregate(cmd.Context(), term)
	if openIndex < 0 || openIndex >= len(results) {
		return fmt.Errorf("%w: %d (%d results)", ErrIndexOutOfRange, openIndex, len(results))
	}

	result := results[openIndex]
	if result.Kind == domain.KindTab && result.TabID == "" {
		cmd.Printf("Nothing to activate: tab %q has no ID\n", result.Title)
		return nil
	}
	if err := svc.NewActivator(nil).Activate(cmd.Context(), result); err != nil {
		return err
	}

	cmd.Printf("%s: %s\n", result.Kind.ActionText(), result.Title)
	return nil
}
