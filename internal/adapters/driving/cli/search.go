package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "List the results for a term",
	Long: `Prints the rows the switcher would show for a term: matching tabs,
then matching bookmarks, then one web search entry. Without a term every
tab and bookmark is listed and there is no web search entry.

Use the printed index with 'quickswitch open' to activate a row.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// resultJSON is the JSON form of one row.
type resultJSON struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd.Context())
	if err != nil {
		return err
	}

	term := ""
	if len(args) == 1 {
		term = args[0]
	}

	results := domain.LimitResults(svc.Aggregator.Aggregate(cmd.Context(), term), searchLimit)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	outputSearchTable(cmd, results)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	rows := make([]resultJSON, len(results))
	for i := range results {
		rows[i] = resultJSON{
			Index: i,
			Kind:  results[i].Kind.String(),
			Title: results[i].Title,
			URL:   results[i].URL,
			Icon:  results[i].IconURL,
		}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	for i := range results {
		cmd.Printf("  [%d] %-8s %s\n", i, results[i].Kind, results[i].Title)
		if results[i].URL != "" {
			cmd.Printf("      %s\n", results[i].URL)
		}
	}
}
