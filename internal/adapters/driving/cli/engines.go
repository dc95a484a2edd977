package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List web search engines",
	Long: `Lists the engines available for the web search entry. The default
is marked with '*'. Change it with 'quickswitch settings set-engine'.`,
	Args: cobra.NoArgs,
	RunE: runEngines,
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}

func runEngines(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(cmd.Context())
	if err != nil {
		return err
	}
	if svc.Engines == nil {
		return errors.New("engine service not configured")
	}

	engines, err := svc.Engines.SearchEngines(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list engines: %w", err)
	}

	for _, e := range engines {
		marker := " "
		if e.Default {
			marker = "*"
		}
		cmd.Printf("%s %-12s %s\n", marker, e.Name, e.URLTemplate)
	}
	return nil
}
