package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive switcher",
	Long: `Launch the interactive quick switcher.

Type to filter tabs and bookmarks; results refresh once typing pauses.
Selecting a row activates it and closes the switcher.

Controls:
  ↑, ctrl+p, ctrl+k  - Previous row
  ↓, ctrl+n, ctrl+j  - Next row
  Enter              - Select item
  ctrl+y             - Copy URL
  Esc, ctrl+c        - Close

With --verbose, logs go to quickswitch.log in the configuration directory.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	svc, err := loadServices(cmd.Context())
	if err != nil {
		return err
	}

	if logger.IsVerbose() && svc.LogFile != "" {
		closer, err := logger.OpenFile(svc.LogFile)
		if err != nil {
			return err
		}
		defer closer.Close() //nolint:errcheck
	}

	surface := tui.NewSurface()
	ports := tui.NewPorts(svc.NewSession(), svc.NewActivator(surface.Close), svc.Actions, surface)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
