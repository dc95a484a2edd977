// Package cli provides the quickswitch command line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// version is set at build time.
var version = "dev"

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Options are the root flags that decide how services are built.
type Options struct {
	// ConfigDir holds config.toml and the TUI log. Empty means ~/.quickswitch.
	ConfigDir string

	// CDPURL overrides browser.cdp_url.
	CDPURL string

	// Demo replaces the browser with built-in tabs and bookmarks.
	Demo bool
}

// Services bundles the driving ports the commands use.
type Services struct {
	Aggregator driving.Aggregator
	Engines    driving.EngineService
	Actions    driving.ResultActionService
	Settings   driving.SettingsService

	// NewSession starts an interactive switcher session.
	NewSession func() driving.Session

	// NewActivator returns an activator that calls closeSurface after a
	// successful activation. closeSurface may be nil.
	NewActivator func(closeSurface func()) driving.Activator

	// LogFile is where the TUI writes verbose logs.
	LogFile string

	// Close releases browser connections and file watchers. Optional.
	Close func() error
}

// Builder creates services for the parsed root flags.
type Builder func(ctx context.Context, opts Options) (*Services, error)

var (
	builder Builder
	current *Services
	options Options
	verbose bool
)

// SetBuilder sets how services are created. It is called once from main.
func SetBuilder(b Builder) {
	builder = b
}

// isTerminal reports whether stdout is interactive.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "quickswitch",
	Short: "Switch between browser tabs, bookmarks and web searches",
	Long: `quickswitch lists your open browser tabs and bookmarks in one place.

Type to filter by title or URL; the last row always offers a web search
for what you typed. Selecting a row focuses the tab, opens the bookmark
or runs the search.

Tabs come from a Chrome started with --remote-debugging-port. Bookmarks
are read from Chrome's Bookmarks file and Firefox's places.sqlite.

Run without a command in a terminal to open the interactive switcher.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal() {
			return cmd.Help()
		}
		return runTUI(cmd, args)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "log aggregation and dispatch details")
	flags.StringVar(&options.ConfigDir, "config", "", "configuration directory (default ~/.quickswitch)")
	flags.StringVar(&options.CDPURL, "cdp-url", "", "Chrome DevTools endpoint (overrides browser.cdp_url)")
	flags.BoolVar(&options.Demo, "demo", false, "use built-in demo tabs and bookmarks instead of a browser")
}

// loadServices builds the services on first use.
func loadServices(ctx context.Context) (*Services, error) {
	if current != nil {
		return current, nil
	}
	if builder == nil {
		return nil, ErrNotConfigured
	}

	s, err := builder(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("initialising services: %w", err)
	}
	current = s
	return current, nil
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	defer func() {
		if current == nil || current.Close == nil {
			return
		}
		if err := current.Close(); err != nil {
			logger.Warn("closing services: %v", err)
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}
