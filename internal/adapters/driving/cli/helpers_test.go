package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickswitch/internal/adapters/driven/searchengine"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/core/services"
)

type testEnv struct {
	browser *memory.Browser
	store   *memory.ConfigStore
}

// setupTestServices installs demo-backed services and resets command
// state when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	tabs := memory.NewTabSource(memory.DemoTabs()...)
	bookmarks := memory.NewBookmarkSource("demo", memory.DemoBookmarks()...)
	engines := searchengine.NewRegistry(domain.SearchSettings{DefaultEngine: "Google"})
	store := memory.NewConfigStore()
	browser := memory.NewBrowser(tabs, engines)
	agg := services.NewAggregatorService(tabs, engines, bookmarks)

	current = &Services{
		Aggregator: agg,
		Engines:    engines,
		Actions:    services.NewResultActionService(engines),
		Settings:   services.NewSettingsService(store),
		NewSession: func() driving.Session {
			return services.NewSession(agg, time.Hour)
		},
		NewActivator: func(closeSurface func()) driving.Activator {
			return services.NewActivationService(browser, driven.SurfaceFunc(closeSurface))
		},
	}

	t.Cleanup(resetState)
	return &testEnv{browser: browser, store: store}
}

func resetState() {
	current = nil
	builder = nil
	options = Options{}
	verbose = false
	searchJSON = false
	searchLimit = 0
	openIndex = 0
	resetHelp(rootCmd)
}

// resetHelp clears --help so a help test does not leak into the next run.
func resetHelp(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	for _, c := range cmd.Commands() {
		resetHelp(c)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
