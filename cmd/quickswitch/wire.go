package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/custodia-labs/quickswitch/internal/adapters/driven/bookmarks/chrome"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/bookmarks/firefox"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/cdp"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/searchengine"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/cli"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/core/services"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// LogFileName is the verbose TUI log inside the configuration directory.
const LogFileName = "quickswitch.log"

// build wires driven adapters into the services the CLI uses.
func build(_ context.Context, opts cli.Options) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	cfg := services.LoadSettings(store)
	if opts.CDPURL != "" {
		cfg.Browser.CDPURL = opts.CDPURL
	}

	engines := searchengine.NewRegistry(cfg.Search)

	var (
		tabs      driven.TabSource
		browser   driven.Browser
		bookmarks []driven.BookmarkSource
		closers   []func() error
	)

	if opts.Demo {
		demoTabs := memory.NewTabSource(memory.DemoTabs()...)
		tabs = demoTabs
		browser = memory.NewBrowser(demoTabs, engines)
		bookmarks = append(bookmarks, memory.NewBookmarkSource("demo", memory.DemoBookmarks()...))
	} else {
		client := cdp.NewClient(cfg.Browser.CDPURL, cdp.NewRateLimiter(0, 0))
		closers = append(closers, func() error {
			client.Close()
			return nil
		})
		tabs = cdp.NewTabSource(client)
		browser = cdp.NewBrowser(client, engines)

		chromeSource := chrome.NewSource(cfg.Bookmarks.ChromeFile)
		if _, err := os.Stat(chromeSource.Path()); err == nil {
			if err := chromeSource.Watch(); err != nil {
				logger.Warn("Not watching %s: %v", chromeSource.Path(), err)
			} else {
				closers = append(closers, chromeSource.Close)
			}
			bookmarks = append(bookmarks, chromeSource)
		} else {
			logger.Debug("No Chrome bookmarks at %s", chromeSource.Path())
		}

		if ff := firefox.NewSource(cfg.Bookmarks.FirefoxPlaces); ff.Path() != "" {
			bookmarks = append(bookmarks, ff)
		}
	}

	agg := services.NewAggregatorService(tabs, engines, bookmarks...)
	debounce := cfg.UI.Debounce()

	return &cli.Services{
		Aggregator: agg,
		Engines:    engines,
		Actions:    services.NewResultActionService(engines),
		Settings:   services.NewSettingsService(store),
		NewSession: func() driving.Session {
			return services.NewSession(agg, debounce)
		},
		NewActivator: func(closeSurface func()) driving.Activator {
			return services.NewActivationService(browser, driven.SurfaceFunc(closeSurface))
		},
		LogFile: filepath.Join(configDir, LogFileName),
		Close: func() error {
			var errs []error
			for _, c := range closers {
				errs = append(errs, c())
			}
			return errors.Join(errs...)
		},
	}, nil
}
