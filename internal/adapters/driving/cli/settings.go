package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change quickswitch settings.

Settings are stored in config.toml in the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsEngineCmd = &cobra.Command{
	Use:   "set-engine <name>",
	Short: "Set the default web search engine",
	Long:  `Set the engine used for the web search entry. See 'quickswitch engines' for names.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsEngine,
}

var settingsDebounceCmd = &cobra.Command{
	Use:   "set-debounce <milliseconds>",
	Short: "Set the typing quiet period",
	Long:  `Set how long typing must pause before the switcher queries. The default is 150.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDebounce,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsEngineCmd)
	settingsCmd.AddCommand(settingsDebounceCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(cmd.Context())
	if err != nil {
		return err
	}
	if svc.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Browser]")
	cmd.Printf("  DevTools URL: %s\n", settings.Browser.CDPURL)
	cmd.Println()

	cmd.Println("[Bookmarks]")
	cmd.Printf("  Chrome file: %s\n", orAuto(settings.Bookmarks.ChromeFile))
	cmd.Printf("  Firefox places: %s\n", orAuto(settings.Bookmarks.FirefoxPlaces))
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Default engine: %s\n", settings.Search.DefaultEngine)
	if settings.Search.HasCustomEngine() {
		cmd.Printf("  Custom engine: %s (%s)\n", settings.Search.CustomName, settings.Search.CustomURL)
	}
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Debounce: %s\n", settings.UI.Debounce())

	return nil
}

func orAuto(path string) string {
	if path == "" {
		return "(auto-detect)"
	}
	return path
}

func runSettingsEngine(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd.Context())
	if err != nil {
		return err
	}
	if svc.Settings == nil {
		return errors.New("settings service not configured")
	}

	name := args[0]
	if svc.Engines != nil {
		engines, err := svc.Engines.SearchEngines(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list engines: %w", err)
		}
		names := make([]string, 0, len(engines))
		found := false
		for _, e := range engines {
			names = append(names, e.Name)
			if strings.EqualFold(e.Name, name) {
				name = e.Name
				found = true
			}
		}
		if !found {
			return fmt.Errorf("%w %q (available: %s)", ErrUnknownEngine, args[0], strings.Join(names, ", "))
		}
	}

	if err := svc.Settings.SetDefaultEngine(name); err != nil {
		return fmt.Errorf("failed to set engine: %w", err)
	}
	cmd.Printf("Default engine set to %s\n", name)
	return nil
}

func runSettingsDebounce(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd.Context())
	if err != nil {
		return err
	}
	if svc.Settings == nil {
		return errors.New("settings service not configured")
	}

	millis, err := strconv.Atoi(args[0])
	if err != nil || millis <= 0 {
		return fmt.Errorf("invalid debounce %q: must be a positive number of milliseconds", args[0])
	}

	if err := svc.Settings.SetDebounce(millis); err != nil {
		return fmt.Errorf("failed to set debounce: %w", err)
	}
	cmd.Printf("Debounce set to %dms\n", millis)
	return nil
}
