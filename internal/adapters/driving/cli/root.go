// Package cli implements the cobra command tree driving the core
// services.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/foxfind/internal/adapters/driven/config/file"
	"github.com/custodia-labs/foxfind/internal/adapters/driven/icons"
	"github.com/custodia-labs/foxfind/internal/adapters/driven/storage/firefox"
	"github.com/custodia-labs/foxfind/internal/core/ports/driving"
	"github.com/custodia-labs/foxfind/internal/core/services"
	"github.com/custodia-labs/foxfind/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Package-level services, wired by initServices. Tests inject fakes
// directly.
var (
	searchService  driving.SearchService
	profileService driving.ProfileService
	actionService  driving.ResultActionService
)

var rootCmd = &cobra.Command{
	Use:   "foxfind",
	Short: "Search Firefox bookmarks and history",
	Long: `Foxfind searches bookmarks and history across your Firefox profiles,
straight from the on-disk databases, and annotates results with their
favicons. Profiles are discovered once and can be toggled individually.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// initServices wires the driven adapters into the core services.
func initServices() error {
	if searchService != nil && profileService != nil && actionService != nil {
		return nil
	}

	profileStore, err := file.NewProfileStore("")
	if err != nil {
		return fmt.Errorf("opening profile config: %w", err)
	}

	searchService = services.NewSearchService(profileStore, firefox.NewFactory(), icons.NewDecoder())
	profileService = services.NewProfileService(profileStore, services.DefaultProfilesRoot())
	actionService = services.NewResultActionService()
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
