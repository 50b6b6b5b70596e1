package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/foxfind/internal/core/domain"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage Firefox profiles",
	Long: `Lists, discovers and toggles the Firefox profiles searched by
foxfind. Disabled profiles are kept in the configuration but skipped
by every search.`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured profiles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if profileService == nil {
			return errors.New("profile service not configured")
		}
		profiles, err := profileService.List(cmd.Context())
		if err != nil {
			return err
		}
		printProfiles(cmd, profiles)
		return nil
	},
}

var profilesDiscoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Scan the profiles directory for new profiles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if profileService == nil {
			return errors.New("profile service not configured")
		}
		profiles, err := profileService.Discover(cmd.Context())
		if err != nil {
			return err
		}
		printProfiles(cmd, profiles)
		return nil
	},
}

var profilesEnableCmd = &cobra.Command{
	Use:   "enable [path]",
	Short: "Enable a profile for searching",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProfileEnabled(cmd, args[0], true)
	},
}

var profilesDisableCmd = &cobra.Command{
	Use:   "disable [path]",
	Short: "Exclude a profile from searching",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProfileEnabled(cmd, args[0], false)
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesDiscoverCmd)
	profilesCmd.AddCommand(profilesEnableCmd)
	profilesCmd.AddCommand(profilesDisableCmd)
	rootCmd.AddCommand(profilesCmd)
}

func setProfileEnabled(cmd *cobra.Command, path string, enabled bool) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}
	if err := profileService.SetEnabled(cmd.Context(), path, enabled); err != nil {
		return err
	}
	if enabled {
		cmd.Printf("Enabled %s\n", path)
	} else {
		cmd.Printf("Disabled %s\n", path)
	}
	return nil
}

func printProfiles(cmd *cobra.Command, profiles []domain.Profile) {
	if len(profiles) == 0 {
		cmd.Println("No profiles configured. Run 'foxfind profiles discover'.")
		return
	}
	for _, p := range profiles {
		marker := " "
		if p.Enabled {
			marker = "*"
		}
		cmd.Printf("  [%s] %s (%s)\n", marker, p.Name, p.Path)
	}
}
