package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [url]",
	Short: "Open a result URL in the default browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if actionService == nil {
			return errors.New("action service not configured")
		}
		return actionService.Open(cmd.Context(), args[0])
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy [url]",
	Short: "Copy a result URL to the clipboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if actionService == nil {
			return errors.New("action service not configured")
		}
		if err := actionService.Copy(cmd.Context(), args[0]); err != nil {
			return err
		}
		cmd.Println("Copied to clipboard.")
		return nil
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(copyCmd)
}
