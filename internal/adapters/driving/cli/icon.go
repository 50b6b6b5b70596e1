package cli

import (
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/foxfind/internal/core/domain"
)

var (
	iconProfile  string
	iconTitle    string
	iconCategory string
	iconOut      string
)

var iconCmd = &cobra.Command{
	Use:   "icon [url]",
	Short: "Re-resolve the favicon for an earlier result",
	Long: `Re-resolves the favicon for a previously returned result without
re-running the search. Only the icon database of the given profile is
read. With --out the icon is written as a PNG file.`,
	Args: cobra.ExactArgs(1),
	RunE: runIcon,
}

func init() {
	iconCmd.Flags().StringVarP(&iconProfile, "profile", "p", "", "profile directory the result came from")
	iconCmd.Flags().StringVar(&iconTitle, "title", "", "original result title")
	iconCmd.Flags().StringVar(&iconCategory, "category", string(domain.CategoryHistory), "original result category")
	iconCmd.Flags().StringVarP(&iconOut, "out", "o", "", "write the icon to this PNG file")
	_ = iconCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(iconCmd)
}

func runIcon(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	id := domain.ResultIdentity{
		URL:         args[0],
		Title:       iconTitle,
		Category:    domain.Category(iconCategory),
		ProfilePath: iconProfile,
	}

	result, err := searchService.ResolveByID(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("resolving icon: %w", err)
	}

	if result.Icon == nil {
		cmd.Println("No icon stored for this result.")
		return nil
	}

	bounds := result.Icon.Bounds()
	cmd.Printf("Icon resolved: %dx%d\n", bounds.Dx(), bounds.Dy())

	if iconOut == "" {
		return nil
	}

	out, err := os.Create(iconOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", iconOut, err)
	}
	defer out.Close()

	if err := png.Encode(out, result.Icon); err != nil {
		return fmt.Errorf("writing %s: %w", iconOut, err)
	}
	cmd.Printf("Written to %s\n", iconOut)
	return nil
}
