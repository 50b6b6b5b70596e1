package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/foxfind/internal/core/domain"
)

var (
	searchTag   string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search Firefox bookmarks and history",
	Long: `Streams scored results out of every enabled profile.
Bookmarks are listed before history entries; use --tag to restrict the
search to one category ("bookmark" or "history").`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchTag, "tag", "t", "", `search tag ("bookmark", "history" or "firefox")`)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 for all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchRow is the printable projection of a result. The icon itself
// is not printable; rows record whether one was resolved.
type searchRow struct {
	Title    string          `json:"title"`
	URL      string          `json:"url"`
	Category domain.Category `json:"category"`
	Score    float64         `json:"score"`
	HasIcon  bool            `json:"has_icon"`
	Profile  string          `json:"profile"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	req := domain.SearchRequest{
		Text: args[0],
		Tag:  searchTag,
		Kind: domain.RequestKindText,
	}
	stream := searchService.Search(cmd.Context(), req)

	var rows []searchRow
	for {
		result, ok := stream.Next()
		if !ok {
			break
		}
		rows = append(rows, searchRow{
			Title:    result.Title,
			URL:      result.URL,
			Category: result.Category,
			Score:    result.Score,
			HasIcon:  result.Icon != nil,
			Profile:  result.Identity.ProfilePath,
		})
		if searchLimit > 0 && len(rows) >= searchLimit {
			break
		}
	}

	if searchJSON {
		return outputSearchJSON(cmd, rows)
	}
	return outputSearchTable(cmd, rows)
}

func outputSearchJSON(cmd *cobra.Command, rows []searchRow) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, rows []searchRow) error {
	if len(rows) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range rows {
		title := rows[i].Title
		if title == "" {
			title = rows[i].URL
		}

		cmd.Printf("  [%d] %s (%s, %.2f)\n", i+1, title, rows[i].Category, rows[i].Score)
		cmd.Printf("      %s\n", rows[i].URL)
		cmd.Println()
	}

	return nil
}
