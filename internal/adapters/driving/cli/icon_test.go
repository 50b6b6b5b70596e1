package cli

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foxfind/internal/core/domain"
)

func TestIconCmd_Use(t *testing.T) {
	assert.Equal(t, "icon [url]", iconCmd.Use)
}

func TestIconCmd_ResolvesIcon(t *testing.T) {
	search := &fakeSearchService{resolved: &domain.SearchResult{
		URL:  "https://example.com/",
		Icon: image.NewRGBA(image.Rect(0, 0, 16, 16)),
	}}

	out, err := executeCommand(t, search, &fakeProfileService{}, &fakeActionService{},
		"icon", "https://example.com/", "--profile", "/p/alpha", "--title", "Example Site", "--category", "Bookmark")

	require.NoError(t, err)
	assert.Contains(t, out, "Icon resolved: 16x16")

	assert.Equal(t, "https://example.com/", search.lastIdentity.URL)
	assert.Equal(t, "Example Site", search.lastIdentity.Title)
	assert.Equal(t, domain.CategoryBookmark, search.lastIdentity.Category)
	assert.Equal(t, "/p/alpha", search.lastIdentity.ProfilePath)
}

func TestIconCmd_NoIconStored(t *testing.T) {
	search := &fakeSearchService{resolved: &domain.SearchResult{URL: "https://example.com/"}}

	out, err := executeCommand(t, search, &fakeProfileService{}, &fakeActionService{},
		"icon", "https://example.com/", "--profile", "/p/alpha")

	require.NoError(t, err)
	assert.Contains(t, out, "No icon stored")
}

func TestIconCmd_RequiresProfile(t *testing.T) {
	_, err := executeCommand(t, &fakeSearchService{}, &fakeProfileService{}, &fakeActionService{},
		"icon", "https://example.com/")

	assert.Error(t, err)
}

func TestIconCmd_DefaultCategoryIsHistory(t *testing.T) {
	search := &fakeSearchService{resolved: &domain.SearchResult{}}

	_, err := executeCommand(t, search, &fakeProfileService{}, &fakeActionService{},
		"icon", "https://example.com/", "--profile", "/p/alpha")

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryHistory, search.lastIdentity.Category)
}
