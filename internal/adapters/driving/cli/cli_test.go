package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/foxfind/internal/core/domain"
	"github.com/custodia-labs/foxfind/internal/core/ports/driving"
)

// --- Fake services ---

// fakeSearchService implements driving.SearchService.
type fakeSearchService struct {
	results    []domain.SearchResult
	resolved   *domain.SearchResult
	resolveErr error

	lastRequest  domain.SearchRequest
	lastIdentity domain.ResultIdentity
}

func (f *fakeSearchService) Search(_ context.Context, req domain.SearchRequest) *domain.ResultStream {
	f.lastRequest = req
	i := 0
	return domain.NewResultStream(func() (domain.SearchResult, bool) {
		if i >= len(f.results) {
			return domain.SearchResult{}, false
		}
		r := f.results[i]
		i++
		return r, true
	})
}

func (f *fakeSearchService) ResolveByID(
	_ context.Context, id domain.ResultIdentity,
) (*domain.SearchResult, error) {
	f.lastIdentity = id
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.resolved, nil
}

// fakeProfileService implements driving.ProfileService.
type fakeProfileService struct {
	profiles []domain.Profile
	err      error

	enabledPath string
	enabledFlag bool
}

func (f *fakeProfileService) List(_ context.Context) ([]domain.Profile, error) {
	return f.profiles, f.err
}

func (f *fakeProfileService) SetEnabled(_ context.Context, path string, enabled bool) error {
	f.enabledPath = path
	f.enabledFlag = enabled
	return f.err
}

func (f *fakeProfileService) Discover(_ context.Context) ([]domain.Profile, error) {
	return f.profiles, f.err
}

// fakeActionService implements driving.ResultActionService.
type fakeActionService struct {
	openedURL string
	copiedURL string
	err       error
}

func (f *fakeActionService) Open(_ context.Context, url string) error {
	f.openedURL = url
	return f.err
}

func (f *fakeActionService) Copy(_ context.Context, url string) error {
	f.copiedURL = url
	return f.err
}

// --- Test helpers ---

// executeCommand runs the root command with fakes injected and returns
// the captured output.
func executeCommand(t *testing.T, search driving.SearchService, profiles driving.ProfileService,
	actions driving.ResultActionService, args ...string,
) (string, error) {
	t.Helper()

	origSearch, origProfiles, origActions := searchService, profileService, actionService
	searchService, profileService, actionService = search, profiles, actions
	t.Cleanup(func() {
		searchService, profileService, actionService = origSearch, origProfiles, origActions
		resetSearchFlags()
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetSearchFlags restores flag defaults mutated by a run.
func resetSearchFlags() {
	searchTag = ""
	searchLimit = 0
	searchJSON = false
	iconProfile = ""
	iconTitle = ""
	iconCategory = string(domain.CategoryHistory)
	iconOut = ""

	// Cobra remembers that a required flag was set; forget it between
	// runs.
	if f := iconCmd.Flags().Lookup("profile"); f != nil {
		f.Changed = false
	}
}
