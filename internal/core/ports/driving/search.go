package driving

import (
	"context"

	"github.com/custodia-labs/foxfind/internal/core/domain"
)

// SearchService streams scored results out of the enabled profiles.
type SearchService interface {
	// Search returns a lazy result stream for the request. In all-mode
	// the stream yields bookmarks strictly before history. The stream
	// stops cleanly, without error, when ctx is cancelled.
	Search(ctx context.Context, req domain.SearchRequest) *domain.ResultStream

	// ResolveByID re-resolves the icon for a previously streamed
	// result without re-running the search. Only the icon store of the
	// identity's profile is opened. The returned result carries the
	// identity's title, URL and category with a zero score.
	ResolveByID(ctx context.Context, id domain.ResultIdentity) (*domain.SearchResult, error)
}
