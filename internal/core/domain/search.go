package domain

import (
	"image"
	"strings"
)

// Search tags recognised by the coordinator. The empty tag behaves
// like TagFirefox and searches everything.
const (
	TagBookmark = "bookmark"
	TagHistory  = "history"
	TagFirefox  = "firefox"
)

// RequestKind distinguishes plain text searches from process-style
// searches issued by the host. Process searches never hit the stores.
type RequestKind string

// Available request kinds.
const (
	// RequestKindText is an ordinary free-text search.
	RequestKindText RequestKind = "text"

	// RequestKindProcess is a host-side process search; it always
	// yields an empty stream.
	RequestKindProcess RequestKind = "process"
)

// SearchMode selects which result categories a search produces.
type SearchMode string

// Available search modes.
const (
	// SearchModeNone matches no category; the search yields nothing.
	SearchModeNone SearchMode = "none"

	// SearchModeAll yields bookmarks followed by history.
	SearchModeAll SearchMode = "all"

	// SearchModeBookmarks yields bookmarks only.
	SearchModeBookmarks SearchMode = "bookmarks"

	// SearchModeHistory yields history only.
	SearchModeHistory SearchMode = "history"
)

// String returns the string representation.
func (m SearchMode) String() string {
	return string(m)
}

// ClassifyTag maps a search tag to a mode. The empty tag and the
// firefox tag search everything; unrecognised tags map to
// SearchModeNone, which yields an empty stream rather than an error.
func ClassifyTag(tag string) SearchMode {
	switch tag {
	case "", TagFirefox:
		return SearchModeAll
	case TagBookmark:
		return SearchModeBookmarks
	case TagHistory:
		return SearchModeHistory
	default:
		return SearchModeNone
	}
}

// Category classifies a result as a bookmark or a history entry.
type Category string

// Available result categories.
const (
	CategoryBookmark Category = "Bookmark"
	CategoryHistory  Category = "History"
)

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	return c == CategoryBookmark || c == CategoryHistory
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// SearchRequest is one immutable search invocation.
type SearchRequest struct {
	// Text is the free search text.
	Text string

	// Tag selects the result category, see ClassifyTag.
	Tag string

	// Kind distinguishes text from process searches.
	Kind RequestKind
}

// SplitTokens splits the search text on single spaces. Consecutive
// separators yield empty tokens on purpose: each split segment becomes
// one predicate term, and an empty token binds to a LIKE '%%' no-op
// filter. This matches the splitting behaviour hosts already rely on.
func (r SearchRequest) SplitTokens() []string {
	return strings.Split(r.Text, " ")
}

// RawRecord is one row read from a profile's places database.
type RawRecord struct {
	// Title is the page title; empty when the store holds none.
	Title string

	// URL is the page URL.
	URL string

	// VisitCount is the page's recorded visit count.
	VisitCount int
}

// SearchResult is a single scored search hit.
type SearchResult struct {
	// Title is the page title, possibly empty.
	Title string

	// URL is the page URL.
	URL string

	// Category labels the result a bookmark or a history entry.
	Category Category

	// Score is the token match score. Zero-score results are still
	// emitted; filtering belongs to the caller.
	Score float64

	// Icon is the decoded favicon, nil when the page has none or the
	// stored blob could not be decoded.
	Icon image.Image

	// Identity allows re-resolving this result's icon later without
	// re-running the search.
	Identity ResultIdentity
}
