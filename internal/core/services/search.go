package services

import (
	"context"
	"fmt"
	"image"

	"github.com/custodia-labs/foxfind/internal/core/domain"
	"github.com/custodia-labs/foxfind/internal/core/ports/driven"
	"github.com/custodia-labs/foxfind/internal/core/ports/driving"
	"github.com/custodia-labs/foxfind/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService coordinates multi-profile searches. It owns tag
// classification, per-profile query execution, scoring, lazy icon
// resolution and cancellation propagation. A profile whose record
// store cannot be opened is skipped; a profile whose icon store cannot
// be opened still yields results, just without icons.
type SearchService struct {
	profiles driven.ProfileConfigStore
	stores   driven.StoreFactory
	decoder  driven.IconDecoder
}

// NewSearchService creates a new search service.
// The decoder parameter is optional (can be nil); without it results
// carry no icon.
func NewSearchService(
	profiles driven.ProfileConfigStore,
	stores driven.StoreFactory,
	decoder driven.IconDecoder,
) *SearchService {
	return &SearchService{
		profiles: profiles,
		stores:   stores,
		decoder:  decoder,
	}
}

// Search returns the lazy result stream for a request. All-mode
// concatenates the bookmark stream strictly before the history stream;
// this ordering is a documented guarantee.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) *domain.ResultStream {
	logger.Section("Search Execution")
	logger.Debug("Text: %q, tag: %q, kind: %q", req.Text, req.Tag, req.Kind)

	if req.Kind == domain.RequestKindProcess {
		logger.Debug("Process search, returning no results")
		return domain.EmptyResultStream()
	}

	mode := domain.ClassifyTag(req.Tag)
	logger.Info("Search mode: %s", mode)

	switch mode {
	case domain.SearchModeAll:
		return domain.ConcatResultStreams(
			s.searchCategory(ctx, req, domain.CategoryBookmark),
			s.searchCategory(ctx, req, domain.CategoryHistory),
		)
	case domain.SearchModeBookmarks:
		return s.searchCategory(ctx, req, domain.CategoryBookmark)
	case domain.SearchModeHistory:
		return s.searchCategory(ctx, req, domain.CategoryHistory)
	default:
		return domain.EmptyResultStream()
	}
}

// searchCategory produces the lazy per-category sequence. Profiles are
// visited in their configured order; the icon store of a profile is
// opened only once its record query has produced at least one row.
// Cancellation is checked before every yield and right after a record
// cursor is opened; the stream then stops cleanly with all handles
// released.
func (s *SearchService) searchCategory(
	ctx context.Context, req domain.SearchRequest, category domain.Category,
) *domain.ResultStream {
	profiles, err := s.enabledProfiles()
	if err != nil {
		logger.Warn("Loading profiles failed: %v", err)
		return domain.EmptyResultStream()
	}
	logger.Debug("Searching %s in %d enabled profile(s)", category, len(profiles))

	tokens := req.SplitTokens()

	var (
		idx         int
		prof        domain.Profile
		places      driven.PlacesHandle
		cursor      driven.RecordCursor
		icons       driven.IconHandle
		iconsFailed bool
	)

	closeProfile := func() {
		if cursor != nil {
			cursor.Close()
			cursor = nil
		}
		if places != nil {
			places.Close()
			places = nil
		}
		if icons != nil {
			icons.Close()
			icons = nil
		}
		iconsFailed = false
	}

	return domain.NewResultStream(func() (domain.SearchResult, bool) {
		for {
			if ctx.Err() != nil {
				logger.Debug("Search cancelled")
				closeProfile()
				return domain.SearchResult{}, false
			}

			if cursor == nil {
				if idx >= len(profiles) {
					return domain.SearchResult{}, false
				}
				prof = profiles[idx]
				idx++

				handle, err := s.stores.OpenPlaces(prof.Path)
				if err != nil {
					logger.Warn("Skipping profile %s: %v", prof.Path, err)
					continue
				}
				rows, err := handle.QueryRecords(ctx, category, tokens)
				if err != nil {
					logger.Warn("Skipping profile %s: %v", prof.Path, err)
					handle.Close()
					continue
				}
				places, cursor = handle, rows

				if ctx.Err() != nil {
					logger.Debug("Search cancelled")
					closeProfile()
					return domain.SearchResult{}, false
				}
			}

			if !cursor.Next() {
				if err := cursor.Err(); err != nil {
					logger.Warn("Record cursor in %s: %v", prof.Path, err)
				}
				closeProfile()
				continue
			}

			record := cursor.Record()

			return domain.SearchResult{
				Title:    record.Title,
				URL:      record.URL,
				Category: category,
				Score:    ScoreTokens(record.Title, req.Text),
				Icon:     s.resolveIcon(ctx, &icons, &iconsFailed, prof.Path, record.URL),
				Identity: domain.ResultIdentity{
					URL:         record.URL,
					Title:       record.Title,
					Category:    category,
					ProfilePath: prof.Path,
				},
			}, true
		}
	})
}

// resolveIcon lazily opens the profile's icon store on first use and
// looks up the favicon for the page URL. Every failure degrades to a
// nil image; an icon store that failed to open is not retried for the
// rest of the profile.
func (s *SearchService) resolveIcon(
	ctx context.Context, icons *driven.IconHandle, failed *bool, profilePath, pageURL string,
) image.Image {
	if *icons == nil {
		if *failed {
			return nil
		}
		handle, err := s.stores.OpenIcons(profilePath)
		if err != nil {
			logger.Warn("Icon store unavailable for %s: %v", profilePath, err)
			*failed = true
			return nil
		}
		*icons = handle
	}

	data, err := (*icons).QueryIcon(ctx, pageURL)
	if err != nil {
		logger.Debug("Icon lookup for %s: %v", pageURL, err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return s.decodeIcon(data)
}

// decodeIcon attempts the single decode pass. Undecodable blobs yield
// no icon, never an error.
func (s *SearchService) decodeIcon(data []byte) image.Image {
	if s.decoder == nil {
		return nil
	}
	img, err := s.decoder.Decode(data)
	if err != nil {
		logger.Debug("Icon decode failed: %v", err)
		return nil
	}
	return img
}

// ResolveByID re-resolves a result's icon from its identity. Only the
// icon store of the identity's profile is opened; the record query is
// not re-run. The call is idempotent and read-only.
func (s *SearchService) ResolveByID(
	ctx context.Context, id domain.ResultIdentity,
) (*domain.SearchResult, error) {
	if id.ProfilePath == "" || id.URL == "" {
		return nil, fmt.Errorf("%w: identity missing profile path or URL", domain.ErrInvalidInput)
	}

	logger.Section("Icon Resolution")
	logger.Debug("Resolving icon for %s in %s", id.URL, id.ProfilePath)

	result := &domain.SearchResult{
		Title:    id.Title,
		URL:      id.URL,
		Category: id.Category,
		Identity: id,
	}

	icons, err := s.stores.OpenIcons(id.ProfilePath)
	if err != nil {
		logger.Warn("Icon store unavailable for %s: %v", id.ProfilePath, err)
		return result, nil
	}
	defer icons.Close()

	data, err := icons.QueryIcon(ctx, id.URL)
	if err != nil {
		logger.Debug("Icon lookup for %s: %v", id.URL, err)
		return result, nil
	}
	if len(data) > 0 {
		result.Icon = s.decodeIcon(data)
	}
	return result, nil
}

// enabledProfiles loads the configured profiles and keeps the enabled
// subset in order.
func (s *SearchService) enabledProfiles() ([]domain.Profile, error) {
	all, err := s.profiles.Load()
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}
	return domain.EnabledProfiles(all), nil
}
