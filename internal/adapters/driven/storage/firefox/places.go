package firefox

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/custodia-labs/foxfind/internal/core/domain"
	"github.com/custodia-labs/foxfind/internal/core/ports/driven"
)

// Base selects per category. The token predicate is appended by
// QueryRecords. Bookmarks resolve through the moz_bookmarks foreign
// key onto the page table; history reads the page table directly.
const (
	bookmarksBaseQuery = `
		SELECT moz_places.title, moz_places.url, moz_places.visit_count
		FROM moz_bookmarks INNER JOIN moz_places ON moz_bookmarks.fk = moz_places.id`

	historyBaseQuery = `
		SELECT title, url, visit_count FROM moz_places`
)

// placesHandle implements driven.PlacesHandle over one read-only
// connection.
type placesHandle struct {
	db *sql.DB
}

var _ driven.PlacesHandle = (*placesHandle)(nil)

// QueryRecords appends the tokenised predicate to the category's base
// select and returns a lazy forward-only cursor over the matches.
func (h *placesHandle) QueryRecords(
	ctx context.Context, category domain.Category, tokens []string,
) (driven.RecordCursor, error) {
	base := historyBaseQuery
	if category == domain.CategoryBookmark {
		base = bookmarksBaseQuery
	}

	where, args := tokenPredicate(tokens)
	rows, err := h.db.QueryContext(ctx, base+where, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	return &recordCursor{rows: rows}, nil
}

// Close releases the underlying connection.
func (h *placesHandle) Close() error {
	return h.db.Close()
}

// tokenPredicate builds the WHERE clause for the split search text:
// one (url LIKE $pN OR title LIKE $pN) term per token, ANDed together,
// each bound to %token%. Values are always bound as named parameters,
// never interpolated. Empty tokens still produce a term; bound to '%%'
// it matches every row, keeping the naive-splitting contract intact.
func tokenPredicate(tokens []string) (string, []any) {
	if len(tokens) == 0 {
		return "", nil
	}

	var clause strings.Builder
	clause.WriteString(" WHERE")
	args := make([]any, 0, len(tokens))
	for i, token := range tokens {
		name := fmt.Sprintf("p%d", i)
		if i > 0 {
			clause.WriteString(" AND")
		}
		fmt.Fprintf(&clause, " (url LIKE $%s OR title LIKE $%s)", name, name)
		args = append(args, sql.Named(name, "%"+token+"%"))
	}

	return clause.String(), args
}

// recordCursor adapts sql.Rows to the driven cursor interface,
// normalising null titles to empty strings.
type recordCursor struct {
	rows    *sql.Rows
	current domain.RawRecord
	err     error
}

var _ driven.RecordCursor = (*recordCursor)(nil)

// Next advances the cursor, reporting false at the end or on error.
func (c *recordCursor) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.rows.Next() {
		c.err = c.rows.Err()
		return false
	}

	var title sql.NullString
	var visitCount sql.NullInt64
	var record domain.RawRecord
	if err := c.rows.Scan(&title, &record.URL, &visitCount); err != nil {
		c.err = fmt.Errorf("scanning record: %w", err)
		return false
	}
	record.Title = title.String
	record.VisitCount = int(visitCount.Int64)

	c.current = record
	return true
}

// Record returns the row Next last advanced to.
func (c *recordCursor) Record() domain.RawRecord {
	return c.current
}

// Err returns the first error hit during iteration.
func (c *recordCursor) Err() error {
	return c.err
}

// Close releases the row set.
func (c *recordCursor) Close() error {
	return c.rows.Close()
}
