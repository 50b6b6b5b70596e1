package firefox

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/foxfind/internal/core/ports/driven"
)

// unsupportedIconWidth is the sentinel width Firefox records for
// placeholder icons it could not use. Such rows are excluded.
const unsupportedIconWidth = 65535

// iconQuery walks pages-with-icons through the icon mapping to the
// blob for a page URL.
const iconQuery = `
	SELECT moz_icons.data
	FROM moz_pages_w_icons
	JOIN moz_icons_to_pages ON moz_pages_w_icons.id = moz_icons_to_pages.page_id
	JOIN moz_icons ON moz_icons_to_pages.icon_id = moz_icons.id
	WHERE moz_pages_w_icons.page_url = $url AND moz_icons.width != $width
	LIMIT 1`

// iconHandle implements driven.IconHandle over one read-only
// connection.
type iconHandle struct {
	db *sql.DB
}

var _ driven.IconHandle = (*iconHandle)(nil)

// QueryIcon returns the first stored favicon blob for the page URL, or
// nil when the page has none.
func (h *iconHandle) QueryIcon(ctx context.Context, pageURL string) ([]byte, error) {
	var data []byte
	err := h.db.QueryRowContext(ctx, iconQuery,
		sql.Named("url", pageURL),
		sql.Named("width", unsupportedIconWidth),
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying icon: %w", err)
	}
	return data, nil
}

// Close releases the underlying connection.
func (h *iconHandle) Close() error {
	return h.db.Close()
}
