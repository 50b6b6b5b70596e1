package driving

import "context"

// ResultActionService provides the two fixed actions on a search
// result: open the URL and copy it to the clipboard.
type ResultActionService interface {
	// Open hands the URL to the platform launcher.
	Open(ctx context.Context, url string) error

	// Copy places the URL on the system clipboard.
	Copy(ctx context.Context, url string) error
}
