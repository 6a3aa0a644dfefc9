package logquery

import (
	"fmt"
	"net/url"

	"opsdeck/internal/app/errors"
	"opsdeck/internal/config"
)

// extractCursor pulls the opaque cursor token out of an absolute
// pagination link. A nil link yields a nil cursor.
func extractCursor(link *string) (*string, error) {
	if link == nil {
		return nil, nil
	}

	parsed, err := url.Parse(*link)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrMissingCursorLink, err)
	}

	cursor := parsed.Query().Get(config.CursorQueryParam)
	if cursor == "" {
		return nil, fmt.Errorf("%w: %s", errors.ErrMissingCursorLink, *link)
	}

	return &cursor, nil
}
