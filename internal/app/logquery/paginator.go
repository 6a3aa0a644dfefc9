package logquery

import (
	"context"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/query"
	"opsdeck/internal/config/logger"
)

// Source fetches one raw page from a cursor-paginated list endpoint
type Source[T any] func(ctx context.Context, cursor *string) (api.Paginated[T], error)

// Paginator pages through a cursor-paginated log endpoint from newest
// to oldest. Pages other than the newest are immutable (logs are
// append-only) and served from cache without revalidation; the newest
// page is always refetched. A locally retained anchor pins the first
// page's window so remounts and refetches keep returning the same
// logical window instead of drifting forward as new lines arrive.
type Paginator[T any] struct {
	source Source[T]
	cache  *query.Cache
	prefix query.Key
	log    logger.Logger
}

// NewPaginator creates a paginator over the given source, caching pages
// under the given key prefix
func NewPaginator[T any](source Source[T], cache *query.Cache, prefix query.Key, log logger.Logger) *Paginator[T] {
	return &Paginator[T]{
		source: source,
		cache:  cache,
		prefix: prefix,
		log:    log.WithComponent("logquery"),
	}
}

// Key returns the cache key of the page addressed by pageParam
func (p *Paginator[T]) Key(pageParam *string) query.Key {
	if pageParam == nil {
		return p.prefix.Child("first")
	}

	return p.prefix.Child("cursor:" + *pageParam)
}

// Prefix returns the key prefix shared by every page of this sequence
func (p *Paginator[T]) Prefix() query.Key {
	return p.prefix
}

// Page returns the page addressed by pageParam, serving cache for
// immutable pages and fetching otherwise. pageParam is nil for the
// first (newest) page. Concurrent calls for the same page share one
// in-flight fetch. Errors are not retried here; the request layer's
// behavior is all the retrying there is.
func (p *Paginator[T]) Page(ctx context.Context, pageParam *string) (Page[T], error) {
	key := p.Key(pageParam)

	if cached, ok := query.Cached[Page[T]](p.cache, key); ok && !cached.IsNewest() {
		return cached, nil
	}

	return query.Fetch(ctx, p.cache, key, func(ctx context.Context) (Page[T], error) {
		return p.fetchPage(ctx, key, pageParam)
	})
}

// fetchPage fetches and reconciles one page
func (p *Paginator[T]) fetchPage(ctx context.Context, key query.Key, pageParam *string) (Page[T], error) {
	existing, _ := query.Cached[Page[T]](p.cache, key)

	// Once an anchor exists for this page it wins over the raw page
	// param, so the first page stops drifting to "now" on refetch.
	effective := pageParam
	if existing.Cursor != nil {
		effective = existing.Cursor
	}

	raw, err := p.source(ctx, effective)
	if err != nil {
		return Page[T]{}, err
	}

	page, err := invert(raw)
	if err != nil {
		return Page[T]{}, err
	}

	page.Cursor = existing.Cursor

	if pageParam == nil && existing.Cursor == nil && page.Next != nil {
		if err := p.resolveAnchor(ctx, &page); err != nil {
			return Page[T]{}, err
		}
	}

	return page, nil
}

// resolveAnchor converts "whatever is newest right now" into a fixed
// point: it fetches the next older page and adopts that page's pointer
// back toward this one as the anchor. Best effort; under high log
// volume the older page may itself be stale by the time it is used.
func (p *Paginator[T]) resolveAnchor(ctx context.Context, page *Page[T]) error {
	raw, err := p.source(ctx, page.Next)
	if err != nil {
		return err
	}

	older, err := invert(raw)
	if err != nil {
		return err
	}

	if older.Previous != nil {
		page.Cursor = older.Previous

		p.log.Debug().Str("anchor", *older.Previous).Msg("pinned first page anchor")
	}

	return nil
}

// invert translates a server page into viewer direction. The server
// links run newest-to-oldest through "previous", so the viewer's Next
// (older entries) is the server's previous cursor and vice versa.
func invert[T any](raw api.Paginated[T]) (Page[T], error) {
	next, err := extractCursor(raw.Previous)
	if err != nil {
		return Page[T]{}, err
	}

	previous, err := extractCursor(raw.Next)
	if err != nil {
		return Page[T]{}, err
	}

	return Page[T]{
		Results:  raw.Results,
		Next:     next,
		Previous: previous,
	}, nil
}
