package logquery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/errors"
	"opsdeck/internal/app/query"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

func testLogger() logger.Logger {
	return logger.NewSilentLogger(config.DefaultConfig())
}

func link(cursor string) *string {
	l := "https://paas.example.com/api/logs/?cursor=" + cursor

	return &l
}

func str(s string) *string {
	return &s
}

// fakeSource replays canned server pages keyed by cursor; the zero key
// "" answers requests without a cursor.
type fakeSource struct {
	pages map[string]api.Paginated[RuntimeEntry]
	calls []string
	err   error
}

func (f *fakeSource) fetch(_ context.Context, cursor *string) (api.Paginated[RuntimeEntry], error) {
	key := ""
	if cursor != nil {
		key = *cursor
	}

	f.calls = append(f.calls, key)

	if f.err != nil {
		return api.Paginated[RuntimeEntry]{}, f.err
	}

	page, ok := f.pages[key]
	if !ok {
		return api.Paginated[RuntimeEntry]{}, errors.ErrNotFound
	}

	return page, nil
}

func entries(ids ...string) []RuntimeEntry {
	out := make([]RuntimeEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, RuntimeEntry{ID: id})
	}

	return out
}

func newTestPaginator(src *fakeSource) (*Paginator[RuntimeEntry], *query.Cache) {
	cache := query.NewCache()
	p := NewPaginator(src.fetch, cache, query.NewKey("logs", "test"), testLogger())

	return p, cache
}

func Test_Paginator_FirstPage_InvertsDirection(t *testing.T) {
	// Server direction: previous → older entries, next → newer ones.
	// The viewer walks newest-to-oldest, so the cursors swap roles.
	src := &fakeSource{pages: map[string]api.Paginated[RuntimeEntry]{
		"": {Results: entries("3", "2"), Next: nil, Previous: link("older")},
		"older": {
			Results:  entries("1"),
			Next:     link("back-to-newest"),
			Previous: nil,
		},
	}}

	p, _ := newTestPaginator(src)

	page, err := p.Page(context.Background(), nil)
	require.NoError(t, err)

	require.NotNil(t, page.Next)
	assert.Equal(t, "older", *page.Next)
	assert.Nil(t, page.Previous)
	assert.True(t, page.IsNewest())
}

func Test_Paginator_ViewerNext_IsServerPrevious(t *testing.T) {
	src := &fakeSource{pages: map[string]api.Paginated[RuntimeEntry]{
		"mid": {
			Results:  entries("5", "4"),
			Next:     link("newer-side"),
			Previous: link("older-side"),
		},
	}}

	p, _ := newTestPaginator(src)

	page, err := p.Page(context.Background(), str("mid"))
	require.NoError(t, err)

	require.NotNil(t, page.Next)
	assert.Equal(t, "older-side", *page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "newer-side", *page.Previous)
}

func Test_Paginator_NonNewestPage_ServedFromCache(t *testing.T) {
	src := &fakeSource{pages: map[string]api.Paginated[RuntimeEntry]{
		"c1": {
			Results:  entries("2", "1"),
			Next:     link("newer"),
			Previous: link("even-older"),
		},
	}}

	p, _ := newTestPaginator(src)

	first, err := p.Page(context.Background(), str("c1"))
	require.NoError(t, err)
	require.False(t, first.IsNewest())

	// Mutate the server data; the cached page must not change.
	src.pages["c1"] = api.Paginated[RuntimeEntry]{
		Results:  entries("999"),
		Next:     link("newer"),
		Previous: link("even-older"),
	}

	second, err := p.Page(context.Background(), str("c1"))
	require.NoError(t, err)

	assert.Equal(t, first.Results, second.Results)
	assert.Len(t, src.calls, 1)
}

func Test_Paginator_NewestPage_AlwaysRefetched(t *testing.T) {
	src := &fakeSource{pages: map[string]api.Paginated[RuntimeEntry]{
		"": {Results: entries("1"), Next: nil, Previous: nil},
	}}

	p, _ := newTestPaginator(src)

	_, err := p.Page(context.Background(), nil)
	require.NoError(t, err)

	src.pages[""] = api.Paginated[RuntimeEntry]{Results: entries("2", "1")}

	page, err := p.Page(context.Background(), nil)
	require.NoError(t, err)

	assert.Len(t, page.Results, 2)
	assert.Len(t, src.calls, 2)
}

func Test_Paginator_FirstPage_AnchorResolvedViaOlderPage(t *testing.T) {
	src := &fakeSource{pages: map[string]api.Paginated[RuntimeEntry]{
		"": {
			Results:  entries("10", "9"),
			Next:     nil,
			Previous: link("older"),
		},
		"older": {
			Results:  entries("8", "7"),
			Next:     link("anchor"),
			Previous: link("even-older"),
		},
	}}

	p, _ := newTestPaginator(src)

	page, err := p.Page(context.Background(), nil)
	require.NoError(t, err)

	// The older page's pointer back toward the newest page becomes
	// the anchor.
	require.NotNil(t, page.Cursor)
	assert.Equal(t, "anchor", *page.Cursor)
	assert.Equal(t, []string{"", "older"}, src.calls)
}

func Test_Paginator_FirstPage_AnchorStableAcrossRefetch(t *testing.T) {
	src := &fakeSource{pages: map[string]api.Paginated[RuntimeEntry]{
		"": {
			Results:  entries("10", "9"),
			Next:     nil,
			Previous: link("older"),
		},
		"older": {
			Results:  entries("8"),
			Next:     link("anchor"),
			Previous: nil,
		},
		"anchor": {
			Results:  entries("10", "9"),
			Next:     link("newer-head"),
			Previous: link("older"),
		},
	}}

	p, _ := newTestPaginator(src)

	first, err := p.Page(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, first.Cursor)

	// New lines arrive: an unanchored fetch would now return a
	// different window.
	src.pages[""] = api.Paginated[RuntimeEntry]{
		Results:  entries("12", "11"),
		Next:     nil,
		Previous: link("older-2"),
	}

	second, err := p.Page(context.Background(), nil)
	require.NoError(t, err)

	// The refetch went through the anchor, not through "now".
	assert.Equal(t, "anchor", src.calls[len(src.calls)-1])
	assert.Equal(t, first.Cursor, second.Cursor)
	assert.Equal(t, first.Results, second.Results)
}

func Test_Paginator_FirstPage_SinglePage_NoAnchorFetch(t *testing.T) {
	src := &fakeSource{pages: map[string]api.Paginated[RuntimeEntry]{
		"": {Results: entries("1"), Next: nil, Previous: nil},
	}}

	p, _ := newTestPaginator(src)

	page, err := p.Page(context.Background(), nil)
	require.NoError(t, err)

	assert.Nil(t, page.Cursor)
	assert.Len(t, src.calls, 1)
}

func Test_Paginator_AnchorResolutionError_Propagates(t *testing.T) {
	src := &fakeSource{pages: map[string]api.Paginated[RuntimeEntry]{
		"": {
			Results:  entries("10"),
			Next:     nil,
			Previous: link("older-but-missing"),
		},
	}}

	p, cache := newTestPaginator(src)

	_, err := p.Page(context.Background(), nil)
	require.ErrorIs(t, err, errors.ErrNotFound)

	// A failed load leaves nothing behind.
	assert.Equal(t, 0, cache.Len())
}

func Test_Paginator_SourceError_Propagates(t *testing.T) {
	src := &fakeSource{err: errors.ErrRequestFailed}

	p, cache := newTestPaginator(src)

	_, err := p.Page(context.Background(), nil)

	require.ErrorIs(t, err, errors.ErrRequestFailed)
	assert.Equal(t, 0, cache.Len())
}

func Test_Paginator_Key_DistinguishesPages(t *testing.T) {
	p, _ := newTestPaginator(&fakeSource{})

	first := p.Key(nil)
	cursor := p.Key(str("abc"))

	assert.NotEqual(t, first.String(), cursor.String())
	assert.True(t, first.HasPrefix(p.Prefix()))
	assert.True(t, cursor.HasPrefix(p.Prefix()))
}

func Test_Paginator_MalformedLink_ReturnsMissingCursorError(t *testing.T) {
	bad := "https://paas.example.com/api/logs/"
	src := &fakeSource{pages: map[string]api.Paginated[RuntimeEntry]{
		"": {Results: entries("1"), Previous: &bad},
	}}

	p, _ := newTestPaginator(src)

	_, err := p.Page(context.Background(), nil)

	assert.ErrorIs(t, err, errors.ErrMissingCursorLink)
}
