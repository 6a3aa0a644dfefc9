package logquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/app/errors"
)

func Test_Filter_Values_Empty(t *testing.T) {
	q := Filter{}.Values()

	assert.Empty(t, q)
}

func Test_Filter_Values_AllFields(t *testing.T) {
	after := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	before := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)

	f := Filter{
		TimeAfter:  &after,
		TimeBefore: &before,
		Levels:     []string{LevelInfo, LevelError},
		Sources:    []string{SourceService},
		Query:      "timeout",
		Order:      "-time",
		PerPage:    50,
	}

	q := f.Values()

	assert.Equal(t, "2026-08-01T10:00:00Z", q.Get("time_after"))
	assert.Equal(t, "2026-08-02T10:00:00Z", q.Get("time_before"))
	assert.Equal(t, []string{"INFO", "ERROR"}, q["level"])
	assert.Equal(t, []string{"SERVICE"}, q["source"])
	assert.Equal(t, "timeout", q.Get("query"))
	assert.Equal(t, "-time", q.Get("order_by"))
	assert.Equal(t, "50", q.Get("per_page"))
}

func Test_Filter_Matcher_EmptyQueryMatchesEverything(t *testing.T) {
	match, err := Filter{}.Matcher()
	require.NoError(t, err)

	assert.True(t, match("anything at all"))
	assert.True(t, match(""))
}

func Test_Filter_Matcher_PlainQueryMatchesSubstring(t *testing.T) {
	match, err := Filter{Query: "timeout"}.Matcher()
	require.NoError(t, err)

	assert.True(t, match("upstream timeout after 30s"))
	assert.False(t, match("connection refused"))
}

func Test_Filter_Matcher_WildcardQuery(t *testing.T) {
	match, err := Filter{Query: "GET /api/*"}.Matcher()
	require.NoError(t, err)

	assert.True(t, match("GET /api/projects/"))
	assert.False(t, match("POST /api/projects/"))
}

func Test_Filter_Matcher_InvalidPattern(t *testing.T) {
	_, err := Filter{Query: "[unclosed"}.Matcher()

	assert.ErrorIs(t, err, errors.ErrInvalidGlobPattern)
}
