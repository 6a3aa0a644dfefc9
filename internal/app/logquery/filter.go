package logquery

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"opsdeck/internal/app/errors"
)

// Filter is the immutable filter set of one pagination sequence.
// Changing any field produces a distinct cache key and a fresh
// sequence of pages.
type Filter struct {
	TimeAfter  *time.Time `json:"time_after,omitempty"`
	TimeBefore *time.Time `json:"time_before,omitempty"`
	Levels     []string   `json:"level,omitempty"`
	Sources    []string   `json:"source,omitempty"`
	Methods    []string   `json:"request_method,omitempty"`
	Query      string     `json:"query,omitempty"`
	Order      string     `json:"order,omitempty"`
	PerPage    int        `json:"per_page,omitempty"`
}

// Values encodes the filter as request query parameters
func (f Filter) Values() url.Values {
	q := url.Values{}

	if f.TimeAfter != nil {
		q.Set("time_after", f.TimeAfter.Format(time.RFC3339))
	}

	if f.TimeBefore != nil {
		q.Set("time_before", f.TimeBefore.Format(time.RFC3339))
	}

	for _, level := range f.Levels {
		q.Add("level", level)
	}

	for _, source := range f.Sources {
		q.Add("source", source)
	}

	for _, method := range f.Methods {
		q.Add("request_method", method)
	}

	if f.Query != "" {
		q.Set("query", f.Query)
	}

	if f.Order != "" {
		q.Set("order_by", f.Order)
	}

	if f.PerPage > 0 {
		q.Set("per_page", fmt.Sprintf("%d", f.PerPage))
	}

	return q
}

// Matcher compiles the free-text query into a matcher used for local
// highlighting of fetched lines. A query without wildcards matches as
// a substring.
func (f Filter) Matcher() (func(string) bool, error) {
	if f.Query == "" {
		return func(string) bool { return true }, nil
	}

	pattern := f.Query
	if !strings.ContainsAny(pattern, "*?[") {
		pattern = "*" + pattern + "*"
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidGlobPattern, err)
	}

	return g.Match, nil
}
