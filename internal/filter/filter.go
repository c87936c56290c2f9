package filter

import (
	"fmt"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/query"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// Filter selects team-game records matching a query
type Filter struct {
	q query.Query
}

// NewFilter creates a new filter
func NewFilter(q query.Query) *Filter {
	return &Filter{q: q}
}

// ShouldInclude returns true if the record matches the query; otherwise it
// returns the reason it was dropped
func (f *Filter) ShouldInclude(r models.GameStatRecord) (bool, string) {
	if !f.q.Years.Contains(r.Year) {
		return false, fmt.Sprintf("year %d not selected", r.Year)
	}

	if !f.q.Weeks.Contains(r.Week) {
		return false, fmt.Sprintf("week %d not selected", r.Week)
	}

	if !f.q.HasTeam(r.Team) {
		return false, fmt.Sprintf("team %s not selected", r.Team)
	}

	if f.q.Site != nil && r.Site != *f.q.Site {
		return false, fmt.Sprintf("site %s not selected", r.Site)
	}

	return true, ""
}

// Apply filters a list of records, keeping input order.
// An empty result is valid.
func (f *Filter) Apply(records []models.GameStatRecord) []models.GameStatRecord {
	filtered := make([]models.GameStatRecord, 0, len(records))

	for _, r := range records {
		if ok, _ := f.ShouldInclude(r); ok {
			filtered = append(filtered, r)
		}
	}

	return filtered
}
