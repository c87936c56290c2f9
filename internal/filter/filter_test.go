package filter_test

import (
	"testing"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/filter"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/query"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []models.GameStatRecord {
	away := func(r *models.GameStatRecord) { r.Site = models.SiteAway }
	return []models.GameStatRecord{
		testutil.Game("IND", 2013, 1, 30, 20),
		testutil.Game("IND", 2013, 2, 25, 15),
		testutil.RecordFixture(func(r *models.GameStatRecord) { r.Team = "IND"; r.Week = 3 }, away),
		testutil.Game("NE", 2013, 1, 40, 28),
		testutil.Game("NE", 2014, 1, 35, 22),
		testutil.RecordFixture(func(r *models.GameStatRecord) { r.Team = "DEN"; r.Year = 2012; r.Week = 17 }, away),
	}
}

func mustQuery(t *testing.T, raw query.Raw) query.Query {
	t.Helper()
	q, err := query.Parse(raw)
	require.NoError(t, err)
	return q
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name string
		raw  query.Raw
		want int
	}{
		{"everything", query.Raw{}, 6},
		{"one year", query.Raw{Years: "2013"}, 4},
		{"weeks", query.Raw{Weeks: "1-2"}, 4},
		{"team case insensitive", query.Raw{Teams: "ind"}, 3},
		{"two teams", query.Raw{Teams: "IND,NE", Years: "2013"}, 4},
		{"home only", query.Raw{Site: "home"}, 4},
		{"away only", query.Raw{Site: "away"}, 2},
		{"combined", query.Raw{Years: "2013", Weeks: "1", Teams: "NE", Site: "home"}, 1},
		{"unknown team", query.Raw{Teams: "ZZ"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filter.NewFilter(mustQuery(t, tt.raw))
			got := f.Apply(sample())
			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	raws := []query.Raw{
		{},
		{Years: "2013", Teams: "IND"},
		{Weeks: "2-17", Site: "away"},
		{Teams: "ZZ"},
	}

	for _, raw := range raws {
		f := filter.NewFilter(mustQuery(t, raw))
		once := f.Apply(sample())
		twice := f.Apply(once)
		assert.Equal(t, once, twice)
	}
}

func TestFilter_ShouldInclude_Reason(t *testing.T) {
	f := filter.NewFilter(mustQuery(t, query.Raw{Teams: "NE"}))

	ok, reason := f.ShouldInclude(testutil.Game("IND", 2013, 1, 30, 20))
	assert.False(t, ok)
	assert.Equal(t, "team IND not selected", reason)

	ok, reason = f.ShouldInclude(testutil.Game("NE", 2013, 1, 30, 20))
	assert.True(t, ok)
	assert.Empty(t, reason)
}
