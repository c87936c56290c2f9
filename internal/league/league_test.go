package league_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/fetcher"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/league"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/query"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/rates"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/sports/americanfootball_nfl"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// indSeason has IND weeks 1-3 with 30/25/35 attempts and 20/15/25
// completions, plus NE games in the same weeks and an IND game in 2014
func indSeason() *testutil.StaticSource {
	return &testutil.StaticSource{Records: []models.GameStatRecord{
		testutil.Game("IND", 2013, 1, 30, 20),
		testutil.Game("IND", 2013, 2, 25, 15),
		testutil.Game("IND", 2013, 3, 35, 25),
		testutil.Game("NE", 2013, 1, 40, 30),
		testutil.Game("NE", 2013, 2, 20, 10),
		testutil.Game("IND", 2014, 1, 10, 5),
	}}
}

func mustQuery(t *testing.T, raw query.Raw) query.Query {
	t.Helper()
	q, err := query.Parse(raw)
	require.NoError(t, err)
	return q
}

func TestCompile_CumulativeRate(t *testing.T) {
	src := indSeason()
	l := league.New(src, americanfootball_nfl.New(), zerolog.Nop())
	q := mustQuery(t, query.Raw{Years: "2013", Weeks: "1-3", Teams: "IND", Cumulative: true, Rate: true})

	rep, err := l.Compile(context.Background(), q)

	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	row := rep.Rows[0]
	assert.Equal(t, "IND", row.Team)
	assert.Equal(t, "Indianapolis Colts", row.TeamName)
	assert.Equal(t, 3, row.Games)
	assert.Equal(t, 90.0, row.Own.Attempts)
	assert.Equal(t, 60.0, row.Own.Completions)
	assert.True(t, row.OwnRates[rates.CompletionPct].Valid)
	assert.InDelta(t, 0.667, row.OwnRates[rates.CompletionPct].Value, 0.001)
	require.NotNil(t, row.PointsPerGame)
	assert.InDelta(t, 21.0, row.PointsPerGame.Value, 1e-9)
	assert.InDelta(t, 17.0, row.OppPerGame.Value, 1e-9)
	assert.Equal(t, 63, row.PointsFor)
	assert.Equal(t, "2013", rep.Years)
	assert.Equal(t, "1-3", rep.Weeks)
	assert.Equal(t, 3, src.Calls, "one fetch per week")
}

func TestCompile_SingleGross(t *testing.T) {
	l := league.New(indSeason(), americanfootball_nfl.New(), zerolog.Nop())
	q := mustQuery(t, query.Raw{Years: "2014,2013", Weeks: "2,1"})

	rep, err := l.Compile(context.Background(), q)

	require.NoError(t, err)
	var got []string
	for _, row := range rep.Rows {
		assert.Equal(t, 1, row.Games)
		assert.Nil(t, row.OwnRates)
		got = append(got, fmt.Sprintf("%s %d/%d", row.Team, row.Year, row.Week))
	}
	assert.Equal(t, []string{"IND 2013/1", "IND 2013/2", "IND 2014/1", "NE 2013/1", "NE 2013/2"}, got)
}

func TestCompile_CumulativeKeepsYearsApart(t *testing.T) {
	l := league.New(indSeason(), americanfootball_nfl.New(), zerolog.Nop())
	q := mustQuery(t, query.Raw{Years: "2013-2014", Weeks: "1", Teams: "IND", Cumulative: true})

	rep, err := l.Compile(context.Background(), q)

	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, 2013, rep.Rows[0].Year)
	assert.Equal(t, 2014, rep.Rows[1].Year)
	assert.Nil(t, rep.Rows[0].PointsPerGame, "gross mode shows totals")
}

func TestCompile_SiteFilter(t *testing.T) {
	src := &testutil.StaticSource{Records: []models.GameStatRecord{
		testutil.RecordFixture(),
		testutil.RecordFixture().Mirror(),
	}}
	l := league.New(src, americanfootball_nfl.New(), zerolog.Nop())
	q := mustQuery(t, query.Raw{Years: "2013", Weeks: "1", Site: "away"})

	rep, err := l.Compile(context.Background(), q)

	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "OAK", rep.Rows[0].Team)
	assert.Equal(t, "@IND", rep.Rows[0].Opponent)
}

func TestCompile_UnknownTeamIsEmpty(t *testing.T) {
	l := league.New(indSeason(), americanfootball_nfl.New(), zerolog.Nop())
	q := mustQuery(t, query.Raw{Years: "2013", Weeks: "1-3", Teams: "ZZ"})

	rep, err := l.Compile(context.Background(), q)

	require.NoError(t, err)
	assert.True(t, rep.Empty())
	assert.NotNil(t, rep.Rows)
}

func TestCompile_SourceErrorIsFetchError(t *testing.T) {
	src := &testutil.StaticSource{Err: errors.New("connection reset")}
	l := league.New(src, americanfootball_nfl.New(), zerolog.Nop())
	q := mustQuery(t, query.Raw{Years: "2013", Weeks: "4-6"})

	rep, err := l.Compile(context.Background(), q)

	assert.Nil(t, rep)
	var fetchErr *fetcher.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 2013, fetchErr.Year)
	assert.Equal(t, 4, fetchErr.Week)
	assert.Equal(t, 1, src.Calls, "no further weeks after a failure")
}
