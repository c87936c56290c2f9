package rates_test

import (
	"math"
	"testing"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/aggregate"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/rates"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Formulas(t *testing.T) {
	line := models.StatLine{
		Completions:   20,
		Attempts:      32,
		PassYards:     256,
		PassTDs:       2,
		Interceptions: 1,
		Sacks:         3,
		RushAttempts:  25,
		RushYards:     100,
	}

	r := rates.Convert(line)

	assert.InDelta(t, 0.625, r[rates.CompletionPct].Value, 1e-9)
	assert.InDelta(t, 8.0, r[rates.YardsPerAttempt].Value, 1e-9)
	assert.InDelta(t, 12.8, r[rates.YardsPerCompletion].Value, 1e-9)
	assert.InDelta(t, 1.0/32, r[rates.InterceptionPct].Value, 1e-9)
	assert.InDelta(t, 2.0/32, r[rates.TouchdownPct].Value, 1e-9)
	assert.InDelta(t, 3.0/35, r[rates.SackPct].Value, 1e-9)
	assert.InDelta(t, 4.0, r[rates.RushYardsPerAttempt].Value, 1e-9)

	for _, k := range rates.Keys {
		assert.True(t, r[k].Valid, k)
	}
}

func TestConvert_ZeroAttemptsYieldsSentinel(t *testing.T) {
	r := rates.Convert(models.StatLine{})

	require.Len(t, r, len(rates.Keys))
	for _, k := range rates.Keys {
		assert.False(t, r[k].Valid, k)
		assert.False(t, math.IsNaN(r[k].Value), k)
		assert.False(t, math.IsInf(r[k].Value, 0), k)
	}
}

func TestConvert_SacksWithoutAttempts(t *testing.T) {
	r := rates.Convert(models.StatLine{Sacks: 2})

	assert.False(t, r[rates.CompletionPct].Valid)
	assert.True(t, r[rates.SackPct].Valid)
	assert.Equal(t, 1.0, r[rates.SackPct].Value)
}

func TestConvert_NonDestructive(t *testing.T) {
	line := testutil.RecordFixture().Own
	before := line

	_ = rates.Convert(line)

	assert.Equal(t, before, line)
}

func TestConvert_CumulativeCompletionPct(t *testing.T) {
	agg := aggregate.ByTeam([]models.GameStatRecord{
		testutil.Game("IND", 2013, 1, 30, 20),
		testutil.Game("IND", 2013, 2, 25, 15),
		testutil.Game("IND", 2013, 3, 35, 25),
	})
	require.Len(t, agg, 1)

	r := rates.Convert(agg[0].Own)

	assert.Equal(t, 90.0, agg[0].Own.Attempts)
	assert.Equal(t, 60.0, agg[0].Own.Completions)
	assert.InDelta(t, 0.667, r[rates.CompletionPct].Value, 0.0005)
}

func TestPointsPerGame(t *testing.T) {
	ppg := rates.PointsPerGame(63, 3)
	assert.True(t, ppg.Valid)
	assert.Equal(t, 21.0, ppg.Value)

	assert.False(t, rates.PointsPerGame(10, 0).Valid)
}

func TestIsPercent(t *testing.T) {
	assert.True(t, rates.IsPercent(rates.CompletionPct))
	assert.True(t, rates.IsPercent(rates.SackPct))
	assert.False(t, rates.IsPercent(rates.YardsPerAttempt))
	assert.False(t, rates.IsPercent(rates.RushYardsPerAttempt))
}
