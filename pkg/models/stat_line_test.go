package models_test

import (
	"testing"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
	"github.com/stretchr/testify/assert"
)

var line = models.StatLine{
	Completions: 20, Attempts: 30, PassYards: 250, PassTDs: 2, Interceptions: 1,
	Sacks: 3, RushAttempts: 25, RushYards: 110, RushTDs: 1,
}

func TestStatLine_Get(t *testing.T) {
	tests := []struct {
		key  string
		want float64
	}{
		{models.StatPassCompletions, 20},
		{models.StatPassAttempts, 30},
		{models.StatPassYards, 250},
		{models.StatPassTDs, 2},
		{models.StatInterceptions, 1},
		{models.StatSacks, 3},
		{models.StatRushAttempts, 25},
		{models.StatRushYards, 110},
		{models.StatRushTDs, 1},
		{"kicking_fgm", 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, line.Get(tt.key))
		})
	}
}

func TestStatLine_Map(t *testing.T) {
	m := line.Map()

	assert.Len(t, m, len(models.CountingStats))
	for _, k := range models.CountingStats {
		assert.Equal(t, line.Get(k), m[k], k)
	}
	assert.Equal(t, 3.0, m["defense_sk"])
}

func TestStatLine_VectorRoundTrip(t *testing.T) {
	assert.Equal(t, line, models.StatLineFromVector(line.Vector()))
	assert.Equal(t, models.StatLine{Completions: 4}, models.StatLineFromVector([]float64{4}))
}

func TestStatLine_IsZero(t *testing.T) {
	assert.True(t, models.StatLine{}.IsZero())
	assert.False(t, models.StatLine{Attempts: 1}.IsZero())
}
