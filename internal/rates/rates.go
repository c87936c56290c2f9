// Package rates derives ratio stats from counting stats.
//
// A ratio whose denominator is zero is reported as models.Rate{Valid: false}
// and never as NaN, Inf or a panic. Formatters show it as a dash.
package rates

import (
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// Rate stat keys in display order
const (
	CompletionPct       = "passing_cmp%"
	YardsPerAttempt     = "passing_ypa"
	YardsPerCompletion  = "passing_ypc"
	InterceptionPct     = "passing_int%"
	TouchdownPct        = "passing_td%"
	SackPct             = "passing_sk%"
	RushYardsPerAttempt = "rushing_ypa"
)

// Keys lists the rate stats in display order
var Keys = []string{
	CompletionPct,
	YardsPerAttempt,
	YardsPerCompletion,
	InterceptionPct,
	TouchdownPct,
	SackPct,
	RushYardsPerAttempt,
}

// IsPercent reports whether the stat is a fraction shown as a percentage
func IsPercent(key string) bool {
	switch key {
	case CompletionPct, InterceptionPct, TouchdownPct, SackPct:
		return true
	}
	return false
}

// Ratio divides, returning an invalid Rate for a zero denominator
func Ratio(num, den float64) models.Rate {
	if den == 0 {
		return models.Rate{}
	}
	return models.Rate{Value: num / den, Valid: true}
}

// Convert derives every rate stat from a stat line. The line is not modified.
func Convert(s models.StatLine) models.RateRecord {
	return models.RateRecord{
		CompletionPct:       Ratio(s.Completions, s.Attempts),
		YardsPerAttempt:     Ratio(s.PassYards, s.Attempts),
		YardsPerCompletion:  Ratio(s.PassYards, s.Completions),
		InterceptionPct:     Ratio(s.Interceptions, s.Attempts),
		TouchdownPct:        Ratio(s.PassTDs, s.Attempts),
		SackPct:             Ratio(s.Sacks, s.Sacks+s.Attempts),
		RushYardsPerAttempt: Ratio(s.RushYards, s.RushAttempts),
	}
}

// PointsPerGame divides a cumulative point total by games played
func PointsPerGame(points, games int) models.Rate {
	return Ratio(float64(points), float64(games))
}
