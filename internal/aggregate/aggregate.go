// Package aggregate sums team-game records into season totals.
package aggregate

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

type groupKey struct {
	team string
	year int
}

type accumulator struct {
	games         int
	pointsFor     int
	pointsAgainst int
	own           []float64
	opp           []float64
}

func newAccumulator() *accumulator {
	return &accumulator{
		own: make([]float64, len(models.CountingStats)),
		opp: make([]float64, len(models.CountingStats)),
	}
}

func (a *accumulator) add(r models.GameStatRecord) {
	a.games++
	a.pointsFor += r.PointsFor
	a.pointsAgainst += r.PointsAgainst
	floats.Add(a.own, r.Own.Vector())
	floats.Add(a.opp, r.Opp.Vector())
}

// ByTeam sums records into one AggregatedRecord per (team, year).
// Teams and seasons are never mixed. Output is sorted by team, then year.
func ByTeam(records []models.GameStatRecord) []models.AggregatedRecord {
	groups := make(map[groupKey]*accumulator)
	for _, r := range records {
		key := groupKey{team: r.Team, year: r.Year}
		acc, ok := groups[key]
		if !ok {
			acc = newAccumulator()
			groups[key] = acc
		}
		acc.add(r)
	}

	out := make([]models.AggregatedRecord, 0, len(groups))
	for key, acc := range groups {
		out = append(out, models.AggregatedRecord{
			Team:          key.team,
			Year:          key.year,
			Games:         acc.games,
			PointsFor:     acc.pointsFor,
			PointsAgainst: acc.pointsAgainst,
			Own:           models.StatLineFromVector(acc.own),
			Opp:           models.StatLineFromVector(acc.opp),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].Year < out[j].Year
	})

	return out
}

// Single lifts one game to the aggregated shape with Games = 1
func Single(r models.GameStatRecord) models.AggregatedRecord {
	return models.AggregatedRecord{
		Team:          r.Team,
		Year:          r.Year,
		Games:         1,
		PointsFor:     r.PointsFor,
		PointsAgainst: r.PointsAgainst,
		Own:           r.Own,
		Opp:           r.Opp,
	}
}
