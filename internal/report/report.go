// Package report renders query results as aligned text tables or JSON.
package report

import (
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// NoDataMessage is printed instead of a table when nothing matched
const NoDataMessage = "No games found for the requested filters."

// Row is one output line: a single game, or a team's season aggregate in
// cumulative mode
type Row struct {
	Team          string            `json:"team"`
	TeamName      string            `json:"team_name"`
	Year          int               `json:"year"`
	Week          int               `json:"week,omitempty"`
	Games         int               `json:"games"`
	Opponent      string            `json:"opponent,omitempty"`
	Site          models.Site       `json:"site,omitempty"`
	PointsFor     int               `json:"points_for"`
	PointsAgainst int               `json:"points_against"`
	PointsPerGame *models.Rate      `json:"points_per_game,omitempty"`
	OppPerGame    *models.Rate      `json:"opp_points_per_game,omitempty"`
	Own           models.StatLine   `json:"own"`
	Opp           models.StatLine   `json:"opp"`
	OwnRates      models.RateRecord `json:"own_rates,omitempty"`
	OppRates      models.RateRecord `json:"opp_rates,omitempty"`
}

// Report is the result of one query
type Report struct {
	Years      string `json:"years"`
	Weeks      string `json:"weeks"`
	Cumulative bool   `json:"cumulative"`
	Rate       bool   `json:"rate"`
	Rows       []Row  `json:"rows"`
}

// Empty reports whether no game matched
func (r *Report) Empty() bool {
	return len(r.Rows) == 0
}

// Teams returns team codes in the order their rows appear
func (r *Report) Teams() []string {
	seen := make(map[string]bool)
	var teams []string
	for _, row := range r.Rows {
		if !seen[row.Team] {
			seen[row.Team] = true
			teams = append(teams, row.Team)
		}
	}
	return teams
}
