package models

import (
	"fmt"
	"strings"
)

// PlayerLine is one player's row in a box score category. Passing rows fill
// the passing fields of Stats and rushing rows the rushing fields. Defensive
// rows carry the sacks the player made in Stats.Sacks.
type PlayerLine struct {
	Team  string   `json:"team"`
	Name  string   `json:"name"`
	Stats StatLine `json:"stats"`
}

// ScoringPlay is one score in game order, with the running score after it
type ScoringPlay struct {
	Period    int    `json:"period"`
	Clock     string `json:"clock"`
	Team      string `json:"team"`
	Type      string `json:"type"`
	Text      string `json:"text"`
	AwayScore int    `json:"away_score"`
	HomeScore int    `json:"home_score"`
}

// BoxScore is the player-level drill-down of one game
type BoxScore struct {
	Game         ScheduledGame `json:"game"`
	Passing      []PlayerLine  `json:"passing"`
	Rushing      []PlayerLine  `json:"rushing"`
	Defense      []PlayerLine  `json:"defense"`
	ScoringPlays []ScoringPlay `json:"scoring_plays"`
}

// Score formats the final score away team first: "OAK 17 @ IND 21"
func (b *BoxScore) Score() string {
	g := b.Game
	return fmt.Sprintf("%s %d @ %s %d", g.AwayTeam, g.AwayScore, g.HomeTeam, g.HomeScore)
}

// TeamLines returns the lines of one team, in box score order
func TeamLines(lines []PlayerLine, team string) []PlayerLine {
	var out []PlayerLine
	for _, l := range lines {
		if strings.EqualFold(l.Team, team) {
			out = append(out, l)
		}
	}
	return out
}
