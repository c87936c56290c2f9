package models

import (
	"fmt"
	"strings"
)

// Site is where a team played a game from its own perspective
type Site string

const (
	SiteHome Site = "home"
	SiteAway Site = "away"
)

// ParseSite converts user input ("home", "AWAY") to a Site
func ParseSite(s string) (Site, error) {
	switch Site(strings.ToLower(strings.TrimSpace(s))) {
	case SiteHome:
		return SiteHome, nil
	case SiteAway:
		return SiteAway, nil
	}
	return "", fmt.Errorf("invalid site %q: acceptable values are 'home' and 'away'", s)
}

// ScheduledGame is one regular season event as listed on a weekly scoreboard
type ScheduledGame struct {
	EventID   string `json:"event_id"`
	Year      int    `json:"year"`
	Week      int    `json:"week"`
	HomeTeam  string `json:"home_team"` // "IND"
	AwayTeam  string `json:"away_team"` // "NE"
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Completed bool   `json:"completed"`
}

// Involves reports whether the team code played in the game
func (g ScheduledGame) Involves(team string) bool {
	return strings.EqualFold(g.HomeTeam, team) || strings.EqualFold(g.AwayTeam, team)
}

// GameStatRecord is one team's side of one game.
// Own holds the team's offense, Opp the opponent's offense in the same game.
type GameStatRecord struct {
	EventID       string   `json:"event_id"`
	Year          int      `json:"year"`
	Week          int      `json:"week"`
	Team          string   `json:"team"`
	Opponent      string   `json:"opponent"`
	Site          Site     `json:"site"`
	PointsFor     int      `json:"points_for"`
	PointsAgainst int      `json:"points_against"`
	Own           StatLine `json:"own"`
	Opp           StatLine `json:"opp"`
}

// OpponentLabel is the opponent as shown in tables: "@DAL" for road games
func (r GameStatRecord) OpponentLabel() string {
	if r.Site == SiteAway {
		return "@" + r.Opponent
	}
	return r.Opponent
}

// Mirror returns the same game seen from the opponent's side
func (r GameStatRecord) Mirror() GameStatRecord {
	site := SiteHome
	if r.Site == SiteHome {
		site = SiteAway
	}
	return GameStatRecord{
		EventID:       r.EventID,
		Year:          r.Year,
		Week:          r.Week,
		Team:          r.Opponent,
		Opponent:      r.Team,
		Site:          site,
		PointsFor:     r.PointsAgainst,
		PointsAgainst: r.PointsFor,
		Own:           r.Opp,
		Opp:           r.Own,
	}
}
