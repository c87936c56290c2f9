// Package query holds the validated selection a run works on.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/rangespec"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// Raw is the unvalidated user input, as typed on the command line or sent
// as URL parameters
type Raw struct {
	Years      string
	Weeks      string
	Teams      string
	Site       string
	Cumulative bool
	Rate       bool
}

// Query is the validated selection. A nil Site means both sites; empty
// Teams means every team.
type Query struct {
	Years      rangespec.RangeSpec
	Weeks      rangespec.RangeSpec
	Teams      []string
	Site       *models.Site
	Cumulative bool
	Rate       bool
}

// Parse validates raw input once; the result is read-only afterwards
func Parse(raw Raw) (Query, error) {
	years, err := rangespec.Parse(raw.Years, rangespec.Years)
	if err != nil {
		return Query{}, err
	}

	weeks, err := rangespec.Parse(raw.Weeks, rangespec.Weeks)
	if err != nil {
		return Query{}, err
	}

	teams, err := ParseTeams(raw.Teams)
	if err != nil {
		return Query{}, err
	}

	q := Query{
		Years:      years,
		Weeks:      weeks,
		Teams:      teams,
		Cumulative: raw.Cumulative,
		Rate:       raw.Rate,
	}

	if strings.TrimSpace(raw.Site) != "" {
		site, err := models.ParseSite(raw.Site)
		if err != nil {
			return Query{}, err
		}
		q.Site = &site
	}

	return q, nil
}

// ParseTeams reads "IND,ne" into upper-cased, de-duplicated team codes.
// Codes are not checked against a team list: an unknown code simply
// matches nothing.
func ParseTeams(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	seen := make(map[string]bool)
	var teams []string
	for _, raw := range strings.Split(s, ",") {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "" {
			return nil, fmt.Errorf("invalid team list %q: empty element", s)
		}
		if !isTeamCode(code) {
			return nil, fmt.Errorf("invalid team %q: use the 2-3 letter abbreviation", raw)
		}
		if !seen[code] {
			seen[code] = true
			teams = append(teams, code)
		}
	}
	sort.Strings(teams)
	return teams, nil
}

func isTeamCode(code string) bool {
	if len(code) < 2 || len(code) > 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// Game selects one team's game in one week
type Game struct {
	Year int
	Week int
	Team string
}

// ParseGame validates a single-game selection: exactly one year, one week
// and one team
func ParseGame(raw Raw) (Game, error) {
	if strings.TrimSpace(raw.Years) == "" || strings.TrimSpace(raw.Weeks) == "" || strings.TrimSpace(raw.Teams) == "" {
		return Game{}, fmt.Errorf("a game needs a year, a week and a team")
	}

	years, err := rangespec.Parse(raw.Years, rangespec.Years)
	if err != nil {
		return Game{}, err
	}
	weeks, err := rangespec.Parse(raw.Weeks, rangespec.Weeks)
	if err != nil {
		return Game{}, err
	}
	teams, err := ParseTeams(raw.Teams)
	if err != nil {
		return Game{}, err
	}

	if years.Len() != 1 || weeks.Len() != 1 || len(teams) != 1 {
		return Game{}, fmt.Errorf("a game needs exactly one year, one week and one team")
	}
	return Game{Year: years.Values()[0], Week: weeks.Values()[0], Team: teams[0]}, nil
}

// ParseEventID checks an ESPN event id, which is all digits
func ParseEventID(s string) (string, error) {
	id := strings.TrimSpace(s)
	if id == "" {
		return "", fmt.Errorf("empty event id")
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("invalid event id %q: use the numeric ESPN id", s)
		}
	}
	return id, nil
}

// HasTeam reports whether the team code is selected (case-insensitive)
func (q Query) HasTeam(team string) bool {
	if len(q.Teams) == 0 {
		return true
	}
	for _, t := range q.Teams {
		if strings.EqualFold(t, team) {
			return true
		}
	}
	return false
}

// Mode names the output style for logs and headers
func (q Query) Mode() string {
	switch {
	case q.Cumulative && q.Rate:
		return "cumulative rate"
	case q.Cumulative:
		return "cumulative gross"
	case q.Rate:
		return "single-game rate"
	default:
		return "single-game gross"
	}
}
