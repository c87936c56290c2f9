package americanfootball_nfl

import "strings"

// NFL team names by the abbreviations used for the 2009-2015 seasons
var nflTeamNames = map[string]string{
	"ARI": "Arizona Cardinals",
	"ATL": "Atlanta Falcons",
	"BAL": "Baltimore Ravens",
	"BUF": "Buffalo Bills",
	"CAR": "Carolina Panthers",
	"CHI": "Chicago Bears",
	"CIN": "Cincinnati Bengals",
	"CLE": "Cleveland Browns",
	"DAL": "Dallas Cowboys",
	"DEN": "Denver Broncos",
	"DET": "Detroit Lions",
	"GB":  "Green Bay Packers",
	"HOU": "Houston Texans",
	"IND": "Indianapolis Colts",
	"JAC": "Jacksonville Jaguars",
	"KC":  "Kansas City Chiefs",
	"MIA": "Miami Dolphins",
	"MIN": "Minnesota Vikings",
	"NE":  "New England Patriots",
	"NO":  "New Orleans Saints",
	"NYG": "New York Giants",
	"NYJ": "New York Jets",
	"OAK": "Oakland Raiders",
	"PHI": "Philadelphia Eagles",
	"PIT": "Pittsburgh Steelers",
	"SD":  "San Diego Chargers",
	"SEA": "Seattle Seahawks",
	"SF":  "San Francisco 49ers",
	"STL": "St. Louis Rams",
	"TB":  "Tampa Bay Buccaneers",
	"TEN": "Tennessee Titans",
	"WAS": "Washington Redskins",
}

// ESPN abbreviations that differ from the codes above.
// Relocated franchises map back to their 2009-2015 city.
var espnAliases = map[string]string{
	"WSH": "WAS",
	"JAX": "JAC",
	"LAR": "STL",
	"LA":  "STL",
	"LAC": "SD",
	"LV":  "OAK",
}

// NormalizeTeamCode converts an ESPN abbreviation to the tool's team code
func NormalizeTeamCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if alias, ok := espnAliases[code]; ok {
		return alias
	}
	return code
}

// GetTeamName returns the full name for a team code
func GetTeamName(code string) string {
	if name, ok := nflTeamNames[NormalizeTeamCode(code)]; ok {
		return name
	}
	return code
}

// TeamCodes returns every known team code
func TeamCodes() []string {
	codes := make([]string, 0, len(nflTeamNames))
	for code := range nflTeamNames {
		codes = append(codes, code)
	}
	return codes
}
