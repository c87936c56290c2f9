package americanfootball_nfl

import "github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"

// ESPN box score category names
const (
	categoryPassing = "passing"
	categoryRushing = "rushing"
	categoryDefense = "defensive"
)

// passingColumns locates the passing columns of an ESPN box score category
type passingColumns struct {
	compAtt, yards, tds, ints, sacks int
}

func newPassingColumns(category map[string]interface{}) passingColumns {
	return passingColumns{
		compAtt: columnIndex(category, "completions/passingAttempts", "C/ATT"),
		yards:   columnIndex(category, "passingYards", "YDS"),
		tds:     columnIndex(category, "passingTouchdowns", "TD"),
		ints:    columnIndex(category, "interceptions", "INT"),
		sacks:   columnIndex(category, "sacks-sackYardsLost", "SACKS"),
	}
}

// add sums one player's (or the team total) passing row into line
func (c passingColumns) add(row []interface{}, line *models.StatLine) {
	cmp, att := parsePair(cell(row, c.compAtt), "/")
	sacks, _ := parsePair(cell(row, c.sacks), "-")

	line.Completions += cmp
	line.Attempts += att
	line.PassYards += parseFloat(cell(row, c.yards))
	line.PassTDs += parseFloat(cell(row, c.tds))
	line.Interceptions += parseFloat(cell(row, c.ints))
	line.Sacks += sacks
}

// rushingColumns locates the rushing columns of an ESPN box score category
type rushingColumns struct {
	attempts, yards, tds int
}

func newRushingColumns(category map[string]interface{}) rushingColumns {
	return rushingColumns{
		attempts: columnIndex(category, "rushingAttempts", "CAR"),
		yards:    columnIndex(category, "rushingYards", "YDS"),
		tds:      columnIndex(category, "rushingTouchdowns", "TD"),
	}
}

func (c rushingColumns) add(row []interface{}, line *models.StatLine) {
	line.RushAttempts += parseFloat(cell(row, c.attempts))
	line.RushYards += parseFloat(cell(row, c.yards))
	line.RushTDs += parseFloat(cell(row, c.tds))
}

// athleteRow is one player's stat row within a category
type athleteRow struct {
	name  string
	stats []interface{}
}

func categoryAthletes(category map[string]interface{}) []athleteRow {
	var rows []athleteRow
	for _, a := range extractArray(category, "athletes") {
		athlete := asMap(a)
		stats := extractArray(athlete, "stats")
		if len(stats) == 0 {
			continue
		}
		rows = append(rows, athleteRow{
			name:  extractString(extractMap(athlete, "athlete"), "displayName"),
			stats: stats,
		})
	}
	return rows
}

// categoryRows returns the per-player stat rows of a category, or the
// team totals row when ESPN sent no athletes
func categoryRows(category map[string]interface{}) [][]interface{} {
	var rows [][]interface{}
	for _, a := range categoryAthletes(category) {
		rows = append(rows, a.stats)
	}
	if len(rows) == 0 {
		if totals := extractArray(category, "totals"); len(totals) > 0 {
			rows = append(rows, totals)
		}
	}
	return rows
}
