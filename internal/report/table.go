package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/rates"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

const (
	columnWidth = 8

	// Undefined is shown for a rate whose denominator was zero
	Undefined = "—"
)

// Column labels
var (
	grossLabels = map[string]string{
		models.StatPassCompletions: "p_cmp",
		models.StatPassAttempts:    "p_att",
		models.StatPassYards:       "p_yds",
		models.StatPassTDs:         "p_tds",
		models.StatInterceptions:   "p_ints",
		models.StatSacks:           "p_sck",
		models.StatRushAttempts:    "r_att",
		models.StatRushYards:       "r_yds",
		models.StatRushTDs:         "r_tds",
	}
	rateLabels = map[string]string{
		rates.CompletionPct:       "p_cmp%",
		rates.YardsPerAttempt:     "p_ypa",
		rates.YardsPerCompletion:  "p_ypc",
		rates.InterceptionPct:     "p_int%",
		rates.TouchdownPct:        "p_td%",
		rates.SackPct:             "p_sk%",
		rates.RushYardsPerAttempt: "r_ypa",
	}
)

// Render writes the report as fixed-width text, one block per team
func Render(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)

	if r.Empty() {
		fmt.Fprintln(bw, NoDataMessage)
		return bw.Flush()
	}

	header := headerCells(r)
	divider := strings.Repeat("-", columnWidth*len(header))

	rowsByTeam := make(map[string][]Row)
	for _, row := range r.Rows {
		rowsByTeam[row.Team] = append(rowsByTeam[row.Team], row)
	}

	for _, team := range r.Teams() {
		rows := rowsByTeam[team]
		fmt.Fprintln(bw, rows[0].TeamName)
		writeLine(bw, header)
		fmt.Fprintln(bw, divider)
		for _, row := range rows {
			writeLine(bw, rowCells(r, row))
		}
		fmt.Fprintln(bw, divider)
	}

	return bw.Flush()
}

// RenderJSON writes the report as a JSON document
func RenderJSON(w io.Writer, r *Report) error {
	if r.Rows == nil {
		r.Rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeLine(w io.Writer, cells []string) {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(fmt.Sprintf("%*s", columnWidth, c))
	}
	fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
}

// statKeys returns the stat columns for the report's mode
func statKeys(r *Report) ([]string, map[string]string) {
	if r.Rate {
		return rates.Keys, rateLabels
	}
	return models.CountingStats, grossLabels
}

func headerCells(r *Report) []string {
	cells := []string{"team", "year"}
	if r.Cumulative {
		cells = append(cells, "G")
	} else {
		cells = append(cells, "week", "opp")
	}

	keys, labels := statKeys(r)
	for _, k := range keys {
		cells = append(cells, labels[k])
	}
	if r.Cumulative && r.Rate {
		cells = append(cells, "ppg", "oppg")
	} else {
		cells = append(cells, "Pts", "oPts")
	}
	for _, k := range keys {
		cells = append(cells, "o"+labels[k])
	}
	return cells
}

func rowCells(r *Report, row Row) []string {
	cells := []string{row.Team, strconv.Itoa(row.Year)}
	if r.Cumulative {
		cells = append(cells, strconv.Itoa(row.Games))
	} else {
		cells = append(cells, strconv.Itoa(row.Week), row.Opponent)
	}

	cells = append(cells, statCells(r, row.Own, row.OwnRates)...)
	if r.Cumulative && r.Rate && row.PointsPerGame != nil && row.OppPerGame != nil {
		cells = append(cells, formatRate(*row.PointsPerGame, false), formatRate(*row.OppPerGame, false))
	} else {
		cells = append(cells, strconv.Itoa(row.PointsFor), strconv.Itoa(row.PointsAgainst))
	}
	cells = append(cells, statCells(r, row.Opp, row.OppRates)...)

	return cells
}

func statCells(r *Report, line models.StatLine, rr models.RateRecord) []string {
	if !r.Rate {
		cells := make([]string, 0, len(models.CountingStats))
		for _, k := range models.CountingStats {
			cells = append(cells, formatCount(line.Get(k)))
		}
		return cells
	}

	cells := make([]string, 0, len(rates.Keys))
	for _, k := range rates.Keys {
		cells = append(cells, formatRate(rr[k], rates.IsPercent(k)))
	}
	return cells
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatRate prints two decimals; percentages are scaled by 100
func formatRate(rate models.Rate, percent bool) string {
	if !rate.Valid {
		return Undefined
	}
	v := rate.Value
	if percent {
		v *= 100
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
