package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

const nameWidth = 24

// NoGameMessage is printed when the selected team had no game that week
const NoGameMessage = "No game found for the requested team and week."

var (
	passingKeys = []string{
		models.StatPassCompletions,
		models.StatPassAttempts,
		models.StatPassYards,
		models.StatPassTDs,
		models.StatInterceptions,
		models.StatSacks,
	}
	rushingKeys = []string{
		models.StatRushAttempts,
		models.StatRushYards,
		models.StatRushTDs,
	}
)

// RenderBoxScore writes a game's player lines, away team first, followed by
// its scoring plays
func RenderBoxScore(w io.Writer, box *models.BoxScore) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d week %d %s\n", box.Game.Year, box.Game.Week, box.Score())

	for _, team := range []string{box.Game.AwayTeam, box.Game.HomeTeam} {
		fmt.Fprintln(bw)
		writePlayers(bw, team+" Passing", passingKeys, models.TeamLines(box.Passing, team))
		writePlayers(bw, team+" Rushing", rushingKeys, models.TeamLines(box.Rushing, team))

		fmt.Fprintln(bw, team+" Defense")
		writePlayerLine(bw, "", []string{"sacks"})
		for _, p := range models.TeamLines(box.Defense, team) {
			writePlayerLine(bw, p.Name, []string{formatCount(p.Stats.Sacks)})
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Scoring Plays")
	for _, play := range box.ScoringPlays {
		fmt.Fprintf(bw, "Q%d %5s %-3s %s (%s %d, %s %d)\n",
			play.Period, play.Clock, play.Team, play.Text,
			box.Game.AwayTeam, play.AwayScore, box.Game.HomeTeam, play.HomeScore)
	}

	return bw.Flush()
}

// RenderBoxScoreJSON writes the box score as a JSON document
func RenderBoxScoreJSON(w io.Writer, box *models.BoxScore) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(box)
}

func writePlayers(w io.Writer, title string, keys []string, lines []models.PlayerLine) {
	fmt.Fprintln(w, title)

	header := make([]string, 0, len(keys))
	for _, k := range keys {
		header = append(header, grossLabels[k])
	}
	writePlayerLine(w, "", header)

	for _, p := range lines {
		stats := p.Stats.Map()
		cells := make([]string, 0, len(keys))
		for _, k := range keys {
			cells = append(cells, formatCount(stats[k]))
		}
		writePlayerLine(w, p.Name, cells)
	}
}

func writePlayerLine(w io.Writer, name string, cells []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s", nameWidth, name))
	for _, c := range cells {
		sb.WriteString(fmt.Sprintf("%*s", columnWidth, c))
	}
	fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
}
