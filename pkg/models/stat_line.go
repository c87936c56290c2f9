package models

// Stat keys, kept identical to the column keys used across the tool
const (
	StatPassCompletions = "passing_cmp"
	StatPassAttempts    = "passing_att"
	StatPassYards       = "passing_yds"
	StatPassTDs         = "passing_tds"
	StatInterceptions   = "passing_ints"
	StatSacks           = "defense_sk"
	StatRushAttempts    = "rushing_att"
	StatRushYards       = "rushing_yds"
	StatRushTDs         = "rushing_tds"
)

// CountingStats lists the counting stats in display order
var CountingStats = []string{
	StatPassCompletions,
	StatPassAttempts,
	StatPassYards,
	StatPassTDs,
	StatInterceptions,
	StatSacks,
	StatRushAttempts,
	StatRushYards,
	StatRushTDs,
}

// StatLine holds a team's counting stats for one game or a sum of games
type StatLine struct {
	Completions   float64 `json:"passing_cmp"`
	Attempts      float64 `json:"passing_att"`
	PassYards     float64 `json:"passing_yds"`
	PassTDs       float64 `json:"passing_tds"`
	Interceptions float64 `json:"passing_ints"`
	Sacks         float64 `json:"defense_sk"` // sacks taken by the team's passers
	RushAttempts  float64 `json:"rushing_att"`
	RushYards     float64 `json:"rushing_yds"`
	RushTDs       float64 `json:"rushing_tds"`
}

// Vector returns the stats in CountingStats order
func (s StatLine) Vector() []float64 {
	return []float64{
		s.Completions,
		s.Attempts,
		s.PassYards,
		s.PassTDs,
		s.Interceptions,
		s.Sacks,
		s.RushAttempts,
		s.RushYards,
		s.RushTDs,
	}
}

// StatLineFromVector is the inverse of Vector
func StatLineFromVector(v []float64) StatLine {
	if len(v) < len(CountingStats) {
		padded := make([]float64, len(CountingStats))
		copy(padded, v)
		v = padded
	}
	return StatLine{
		Completions:   v[0],
		Attempts:      v[1],
		PassYards:     v[2],
		PassTDs:       v[3],
		Interceptions: v[4],
		Sacks:         v[5],
		RushAttempts:  v[6],
		RushYards:     v[7],
		RushTDs:       v[8],
	}
}

// Get returns a stat by key; unknown keys read as zero
func (s StatLine) Get(key string) float64 {
	for i, k := range CountingStats {
		if k == key {
			return s.Vector()[i]
		}
	}
	return 0
}

// Map returns the stat line as stat key -> value
func (s StatLine) Map() map[string]float64 {
	v := s.Vector()
	m := make(map[string]float64, len(v))
	for i, k := range CountingStats {
		m[k] = v[i]
	}
	return m
}

// IsZero reports whether no stats were recorded
func (s StatLine) IsZero() bool {
	return s == StatLine{}
}
