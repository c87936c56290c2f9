package models

import "encoding/json"

// AggregatedRecord is the sum of one team's games within one season.
// Points are cumulative totals, not per-game values.
type AggregatedRecord struct {
	Team          string   `json:"team"`
	Year          int      `json:"year"`
	Games         int      `json:"games"`
	PointsFor     int      `json:"points_for"`
	PointsAgainst int      `json:"points_against"`
	Own           StatLine `json:"own"`
	Opp           StatLine `json:"opp"`
}

// Rate is a derived ratio. Valid is false when the denominator was zero.
type Rate struct {
	Value float64
	Valid bool
}

// RateRecord maps rate stat key -> ratio
type RateRecord map[string]Rate

// MarshalJSON encodes an undefined rate as null
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}
