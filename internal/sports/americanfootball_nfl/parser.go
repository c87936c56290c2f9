package americanfootball_nfl

import (
	"strconv"
	"strings"
)

// parseFloat parses a float from interface{}
func parseFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f
	case int:
		return float64(val)
	default:
		return 0.0
	}
}

// parseInt parses an int from interface{}
func parseInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(val))
		return i
	case int:
		return val
	default:
		return 0
	}
}

// parsePair splits ESPN compound cells such as "22/35" (C/ATT) or "2-14" (SACKS)
func parsePair(v interface{}, sep string) (float64, float64) {
	s, ok := v.(string)
	if !ok {
		return parseFloat(v), 0
	}
	parts := strings.SplitN(s, sep, 2)
	first := parseFloat(parts[0])
	if len(parts) < 2 {
		return first, 0
	}
	return first, parseFloat(parts[1])
}

// columnIndex finds a stat column by ESPN key, falling back to its label
func columnIndex(category map[string]interface{}, key, label string) int {
	for i, k := range extractArray(category, "keys") {
		if s, ok := k.(string); ok && s == key {
			return i
		}
	}
	for i, l := range extractArray(category, "labels") {
		if s, ok := l.(string); ok && strings.EqualFold(s, label) {
			return i
		}
	}
	return -1
}

// cell returns row[idx] or nil when the column is missing
func cell(row []interface{}, idx int) interface{} {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

// extractString safely extracts a string from a map
func extractString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

// extractInt safely extracts an int from a map
func extractInt(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		return parseInt(v)
	}
	return 0
}

// extractBool safely extracts a bool from a map
func extractBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// extractMap safely extracts a map from a map
func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

// extractArray safely extracts an array from a map
func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}

// asMap converts an array element to a map, empty when it is not an object
func asMap(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}
