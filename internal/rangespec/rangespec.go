// Package rangespec parses range strings such as "3,5-9,13" into sets of integers.
package rangespec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Domain bounds the values a range string may name
type Domain struct {
	Name string
	Min  int
	Max  int
}

var (
	// Years are the seasons the stats source covers
	Years = Domain{Name: "year", Min: 2009, Max: 2015}

	// Weeks are the regular season weeks
	Weeks = Domain{Name: "week", Min: 1, Max: 17}
)

// All returns every value of the domain
func (d Domain) All() RangeSpec {
	values := make([]int, 0, d.Max-d.Min+1)
	for v := d.Min; v <= d.Max; v++ {
		values = append(values, v)
	}
	return newRangeSpec(values)
}

// InvalidRangeError reports a malformed or out-of-domain range token
type InvalidRangeError struct {
	Input  string
	Token  string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid range %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid range %q at %q: %s", e.Input, e.Token, e.Reason)
}

// RangeSpec is an immutable set of integers that remembers request order
type RangeSpec struct {
	values []int
	set    map[int]struct{}
}

func newRangeSpec(values []int) RangeSpec {
	rs := RangeSpec{set: make(map[int]struct{}, len(values))}
	for _, v := range values {
		if _, dup := rs.set[v]; dup {
			continue
		}
		rs.set[v] = struct{}{}
		rs.values = append(rs.values, v)
	}
	return rs
}

// Of builds a RangeSpec from explicit values without domain checks
func Of(values ...int) RangeSpec {
	return newRangeSpec(values)
}

// Parse converts a range string to a RangeSpec bounded by dom.
// An empty string selects the whole domain.
func Parse(input string, dom Domain) (RangeSpec, error) {
	if strings.TrimSpace(input) == "" {
		return dom.All(), nil
	}

	var values []int
	for _, raw := range strings.Split(input, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			return RangeSpec{}, &InvalidRangeError{Input: input, Reason: "empty element"}
		}

		lo, hi, err := parseToken(token)
		if err != nil {
			return RangeSpec{}, &InvalidRangeError{Input: input, Token: token, Reason: err.Error()}
		}

		if lo > hi {
			return RangeSpec{}, &InvalidRangeError{
				Input:  input,
				Token:  token,
				Reason: fmt.Sprintf("start %d is after end %d", lo, hi),
			}
		}

		if lo < dom.Min || hi > dom.Max {
			return RangeSpec{}, &InvalidRangeError{
				Input:  input,
				Token:  token,
				Reason: fmt.Sprintf("acceptable %ss are between %d and %d", dom.Name, dom.Min, dom.Max),
			}
		}

		for v := lo; v <= hi; v++ {
			values = append(values, v)
		}
	}

	return newRangeSpec(values), nil
}

// parseToken reads "n" or "a-b"
func parseToken(token string) (int, int, error) {
	startStr, endStr, isRange := strings.Cut(token, "-")

	start, err := parseValue(startStr)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return start, start, nil
	}

	end, err := parseValue(endStr)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseValue(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// Contains reports membership
func (rs RangeSpec) Contains(v int) bool {
	_, ok := rs.set[v]
	return ok
}

// Values returns the values in the order they were requested
func (rs RangeSpec) Values() []int {
	out := make([]int, len(rs.values))
	copy(out, rs.values)
	return out
}

// Sorted returns the values in ascending order
func (rs RangeSpec) Sorted() []int {
	out := rs.Values()
	sort.Ints(out)
	return out
}

// Len returns the number of distinct values
func (rs RangeSpec) Len() int {
	return len(rs.values)
}

// String renders the canonical compressed form, e.g. "3,5-9,13"
func (rs RangeSpec) String() string {
	sorted := rs.Sorted()
	var parts []string
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[j]+1 {
			j++
		}
		if j == i {
			parts = append(parts, strconv.Itoa(sorted[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", sorted[i], sorted[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
