package rangespec_test

import (
	"errors"
	"testing"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/rangespec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		dom   rangespec.Domain
		want  []int
	}{
		{"mixed weeks", "3,5-9,13", rangespec.Weeks, []int{3, 5, 6, 7, 8, 9, 13}},
		{"single year", "2014", rangespec.Years, []int{2014}},
		{"years list", "2010,2012-2014", rangespec.Years, []int{2010, 2012, 2013, 2014}},
		{"whitespace", " 1 , 2 - 3 ", rangespec.Weeks, []int{1, 2, 3}},
		{"duplicates collapse", "5,4-6,5", rangespec.Weeks, []int{5, 4, 6}},
		{"degenerate range", "7-7", rangespec.Weeks, []int{7}},
		{"domain bounds", "1,17", rangespec.Weeks, []int{1, 17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := rangespec.Parse(tt.input, tt.dom)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rs.Values())
			assert.Equal(t, len(tt.want), rs.Len())
		})
	}
}

func TestParse_MembershipMatchesNamedIntegers(t *testing.T) {
	rs, err := rangespec.Parse("3,5-9,13", rangespec.Weeks)
	require.NoError(t, err)

	named := map[int]bool{3: true, 5: true, 6: true, 7: true, 8: true, 9: true, 13: true}
	for w := rangespec.Weeks.Min; w <= rangespec.Weeks.Max; w++ {
		assert.Equal(t, named[w], rs.Contains(w), "week %d", w)
	}
	assert.False(t, rs.Contains(0))
	assert.False(t, rs.Contains(18))
}

func TestParse_EmptyMeansWholeDomain(t *testing.T) {
	weeks, err := rangespec.Parse("", rangespec.Weeks)
	require.NoError(t, err)
	assert.Equal(t, 17, weeks.Len())
	assert.Equal(t, "1-17", weeks.String())

	years, err := rangespec.Parse("   ", rangespec.Years)
	require.NoError(t, err)
	assert.Equal(t, []int{2009, 2010, 2011, 2012, 2013, 2014, 2015}, years.Values())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		dom    rangespec.Domain
		reason string
	}{
		{"reversed weeks", "17-16", rangespec.Weeks, "after"},
		{"reversed years", "2014-2012", rangespec.Years, "after"},
		{"non numeric", "abc", rangespec.Weeks, "not a number"},
		{"week too high", "18", rangespec.Weeks, "between 1 and 17"},
		{"week zero", "0-3", rangespec.Weeks, "between 1 and 17"},
		{"year too early", "2008", rangespec.Years, "between 2009 and 2015"},
		{"year too late", "2013-2016", rangespec.Years, "between 2009 and 2015"},
		{"empty element", "1,,3", rangespec.Weeks, "empty element"},
		{"open range", "3-", rangespec.Weeks, "not a number"},
		{"leading hyphen", "-3", rangespec.Weeks, "not a number"},
		{"double hyphen", "1-2-3", rangespec.Weeks, "not a number"},
		{"plus sign", "+3", rangespec.Weeks, "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rangespec.Parse(tt.input, tt.dom)
			require.Error(t, err)

			var rangeErr *rangespec.InvalidRangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.input, rangeErr.Input)
			assert.Contains(t, rangeErr.Reason, tt.reason)
		})
	}
}

func TestRangeSpec_String(t *testing.T) {
	assert.Equal(t, "3,5-9,13", rangespec.Of(13, 9, 8, 7, 6, 5, 3).String())
	assert.Equal(t, "", rangespec.Of().String())
	assert.Equal(t, []int{3, 5, 13}, rangespec.Of(13, 5, 3).Sorted())
}

func TestRangeSpec_ValuesIsACopy(t *testing.T) {
	rs := rangespec.Of(1, 2, 3)
	v := rs.Values()
	v[0] = 99

	assert.Equal(t, []int{1, 2, 3}, rs.Values())
}
