package utils

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name            string
		page            string
		perPage         string
		expectedPage    int
		expectedPerPage int
	}{
		{name: "Defaults when empty", page: "", perPage: "", expectedPage: 1, expectedPerPage: 10},
		{name: "Valid values", page: "3", perPage: "25", expectedPage: 3, expectedPerPage: 25},
		{name: "Non numeric", page: "abc", perPage: "xyz", expectedPage: 1, expectedPerPage: 10},
		{name: "Zero and negative", page: "0", perPage: "-5", expectedPage: 1, expectedPerPage: 10},
		{name: "Whitespace trimmed", page: " 2 ", perPage: " 5 ", expectedPage: 2, expectedPerPage: 5},
		{name: "Clamped to max", page: "1", perPage: "1000", expectedPage: 1, expectedPerPage: 100},
		{name: "Huge page kept", page: "9223372036854775807", perPage: "100", expectedPage: math.MaxInt64, expectedPerPage: 100},
		{name: "Page beyond int range", page: "99999999999999999999", perPage: "100", expectedPage: 1, expectedPerPage: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := ParsePagination(tt.page, tt.perPage, 10, 100)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedPerPage, perPage)
		})
	}

	t.Run("No cap when max is zero", func(t *testing.T) {
		_, perPage := ParsePagination("1", "1000", 10, 0)
		assert.Equal(t, 1000, perPage)
	})
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "", SearchPattern(""))

	// Whitespace is a real term and only matches text containing it
	space := regexp.MustCompile(SearchPattern(" "))
	assert.Equal(t, " ", SearchPattern(" "))
	assert.True(t, space.MatchString("slim fit"))
	assert.False(t, space.MatchString("slimfit"))

	pattern := SearchPattern("Men's (Cotton)")
	re := regexp.MustCompile("(?i)" + pattern)
	assert.True(t, re.MatchString("mens casual MEN'S (COTTON) jacket"))
	assert.False(t, re.MatchString("Men's Cotton"))

	dot := regexp.MustCompile(SearchPattern("a.b"))
	assert.Equal(t, ` a\.b `, SearchPattern(" a.b "))
	assert.True(t, dot.MatchString("xa.bx"))
	assert.False(t, dot.MatchString("axb"))
}
