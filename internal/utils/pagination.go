package utils

import (
	"strconv"
	"strings"
)

// ParsePagination turns raw page and perPage query values into usable numbers.
// Missing, non-numeric or non-positive values fall back to page 1 and
// defaultPerPage. perPage is capped at maxPerPage when maxPerPage > 0.
func ParsePagination(page, perPage string, defaultPerPage, maxPerPage int) (int, int) {
	p := positiveIntOr(page, 1)
	pp := positiveIntOr(perPage, defaultPerPage)
	if pp < 1 {
		pp = 1
	}
	if maxPerPage > 0 && pp > maxPerPage {
		pp = maxPerPage
	}
	return p, pp
}

func positiveIntOr(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
