package utils

import "regexp"

// SearchPattern escapes term so it can be used as a literal regular expression.
// Only an empty term disables the search; whitespace is matched as written.
func SearchPattern(term string) string {
	if term == "" {
		return ""
	}
	return regexp.QuoteMeta(term)
}
