package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// CleanSubject trims and upper-cases a department subject code.
func CleanSubject(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CleanSeason normalizes a season name to its title form, eg. "fall" -> "Fall".
func CleanSeason(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
