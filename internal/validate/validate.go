package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var reUsername = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reUsername.MatchString(s)
}

// Password only checks presence; credentials are verified against the
// stored bcrypt hash, not shaped here. 72 bytes is the bcrypt input cap.
func Password(s string) bool {
	return s != "" && len(s) <= 72
}

// MessageText trims and bounds a chat line to 500 runes.
func MessageText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 500 {
		return "", false
	}
	return s, true
}

// Qty parses an integer form field (admin stock reset).
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}
