package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reCode = regexp.MustCompile(`^[A-Za-z0-9_-]{6,64}$`)
	reTerm = regexp.MustCompile(`^[\p{L}\p{N} _'\-]{1,50}$`)
)

// Code validates a product code: trimmed, 6-64 barcode-safe characters.
func Code(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCode.MatchString(s)
}

// Name validates a product name: trimmed, 1-50 characters.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

// Term validates a search query: trims, enforces allowed characters and max length.
func Term(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reTerm.MatchString(s)
}

// Price parses a decimal price string and requires it to be > 0.
func Price(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}

// Qty parses a positive integer quantity.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Date parses a YYYY-MM-DD date.
func Date(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
