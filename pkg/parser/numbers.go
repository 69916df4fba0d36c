package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// sportschau.de formats numbers with a comma decimal separator and a dot
// thousands separator. The pattern is strict so that player names like
// "Müller, T." never match.
var germanNumber = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})*(,\d+)?$`)

func normalizeNumber(s string) string {
	s = strings.TrimSpace(s)
	if germanNumber.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

// ParseFloat parses a cell value that may use German number formatting.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(normalizeNumber(s), 64)
	if err != nil {
		return 0, fmt.Errorf("cell %q is not a number: %w", s, err)
	}
	return v, nil
}

// ParseInt parses an integer cell value that may use German number
// formatting, e.g. "1.234" sprints.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(normalizeNumber(s))
	if err != nil {
		return 0, fmt.Errorf("cell %q is not an integer: %w", s, err)
	}
	return v, nil
}
