package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// validateLimit parses a spending limit entry. Only a parseable number
// strictly greater than zero is accepted; the error carries the reason
// shown to the user before re-prompting.
func validateLimit(input string) (float64, error) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "$"))
	if s == "" {
		return 0, fmt.Errorf("enter a spending limit")
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", input)
	}
	if v <= 0 {
		return 0, fmt.Errorf("limit must be greater than zero")
	}
	return v, nil
}
