// Package strutil provides lenient string conversion helpers for query
// parameter parsing.
package strutil

import "strconv"

// ConvertToInt parses s as a decimal integer, returning 0 when parsing fails
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}

// ConvertToInt64 parses s as a decimal integer, returning 0 when parsing fails
func ConvertToInt64(s string) int64 {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
