package utils

import (
	"strconv"
	"strings"
)

// ParseDuration converts a "MM:SS" or "HH:MM:SS" string to seconds.
// Malformed input parses as 0.
func ParseDuration(formatted string) float64 {
	parts := strings.Split(strings.TrimSpace(formatted), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0
	}

	total := 0
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 0 {
			return 0
		}
		total = total*60 + value
	}
	return float64(total)
}
