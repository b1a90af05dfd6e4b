package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRunID returns a report run ID like "2026-08-001": the year and
// month the run happened plus a per-month sequence number.
func FormatRunID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// ParseRunID parses "2026-08-001" into year, month, seq.
func ParseRunID(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid run ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in run ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in run ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in run ID %q: %w", id, err)
	}

	return year, month, seq, nil
}
