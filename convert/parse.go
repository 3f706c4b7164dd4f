package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseYear parses a sheet name as a year.
func ParseYear(name string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(name))
	if err != nil {
		return 0, fmt.Errorf("year %q: %w", name, ErrBadYear)
	}
	return year, nil
}

// ParseSalary parses cell text as a whole number. Numeric cells may come
// through as "1500.0", so integral decimals are accepted.
func ParseSalary(text string) (int, error) {
	text = strings.TrimSpace(text)
	if salary, err := strconv.Atoi(text); err == nil {
		return salary, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, fmt.Errorf("salary %q: %w", text, ErrBadSalary)
	}
	// float64(math.MaxInt) rounds up, so the upper bound is exclusive.
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return 0, fmt.Errorf("salary %q out of range: %w", text, ErrBadSalary)
	}
	return int(f), nil
}

// PrefixMatch is the job matching policy: the row label must start with the
// configured job name, since labels in the export may carry qualifiers.
func PrefixMatch(label, job string) bool {
	return strings.HasPrefix(label, job)
}
