package compare

import (
	"cmp"
	"errors"
	"math"
	"strconv"
	"strings"
)

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

// compareNumeric orders keys by their numeric value. Keys that are not
// numbers sort after every number, lexically among themselves, which keeps
// the order total even for keys that skipped validation.
func compareNumeric(a, b string) int {
	fa, okA := parseNumber(a)
	fb, okB := parseNumber(b)

	switch {
	case okA && okB:
		return cmp.Compare(fa, fb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func newNumeric(Options) (*Strategy, error) {
	return &Strategy{
		Name:    NameNumeric,
		Compare: compareNumeric,
		validate: func(key string) error {
			if _, ok := parseNumber(key); !ok {
				return errors.New("not a number")
			}
			return nil
		},
	}, nil
}
