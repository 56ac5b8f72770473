package valid

import (
	"fmt"
	"unicode/utf8"
)

// Length validates optional string for boundary conditions.
func Length(text, name string, limit int) error {
	if utf8.RuneCountInString(text) > limit {
		return fmt.Errorf("%s must not be longer than %d characters", name, limit)
	}

	return nil
}

// Range validates that value lies in [lo, hi].
func Range(value int, name string, lo, hi int) error {
	if value < lo || value > hi {
		return fmt.Errorf("%s must be between %d and %d", name, lo, hi)
	}

	return nil
}
