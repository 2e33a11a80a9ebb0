// Package val contains field validators shared by the API binding layer.
package val

import (
	"fmt"
	"regexp"
)

var (
	isValidUsername = regexp.MustCompile(`^[a-z0-9_]+$`).MatchString
	isValidCategory = regexp.MustCompile(`^[a-z][a-z_]*$`).MatchString
)

// knownMoods is the closed vocabulary accepted on logbook entries.
var knownMoods = map[string]bool{
	"calm":     true,
	"happy":    true,
	"excited":  true,
	"tired":    true,
	"lonely":   true,
	"restless": true,
}

// ValidateString checks that a value's length falls within [minLength, maxLength].
func ValidateString(value string, minLength int, maxLength int) error {
	n := len(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d-%d characters", minLength, maxLength)
	}
	return nil
}

// ValidateUsername accepts 3-30 characters of lowercase letters, digits and
// underscores.
func ValidateUsername(value string) error {
	if err := ValidateString(value, 3, 30); err != nil {
		return err
	}
	if !isValidUsername(value) {
		return fmt.Errorf("must contain only lowercase letters, digits, or underscore")
	}
	return nil
}

// ValidateNickname accepts 1-30 characters of any kind.
func ValidateNickname(value string) error {
	return ValidateString(value, 1, 30)
}

// ValidateCategory accepts a lowercase snake_case category tag.
func ValidateCategory(value string) error {
	if err := ValidateString(value, 2, 30); err != nil {
		return err
	}
	if !isValidCategory(value) {
		return fmt.Errorf("must contain only lowercase letters and underscore, starting with a letter")
	}
	return nil
}

// ValidateMood accepts one of the known mood tags.
func ValidateMood(value string) error {
	if !knownMoods[value] {
		return fmt.Errorf("unknown mood %q", value)
	}
	return nil
}
