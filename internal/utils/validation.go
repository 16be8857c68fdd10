package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// Indicator and country names: letters, digits, spaces and the
	// punctuation that appears in the reference data ("GDP, PPP",
	// "Debt (% of GDP)", "Population ages 65+ share", "DR Congo").
	validNamePattern = regexp.MustCompile(`^[\p{L}\p{N} ,.%+()&'/-]+$`)

	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;`)
)

// ValidateName validates that an indicator or country name is safe and
// within reasonable limits.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("name too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) || !validNamePattern.MatchString(name) {
		return errors.New("name contains invalid characters")
	}

	return nil
}

// ValidateOptionalName is ValidateName for parameters that may be absent.
func ValidateOptionalName(name string) error {
	if name == "" {
		return nil
	}
	return ValidateName(name)
}
