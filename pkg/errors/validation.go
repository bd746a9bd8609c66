package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// planIDRegex matches ids minted by pkg/ids: a lowercase prefix, an
// underscore, then digits or a uuid.
var planIDRegex = regexp.MustCompile(`^[a-z]+_[0-9a-f-]+$`)

// ValidatePlanID validates a plan id taken from a URL or command line.
// It rejects anything that could not have come from the id generators,
// which keeps ids safe to use as file names and cache keys.
func ValidatePlanID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPlanID, "plan id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidPlanID, "plan id too long (max 64 characters)")
	}
	if !planIDRegex.MatchString(id) {
		return New(ErrCodeInvalidPlanID, "invalid plan id: %q", id)
	}
	return nil
}

// styleIDRegex matches style ids such as "modern" or "mid-century".
var styleIDRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateStyleID validates a style id. Unknown but well-formed styles are
// accepted; the palette falls back to its default.
func ValidateStyleID(style string) error {
	if style == "" {
		return New(ErrCodeInvalidStyle, "cannot be empty").WithField("style")
	}
	if len(style) > 32 {
		return New(ErrCodeInvalidStyle, "too long (max 32 characters)").WithField("style")
	}
	if !styleIDRegex.MatchString(style) {
		return New(ErrCodeInvalidStyle, "invalid style %q", style).WithField("style")
	}
	return nil
}

// ValidatePlanName validates a human-readable plan name.
//
// Validation rules:
//   - Maximum length of 128 characters
//   - No control characters
func ValidatePlanName(name string) error {
	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "too long (max 128 characters)").WithField("name")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "contains control characters").WithField("name")
		}
	}
	return nil
}

// ValidateURL validates a connection URL against the allowed schemes.
func ValidateURL(rawURL string, schemes ...string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	for _, s := range schemes {
		if strings.HasPrefix(rawURL, s+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "URL must use one of the schemes %s", strings.Join(schemes, ", "))
}
