package terminal

import (
	"os"
	"strings"
)

// PreferenceOptions contains command-line options for terminal preferences
type PreferenceOptions struct {
	ForceColor   bool // Force color output regardless of environment
	DisableColor bool // Disable color output regardless of environment
}

// UserPreference manages user color preferences based on environment
// variables and command-line options.
type UserPreference struct {
	options PreferenceOptions
}

// NewUserPreference creates a new UserPreference instance
func NewUserPreference(options PreferenceOptions) *UserPreference {
	return &UserPreference{options: options}
}

// SupportsColor returns true if color output should be enabled according to
// the user's explicit preference. Only meaningful when HasExplicitPreference
// reports true.
func (p *UserPreference) SupportsColor() bool {
	// Priority 1: command line arguments
	if p.options.ForceColor {
		return true
	}
	if p.options.DisableColor {
		return false
	}

	// Priority 2: CLICOLOR_FORCE overrides all other conditions
	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); isTruthy(cliColorForce) {
		return true
	}

	// Priority 3: NO_COLOR disables color with any value, even empty
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	return false
}

// HasExplicitPreference returns true if the user has explicitly requested or
// refused color through flags, CLICOLOR_FORCE, or NO_COLOR.
func (p *UserPreference) HasExplicitPreference() bool {
	if p.options.ForceColor || p.options.DisableColor {
		return true
	}
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return false
}

// isTruthy checks if a string value should be considered "true".
// Supports: "1", "true", "yes" (case insensitive).
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
