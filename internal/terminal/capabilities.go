package terminal

// Options contains all terminal-related configuration options
type Options struct {
	// PreferenceOptions for color settings
	PreferenceOptions PreferenceOptions
	// DetectorOptions for interactive detection
	DetectorOptions DetectorOptions
}

// Capabilities provides a unified interface for terminal capability
// detection, combining interactive detection with color preferences.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
}

// DefaultCapabilities implements the Capabilities interface
type DefaultCapabilities struct {
	interactiveDetector InteractiveDetector
	userPreference      *UserPreference
}

// NewCapabilities creates a new Capabilities instance with the given options
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		interactiveDetector: NewInteractiveDetector(options.DetectorOptions),
		userPreference:      NewUserPreference(options.PreferenceOptions),
	}
}

// IsInteractive returns true if the current environment should be treated as interactive
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.interactiveDetector.IsInteractive()
}

// SupportsColor returns true if color output should be enabled.
// Priority: explicit user preference (flags, CLICOLOR_FORCE, NO_COLOR),
// then auto-detection (interactive terminal with a color-capable TERM).
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.userPreference.HasExplicitPreference() {
		return c.userPreference.SupportsColor()
	}
	return c.IsInteractive() && termSupportsColor()
}
