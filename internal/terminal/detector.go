// Package terminal provides helpers for detecting terminal capabilities and
// determining whether the current process should be treated as interactive
// or running in a CI/non-interactive environment.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"GITLAB_CI",              // GitLab CI
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
}

// colorTerminals lists TERM values (or prefixes) that are known to support
// basic terminal colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// InteractiveDetector reports whether the process is talking to a person.
type InteractiveDetector interface {
	IsInteractive() bool
	IsTerminal() bool
	IsCIEnvironment() bool
}

// DetectorOptions contains options for controlling interactive detection
type DetectorOptions struct {
	ForceInteractive    bool // Treat the environment as interactive regardless of detection
	ForceNonInteractive bool // Treat the environment as non-interactive regardless of detection
}

// DefaultInteractiveDetector implements InteractiveDetector
type DefaultInteractiveDetector struct {
	options DetectorOptions
}

// NewInteractiveDetector creates a new interactive detector with the given options
func NewInteractiveDetector(options DetectorOptions) InteractiveDetector {
	return &DefaultInteractiveDetector{options: options}
}

// IsInteractive returns true if the current environment is interactive.
// Explicit options win, then CI detection, then the terminal check.
func (d *DefaultInteractiveDetector) IsInteractive() bool {
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}
	if d.IsCIEnvironment() {
		return false
	}
	return d.IsTerminal()
}

// IsTerminal checks if stderr is connected to a terminal. The report and all
// warnings are written to stderr, so that is the stream whose capabilities
// matter here.
func (d *DefaultInteractiveDetector) IsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsCIEnvironment checks if the current environment is a CI/CD system
func (d *DefaultInteractiveDetector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}
	return false
}

// termSupportsColor returns true if the TERM environment variable names a
// terminal known to support basic color output.
func termSupportsColor() bool {
	termEnv := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if termEnv == "" || termEnv == "dumb" {
		return false
	}
	for _, colorTerm := range colorTerminals {
		if termEnv == colorTerm || strings.HasPrefix(termEnv, colorTerm+"-") {
			return true
		}
	}
	// Unknown TERM values still frequently support color; treat a declared
	// "256color" or "color" suffix as capable.
	return strings.Contains(termEnv, "color")
}
