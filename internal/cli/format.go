package cli

// OutputFormat selects how a completed report is rendered.
type OutputFormat int

const (
	// OutputFormatText renders the human-readable report.
	OutputFormatText OutputFormat = iota

	// OutputFormatJSON renders the machine-readable report.
	OutputFormatJSON
)

// String returns the flag value that selects this format.
func (f OutputFormat) String() string {
	switch f {
	case OutputFormatJSON:
		return "json"
	default:
		return "text"
	}
}

// ParseOutputFormat converts string to OutputFormat enum
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch format {
	case "text":
		return OutputFormatText, nil
	case "json":
		return OutputFormatJSON, nil
	default:
		return OutputFormatText, ErrInvalidOutputFormat
	}
}
