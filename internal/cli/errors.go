// Package cli provides output format selection and report rendering for the
// command-line interface.
package cli

import (
	"errors"
)

// Error definitions
var (
	ErrInvalidOutputFormat = errors.New("invalid output format - valid options are: text, json")
	ErrNilReport           = errors.New("nil report")
)
