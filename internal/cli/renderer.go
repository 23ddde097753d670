package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/AlmAck/listMissingLibs/internal/color"
	"github.com/AlmAck/listMissingLibs/internal/libscan"
)

// Renderer writes a dependency report to an output stream.
type Renderer interface {
	Render(report *libscan.Report) error
}

// TextRenderer renders the report as human-readable warning lines. A report
// with no missing libraries and no warnings produces no output at all.
type TextRenderer struct {
	out       io.Writer
	warn      color.Color
	body      color.Color
	highlight color.Color
	quiet     bool
}

// NewTextRenderer creates a text renderer. When colorEnabled is false all
// text is written plain. When quiet is true the per-file read warnings are
// suppressed; missing libraries are always reported.
func NewTextRenderer(out io.Writer, colorEnabled, quiet bool) *TextRenderer {
	return &TextRenderer{
		out:       out,
		warn:      color.ConditionalColor(color.Red, colorEnabled),
		body:      color.ConditionalColor(color.White, colorEnabled),
		highlight: color.ConditionalColor(color.Highlight, colorEnabled),
		quiet:     quiet,
	}
}

// Render writes the text report.
func (r *TextRenderer) Render(report *libscan.Report) error {
	if report == nil {
		return ErrNilReport
	}

	if !r.quiet {
		for _, w := range report.Warnings {
			msg := fmt.Sprintf("Could not open %s; please check permissions", w.Path)
			if err := r.warnln(msg); err != nil {
				return err
			}
		}
	}

	if !report.HasFindings() {
		return nil
	}

	if err := r.warnln("The following libraries were not found"); err != nil {
		return err
	}
	for _, m := range report.Missing {
		_, err := fmt.Fprintf(r.out, "%s required by: %s\n",
			r.highlight(m.Name), strings.Join(m.RequiredBy, ", "))
		if err != nil {
			return err
		}
	}
	return nil
}

// warnln writes one line in the "Warning: >>" style.
func (r *TextRenderer) warnln(text string) error {
	_, err := fmt.Fprintf(r.out, "%s %s\n", r.warn("Warning: >>"), r.body(text))
	return err
}

// JSONRenderer renders the complete report as indented JSON, including runs
// where nothing is missing.
type JSONRenderer struct {
	out io.Writer
}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Render writes the JSON report followed by a newline.
func (r *JSONRenderer) Render(report *libscan.Report) error {
	if report == nil {
		return ErrNilReport
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = r.out.Write(data)
	return err
}
