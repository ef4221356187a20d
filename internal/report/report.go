package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"quoteloc/internal/core"
	"quoteloc/pkg/occurrence"
)

// Format selects how a result is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ColorMode controls highlighting of matched characters in text output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// FormatNames lists the accepted output formats.
func FormatNames() []string {
	return []string{string(FormatText), string(FormatJSON)}
}

// ColorNames lists the accepted color modes.
func ColorNames() []string {
	return []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}
}

// ParseFormat maps a configuration value to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !slices.Contains(FormatNames(), string(f)) {
		return "", fmt.Errorf("unknown output format %q (expected one of: %s)", s, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// ParseColorMode maps a configuration value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	m := ColorMode(strings.ToLower(s))
	if !slices.Contains(ColorNames(), string(m)) {
		return "", fmt.Errorf("unknown color mode %q (expected one of: %s)", s, strings.Join(ColorNames(), ", "))
	}
	return m, nil
}

// Renderer writes scan results to an output stream.
type Renderer struct {
	w         io.Writer
	format    Format
	highlight bool
	style     lipgloss.Style
}

// NewRenderer creates a renderer for w. In ColorAuto mode highlighting is
// enabled only when w is a terminal that supports color.
func NewRenderer(w io.Writer, format Format, color ColorMode) *Renderer {
	lr := lipgloss.NewRenderer(w)
	switch color {
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI)
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:         w,
		format:    format,
		highlight: lr.ColorProfile() != termenv.Ascii,
		style:     lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Render writes the summary line followed by one line per occurrence.
func (r *Renderer) Render(res *core.Result) error {
	if r.format == FormatJSON {
		return r.renderJSON(res)
	}
	return r.renderText(res)
}

func (r *Renderer) renderText(res *core.Result) error {
	if _, err := fmt.Fprintln(r.w, Summary(res.Target, res.Total())); err != nil {
		return err
	}
	for _, o := range res.Occurrences {
		text := res.LineText(o)
		if r.highlight {
			text = r.highlightLine(res, o, text)
		}
		if _, err := fmt.Fprintf(r.w, "%s: %s\n", o, text); err != nil {
			return err
		}
	}
	return nil
}

// highlightLine styles the matched character inside its line.
func (r *Renderer) highlightLine(res *core.Result, o occurrence.Occurrence, text string) string {
	start, ok := res.Doc.LineOffset(o.Line)
	if !ok {
		return text
	}
	i := o.Offset - start
	end := i + len(string(o.Char))
	if i < 0 || end > len(text) {
		return text
	}
	return text[:i] + r.style.Render(text[i:end]) + text[end:]
}

type jsonOccurrence struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
	Text   string `json:"text"`
}

type jsonReport struct {
	Path        string           `json:"path"`
	Character   string           `json:"character"`
	Name        string           `json:"name"`
	Unit        string           `json:"unit"`
	Total       int              `json:"total"`
	Occurrences []jsonOccurrence `json:"occurrences"`
}

func (r *Renderer) renderJSON(res *core.Result) error {
	out := jsonReport{
		Path:        res.Path,
		Character:   string(res.Target),
		Name:        CharacterName(res.Target),
		Unit:        res.Unit.String(),
		Total:       res.Total(),
		Occurrences: make([]jsonOccurrence, 0, res.Total()),
	}
	for _, o := range res.Occurrences {
		out.Occurrences = append(out.Occurrences, jsonOccurrence{
			Line:   o.Line,
			Column: o.Column,
			Offset: o.Offset,
			Text:   res.LineText(o),
		})
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
