package core

import (
	"context"
	"fmt"

	"quoteloc/internal/document"
	"quoteloc/internal/locate"
	"quoteloc/internal/logging"
	"quoteloc/pkg/occurrence"
)

// Target is the character the command line tool searches for.
const Target = '\''

// Result is a completed scan of one document.
type Result struct {
	Path        string
	Target      rune
	Unit        locate.Unit
	Doc         *document.Document
	Occurrences []occurrence.Occurrence
}

// Total returns the number of occurrences found.
func (r *Result) Total() int {
	return len(r.Occurrences)
}

// LineText returns the full text of the line an occurrence sits on.
func (r *Result) LineText(o occurrence.Occurrence) string {
	line, _ := r.Doc.Line(o.Line)
	return line
}

// Scan loads the document at path and collects every occurrence of target.
// Load failures are returned unchanged so callers can match them with errors.Is.
func Scan(ctx context.Context, path string, target rune, unit locate.Unit) (*Result, error) {
	logger := logging.FromContext(ctx)

	if path == "" {
		return nil, fmt.Errorf("no input path: pass a file argument or set path in the config file")
	}

	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("document loaded", "path", path, "bytes", doc.Len(), "lines", doc.LineCount())

	found := locate.Collect(doc, target, locate.WithUnit(unit))
	logger.Debug("scan finished", "path", path, "target", string(target), "unit", unit.String(), "occurrences", len(found))

	return &Result{
		Path:        path,
		Target:      target,
		Unit:        unit,
		Doc:         doc,
		Occurrences: found,
	}, nil
}
