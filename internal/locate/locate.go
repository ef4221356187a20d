// Package locate finds every occurrence of a character in a document and
// reports its line and column.
//
// The scan is a single forward pass: the line counter advances on each '\n'
// and the column counter resets, so positions are never recomputed from the
// start of the document.
package locate

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/rivo/uniseg"

	"quoteloc/internal/document"
	"quoteloc/pkg/occurrence"
)

// Unit is what one column step counts.
type Unit int

const (
	// Runes counts one column per Unicode code point.
	Runes Unit = iota
	// Bytes counts one column per UTF-8 byte.
	Bytes
	// Graphemes counts one column per user-perceived character.
	Graphemes
)

var unitNames = map[Unit]string{
	Runes:     "rune",
	Bytes:     "byte",
	Graphemes: "grapheme",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// UnitNames lists the accepted spellings for ParseUnit.
func UnitNames() []string {
	return []string{"rune", "byte", "grapheme"}
}

// ParseUnit maps a configuration value to a Unit.
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if strings.EqualFold(s, name) {
			return u, nil
		}
	}
	return Runes, fmt.Errorf("unknown column unit %q (expected one of: %s)", s, strings.Join(UnitNames(), ", "))
}

type options struct {
	unit Unit
}

// Option configures a scan.
type Option func(*options)

// WithUnit selects the column unit. The default is Runes.
func WithUnit(u Unit) Option {
	return func(o *options) {
		o.unit = u
	}
}

// All returns a lazy sequence of occurrences of target in doc, in document order.
func All(doc *document.Document, target rune, opts ...Option) iter.Seq[occurrence.Occurrence] {
	o := options{unit: Runes}
	for _, opt := range opts {
		opt(&o)
	}
	if o.unit == Graphemes {
		return scanGraphemes(doc.Content(), target)
	}
	return scanRunes(doc.Content(), target, o.unit)
}

// Collect returns every occurrence of target in doc. The result is never nil.
func Collect(doc *document.Document, target rune, opts ...Option) []occurrence.Occurrence {
	found := slices.Collect(All(doc, target, opts...))
	if found == nil {
		found = []occurrence.Occurrence{}
	}
	return found
}

// Count returns the number of occurrences of target in doc.
func Count(doc *document.Document, target rune) int {
	n := 0
	for range All(doc, target) {
		n++
	}
	return n
}

func scanRunes(content string, target rune, unit Unit) iter.Seq[occurrence.Occurrence] {
	return func(yield func(occurrence.Occurrence) bool) {
		line := 1
		lineStart := 0 // byte offset of the current line
		runeCol := 0   // runes consumed on the current line
		for i, r := range content {
			if r == target {
				column := runeCol + 1
				if unit == Bytes {
					column = i - lineStart + 1
				}
				if !yield(occurrence.Occurrence{Line: line, Column: column, Offset: i, Char: r}) {
					return
				}
			}
			if r == '\n' {
				line++
				lineStart = i + 1
				runeCol = 0
				continue
			}
			runeCol++
		}
	}
}

func scanGraphemes(content string, target rune) iter.Seq[occurrence.Occurrence] {
	return func(yield func(occurrence.Occurrence) bool) {
		line := 1
		clusterCol := 0
		g := uniseg.NewGraphemes(content)
		for g.Next() {
			from, _ := g.Positions()
			cluster := g.Str()
			clusterCol++
			for j, r := range cluster {
				if r != target {
					continue
				}
				if !yield(occurrence.Occurrence{Line: line, Column: clusterCol, Offset: from + j, Char: r}) {
					return
				}
			}
			if cluster == "\n" {
				line++
				clusterCol = 0
			}
		}
	}
}
