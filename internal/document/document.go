package document

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Document is the full decoded content of a text source plus its lines.
// It is built once and never mutated.
type Document struct {
	content     string
	lines       []string
	lineOffsets []int // byte offset where each line begins
}

// Load reads the file at path once, validates it as UTF-8, and returns the
// resulting Document. Errors are *LoadError values matching ErrNotFound or
// ErrDecode.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindNotFound, Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Kind: KindNotFound, Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Kind: KindNotFound, Path: path, Err: fmt.Errorf("%s is a directory", path)}
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, &LoadError{Kind: KindNotFound, Path: path, Err: fmt.Errorf("failed to read file %s: %w", path, err)}
	}

	text, _, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		return nil, &LoadError{Kind: KindDecode, Path: path, Err: fmt.Errorf("%s: %w", path, err)}
	}

	return FromString(string(text)), nil
}

// FromString builds a Document from in-memory text. "\r\n" and lone "\r"
// line endings are normalised to "\n".
func FromString(s string) *Document {
	content := normalizeLineBreaks(s)
	return &Document{
		content:     content,
		lines:       splitLines(content),
		lineOffsets: buildLineOffsets(content),
	}
}

func normalizeLineBreaks(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitLines splits on '\n'. A trailing line break does not start a new line,
// and empty content has no lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// buildLineOffsets returns the byte offsets where each line begins.
// E.g. if content[0]=='a' and content[5]=='\n', then offsets = [0,6,...].
func buildLineOffsets(content string) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' && i+1 < len(content) {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// Content returns the full document text.
func (d *Document) Content() string {
	return d.content
}

// Len returns the content length in bytes.
func (d *Document) Len() int {
	return len(d.content)
}

// Lines returns a copy of the document lines, without line breaks.
func (d *Document) Lines() []string {
	return slices.Clone(d.lines)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of the 1-based line n.
func (d *Document) Line(n int) (string, bool) {
	if n < 1 || n > len(d.lines) {
		return "", false
	}
	return d.lines[n-1], true
}

// LineOffset returns the byte offset where the 1-based line n begins.
func (d *Document) LineOffset(n int) (int, bool) {
	if n < 1 || n > len(d.lines) {
		return 0, false
	}
	return d.lineOffsets[n-1], true
}

// LineIndexOfByte returns the 0-based line index that contains offset.
func (d *Document) LineIndexOfByte(offset int) int {
	i := sort.Search(len(d.lineOffsets), func(i int) bool {
		return d.lineOffsets[i] > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// PositionAt computes the 1-based line and rune column of the byte offset by
// rescanning the prefix before it. It is quadratic when called per match and
// exists to cross-check the single-pass locator.
func (d *Document) PositionAt(offset int) (line, column int) {
	offset = max(0, min(offset, len(d.content)))
	prefix := d.content[:offset]
	line = 1 + strings.Count(prefix, "\n")
	lastBreak := strings.LastIndexByte(prefix, '\n')
	column = utf8.RuneCountInString(prefix[lastBreak+1:]) + 1
	return line, column
}
