package occurrence

import (
	"fmt"
)

// Occurrence is one match of the target character inside a document.
type Occurrence struct {
	Line   int  // 1-based line number
	Column int  // 1-based column within the line, in the locator's column unit
	Offset int  // 0-based byte offset into the document content
	Char   rune // The matched character
}

// String returns the position in the <line>:<column> form used by the report.
func (o Occurrence) String() string {
	return fmt.Sprintf("%d:%d", o.Line, o.Column)
}

// Before reports whether o appears earlier in the document than other.
func (o Occurrence) Before(other Occurrence) bool {
	return o.Offset < other.Offset
}
