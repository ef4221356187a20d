package report

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/runenames"
)

var commonNames = map[rune]string{
	'\'': "single quote",
	'"':  "double quote",
	'`':  "backtick",
}

// CharacterName returns a readable lower-case name for r, falling back to
// the Unicode character name and then to the U+XXXX form.
func CharacterName(r rune) string {
	if name, ok := commonNames[r]; ok {
		return name
	}
	if name := runenames.Name(r); name != "" && name[0] != '<' {
		return cases.Lower(language.Und).String(name)
	}
	return fmt.Sprintf("%U", r)
}

// Summary returns the "Total <name> characters: <count>" line.
func Summary(target rune, count int) string {
	return fmt.Sprintf("Total %s characters: %d", CharacterName(target), count)
}
