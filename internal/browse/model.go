package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"quoteloc/internal/core"
	"quoteloc/internal/report"
	"quoteloc/pkg/occurrence"
)

// OccurrenceItem is one list entry.
type OccurrenceItem struct {
	Occurrence occurrence.Occurrence
	LineText   string
}

func (i OccurrenceItem) Title() string       { return i.Occurrence.String() }
func (i OccurrenceItem) Description() string { return i.LineText }
func (i OccurrenceItem) FilterValue() string { return i.LineText }

// model is the Bubbletea model for the occurrence browser.
type model struct {
	list     list.Model
	quitting bool
	height   int
	width    int
}

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// itemsFor converts a scan result into list items.
func itemsFor(res *core.Result) []list.Item {
	items := make([]list.Item, 0, res.Total())
	for _, o := range res.Occurrences {
		items = append(items, OccurrenceItem{Occurrence: o, LineText: res.LineText(o)})
	}
	return items
}

// InitialModel creates the browser model for a scan result.
func InitialModel(res *core.Result, height int) model {
	l := list.New(itemsFor(res), list.NewDefaultDelegate(), defaultWidth, listHeight(height))
	l.Title = fmt.Sprintf("%s (%s)", res.Path, report.Summary(res.Target, res.Total()))
	return model{
		list:   l,
		height: height,
		width:  defaultWidth,
	}
}

// listHeight leaves room for the border and padding around the list.
func listHeight(height int) int {
	return max(height-4, 5)
}
