package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PageSource is a counted item source titled "Page 1", "Page 2", ... with numbers
// formatted for the given locale.
type PageSource struct {
	count   int
	printer *message.Printer
}

// NewPageSource creates a source of count pages. An unknown tag formats numbers as
// English.
func NewPageSource(count int, tag language.Tag) *PageSource {
	return &PageSource{
		count:   max(count, 0),
		printer: message.NewPrinter(tag),
	}
}

// Count returns the number of pages.
func (p *PageSource) Count() int {
	return p.count
}

// TitleAt returns the 1-based page title for index.
func (p *PageSource) TitleAt(index int) string {
	return p.printer.Sprintf("Page %d", index+1)
}
