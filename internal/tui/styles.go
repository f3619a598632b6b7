package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/hpicker/internal/picker"
)

// Color palette.
const (
	ColorHeader = lipgloss.Color("99")
	ColorMuted  = lipgloss.Color("241")
	ColorMarker = lipgloss.Color("205")
	ColorStatus = lipgloss.Color("252")
)

// Default title colors.
const (
	DefaultSelectedColor   = picker.Color("")
	DefaultDeselectedColor = picker.Color("245")
)

// Marker glyph drawn under the viewport midpoint.
const IconMarker = "▲"

// TitleAttribute is the terminal rendition of a title's font and color.
type TitleAttribute struct {
	Color     picker.Color
	Bold      bool
	Italic    bool
	Underline bool
}

// Style converts the attribute to a lipgloss style.
func (a TitleAttribute) Style() lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(a.Bold).
		Italic(a.Italic).
		Underline(a.Underline)
	if a.Color != "" {
		s = s.Foreground(lipgloss.Color(a.Color))
	}
	return s
}

// TitleAttributes holds the title look for selected and deselected cells.
type TitleAttributes struct {
	Selected   TitleAttribute
	Deselected TitleAttribute
}

// DefaultTitleAttributes returns a bold default-colored selected title and a gray
// deselected one.
func DefaultTitleAttributes() TitleAttributes {
	return TitleAttributes{
		Selected:   TitleAttribute{Color: DefaultSelectedColor, Bold: true},
		Deselected: TitleAttribute{Color: DefaultDeselectedColor},
	}
}

// Styles is the rendered style set of a PickerModel.
type Styles struct {
	Selected   lipgloss.Style
	Deselected lipgloss.Style
	Header     lipgloss.Style
	Marker     lipgloss.Style
	Status     lipgloss.Style
	Muted      lipgloss.Style
}

// NewStyles builds the style set for the given title attributes.
func NewStyles(attrs TitleAttributes) Styles {
	return Styles{
		Selected:   attrs.Selected.Style(),
		Deselected: attrs.Deselected.Style(),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(ColorHeader),
		Marker:     lipgloss.NewStyle().Foreground(ColorMarker),
		Status:     lipgloss.NewStyle().Foreground(ColorStatus),
		Muted:      lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
