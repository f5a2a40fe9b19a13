package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emmavds/softseason/internal/domain"
)

// Warm winter palette.
var (
	ColorGreen  = lipgloss.Color("#87a987")
	ColorGold   = lipgloss.Color("#e0af68")
	ColorRed    = lipgloss.Color("#c34043")
	ColorBlue   = lipgloss.Color("#7e9cd8")
	ColorRose   = lipgloss.Color("#d27e99")
	ColorDim    = lipgloss.Color("#727169")
	ColorFg     = lipgloss.Color("#dcd7ba")
	ColorHeader = lipgloss.Color("#ffa066")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleGold   = lipgloss.NewStyle().Foreground(ColorGold)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleRose   = lipgloss.NewStyle().Foreground(ColorRose)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleItalic = lipgloss.NewStyle().Foreground(ColorDim).Italic(true)
)

// categoryStyles maps each activity category to its accent style.
var categoryStyles = map[domain.Category]lipgloss.Style{
	domain.CategorySelfCare:     StyleRose,
	domain.CategoryConnection:   StyleGold,
	domain.CategoryDecluttering: StyleBlue,
	domain.CategoryGiving:       StyleRed,
	domain.CategoryNature:       StyleGreen,
	domain.CategoryReflection:   StyleBlue,
	domain.CategoryCooking:      StyleGold,
	domain.CategoryDIY:          StyleRose,
}

// CategoryTag renders a colored "[Label]" tag for a category.
func CategoryTag(c domain.Category) string {
	style, ok := categoryStyles[c]
	if !ok {
		style = StyleDim
	}
	return style.Render("[" + c.Label() + "]")
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
