package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultProgressWidth = 20

// ClampPercent limits value to [0, 100]. NaN counts as 0.
func ClampPercent(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return math.Max(0, math.Min(100, value))
}

// ProgressSegments splits width cells into filled and empty counts for
// value. filled+empty always equals width; a non-positive width is (0, 0).
func ProgressSegments(value float64, width int) (filled, empty int) {
	if width <= 0 {
		return 0, 0
	}
	// Multiply before dividing so whole percentages of whole widths are exact.
	filled = int(math.Floor(ClampPercent(value) * float64(width) / 100))
	return filled, width - filled
}

// ProgressBar draws the unstyled two-segment bar.
func ProgressBar(value float64, width int, glyphs GlyphSet) string {
	filled, empty := ProgressSegments(value, width)
	return strings.Repeat(glyphs.ProgressFilled, filled) + strings.Repeat(glyphs.ProgressEmpty, empty)
}

// PercentLabel formats the clamped value padded to three cells plus "%".
// Fractions are floored like the bar, so only a full bar reads "100%".
func PercentLabel(value float64) string {
	return fmt.Sprintf("%3d%%", WholePercent(value))
}

// WholePercent is the clamped value floored to an integer.
func WholePercent(value float64) int {
	return int(math.Floor(ClampPercent(value)))
}

// Progress is a horizontal completion bar with an optional percent label.
type Progress struct {
	BaseComponent
	value       float64
	width       int
	tone        Tone
	showPercent bool
}

// NewProgress creates a Primary bar of the default width showing its percent.
func NewProgress(value float64) *Progress {
	return &Progress{
		BaseComponent: NewBaseComponent(),
		value:         value,
		width:         defaultProgressWidth,
		tone:          TonePrimary,
		showPercent:   true,
	}
}

// View renders the progress bar.
func (p *Progress) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the progress bar with the given theme context.
func (p *Progress) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	theme := ctx.Theme
	glyphs := theme.Glyphs

	filled, empty := ProgressSegments(p.value, p.width)
	bar := lipgloss.NewStyle().Foreground(theme.Tone(p.tone).Color).
		Render(strings.Repeat(glyphs.ProgressFilled, filled))
	bar += lipgloss.NewStyle().Foreground(theme.Tone(ToneNeutral).Color).
		Render(strings.Repeat(glyphs.ProgressEmpty, empty))

	if p.showPercent {
		bar += p.ComputeStyle(theme).Render(PercentLabel(p.value))
	}
	return bar
}

// WithValue sets the completion percentage; it is clamped when drawn.
func (p *Progress) WithValue(value float64) *Progress {
	p.value = value
	return p
}

// WithWidth sets the bar width in cells, excluding the label. Negative
// widths draw nothing.
func (p *Progress) WithWidth(width int) *Progress {
	p.width = max(width, 0)
	return p
}

// WithTone colours the filled segment.
func (p *Progress) WithTone(tone Tone) *Progress {
	p.tone = tone
	return p
}

// WithPercent shows or hides the percent label.
func (p *Progress) WithPercent(show bool) *Progress {
	p.showPercent = show
	return p
}

// WithAppliers styles the percent label.
func (p *Progress) WithAppliers(appliers ...StyleFunc) *Progress {
	p.AddAppliers(appliers...)
	return p
}

// Value returns the clamped completion percentage.
func (p *Progress) Value() float64 { return ClampPercent(p.value) }

// Width returns the bar width.
func (p *Progress) Width() int { return p.width }

// Tone returns the filled segment tone.
func (p *Progress) Tone() Tone { return p.tone }

// ShowsPercent reports whether the label is drawn.
func (p *Progress) ShowsPercent() bool { return p.showPercent }
