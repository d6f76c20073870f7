package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	defaultInputWidth = 24
	inputPrompt       = "> "
)

// Input is a single-line text field: an optional label over a bordered box
// holding the prompt, the value (or placeholder) and, when focused, a cursor.
type Input struct {
	BaseComponent
	label       string
	value       string
	placeholder string
	width       int
	focused     bool
	invalid     bool
}

// NewInput creates an empty, unfocused input.
func NewInput() *Input {
	return &Input{BaseComponent: NewBaseComponent()}
}

// View renders the input.
func (in *Input) View() string {
	return in.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the input with the given theme context.
func (in *Input) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	theme := ctx.Theme
	box := InputStyle(theme, in.State())
	if in.strategy != nil {
		box = in.strategy.Apply(box, theme)
	}

	width := in.width
	if width <= 0 {
		width = defaultInputWidth
	}

	cursor := ""
	if in.focused {
		cursor = lipgloss.NewStyle().Blink(true).Render(theme.Glyphs.Cursor)
	}
	// Keep prompt, cursor and at least one cell of text on a single row.
	width = max(width, runewidth.StringWidth(inputPrompt)+lipgloss.Width(cursor)+1)
	room := width - runewidth.StringWidth(inputPrompt) - lipgloss.Width(cursor)

	var body string
	if in.value == "" {
		body = TypographyStyle(theme, TypographyVariantMuted).Faint(true).
			Render(runewidth.Truncate(in.placeholder, room, theme.Glyphs.Ellipsis))
	} else {
		body = runewidth.Truncate(in.value, room, theme.Glyphs.Ellipsis)
	}

	prompt := lipgloss.NewStyle().Foreground(theme.Tone(in.State().Tone()).Color).Render(inputPrompt)
	field := box.Width(width + box.GetHorizontalPadding()).Render(prompt + body + cursor)

	if in.label == "" {
		return field
	}
	return lipgloss.JoinVertical(lipgloss.Left, TypographyStyle(theme, TypographyVariantEmphasis).Render(in.label), field)
}

// State derives the box state: invalid beats focus.
func (in *Input) State() InputState {
	switch {
	case in.invalid:
		return InputStateInvalid
	case in.focused:
		return InputStateFocus
	default:
		return InputStateDefault
	}
}

// WithLabel sets the line rendered above the box.
func (in *Input) WithLabel(label string) *Input {
	in.label = label
	return in
}

// WithValue sets the current text.
func (in *Input) WithValue(value string) *Input {
	in.value = value
	return in
}

// WithPlaceholder sets the faint text shown while the value is empty.
func (in *Input) WithPlaceholder(placeholder string) *Input {
	in.placeholder = placeholder
	return in
}

// WithWidth sets the content width in cells; 0 uses the default.
func (in *Input) WithWidth(width int) *Input {
	in.width = width
	return in
}

// WithFocused marks the input as holding focus.
func (in *Input) WithFocused(focused bool) *Input {
	in.focused = focused
	return in
}

// WithInvalid marks the value as rejected.
func (in *Input) WithInvalid(invalid bool) *Input {
	in.invalid = invalid
	return in
}

// WithAppliers applies theme-based style modifiers.
func (in *Input) WithAppliers(appliers ...StyleFunc) *Input {
	in.AddAppliers(appliers...)
	return in
}

// Label returns the input label.
func (in *Input) Label() string { return in.label }

// Value returns the input value.
func (in *Input) Value() string { return in.value }

// Placeholder returns the input placeholder.
func (in *Input) Placeholder() string { return in.placeholder }

// Width returns the configured content width, 0 for default.
func (in *Input) Width() int { return in.width }

// IsFocused reports the focus state.
func (in *Input) IsFocused() bool { return in.focused }
