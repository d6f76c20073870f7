package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone is the semantic state every variant resolves to.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePrimary
	ToneSecondary
	ToneInfo
	ToneSuccess
	ToneWarning
	ToneError
)

const toneCount = int(ToneError) + 1

var toneNames = [toneCount]string{
	ToneNeutral:   "neutral",
	TonePrimary:   "primary",
	ToneSecondary: "secondary",
	ToneInfo:      "info",
	ToneSuccess:   "success",
	ToneWarning:   "warning",
	ToneError:     "error",
}

func (t Tone) String() string {
	if t < 0 || int(t) >= toneCount {
		return fmt.Sprintf("Tone(%d)", int(t))
	}
	return toneNames[t]
}

// Tones lists every tone in declaration order.
func Tones() []Tone {
	tones := make([]Tone, toneCount)
	for i := range tones {
		tones[i] = Tone(i)
	}
	return tones
}

// ParseTone resolves a tone by name; "danger" and "default" are accepted aliases.
func ParseTone(name string) (Tone, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "danger":
		return ToneError, nil
	case "default", "":
		return ToneNeutral, nil
	default:
		for i, candidate := range toneNames {
			if candidate == n {
				return Tone(i), nil
			}
		}
	}
	return ToneNeutral, fmt.Errorf("unknown tone %q", name)
}

// ToneStyle is the fixed colour/icon pair a tone resolves to.
type ToneStyle struct {
	// Name is the terminal colour name, also used as the markup modifier.
	Name  string
	Color lipgloss.TerminalColor
	Icon  string
	// Title is the default heading alerts use for this tone.
	Title string
}

// ToneTable maps every Tone to its style. Lookups never miss.
type ToneTable [toneCount]ToneStyle

// Style returns the style for t; out-of-range tones fall back to neutral.
func (tt ToneTable) Style(t Tone) ToneStyle {
	if t < 0 || int(t) >= toneCount {
		return tt[ToneNeutral]
	}
	return tt[t]
}

// ansiTones uses the terminal's own 16-colour palette so widgets follow the
// user's colour scheme.
func ansiTones() ToneTable {
	return ToneTable{
		ToneNeutral:   {Name: "gray", Color: lipgloss.Color("8"), Icon: "•", Title: "Note"},
		TonePrimary:   {Name: "blue", Color: lipgloss.Color("12"), Icon: "▸", Title: "Notice"},
		ToneSecondary: {Name: "magenta", Color: lipgloss.Color("13"), Icon: "◆", Title: "Notice"},
		ToneInfo:      {Name: "cyan", Color: lipgloss.Color("14"), Icon: "ℹ", Title: "Info"},
		ToneSuccess:   {Name: "green", Color: lipgloss.Color("10"), Icon: "✓", Title: "Success"},
		ToneWarning:   {Name: "yellow", Color: lipgloss.Color("11"), Icon: "⚠", Title: "Warning"},
		ToneError:     {Name: "red", Color: lipgloss.Color("9"), Icon: "✗", Title: "Error"},
	}
}

// recolored keeps names, icons and titles but paints every tone with one colour.
func (tt ToneTable) recolored(color lipgloss.TerminalColor) ToneTable {
	for i := range tt {
		tt[i].Color = color
	}
	return tt
}
