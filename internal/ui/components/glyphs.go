package components

import (
	"fmt"
	"strings"
)

// GlyphSet is the table of single-character affordances widgets draw with.
type GlyphSet struct {
	Name string

	CheckboxOn  string
	CheckboxOff string
	RadioOn     string
	RadioOff    string
	ToggleOn    string
	ToggleOff   string

	ProgressFilled string
	ProgressEmpty  string

	SpinnerFrames []string

	Focus     string
	Cursor    string
	Ellipsis  string
	Rule      string
	RuleHeavy string
	RuleV     string
}

// UnicodeGlyphs is the default glyph table.
func UnicodeGlyphs() GlyphSet {
	return GlyphSet{
		Name:           "unicode",
		CheckboxOn:     "[x]",
		CheckboxOff:    "[ ]",
		RadioOn:        "(•)",
		RadioOff:       "( )",
		ToggleOn:       "[━━●]",
		ToggleOff:      "[●━━]",
		ProgressFilled: "█",
		ProgressEmpty:  "░",
		SpinnerFrames:  []string{"◐", "◓", "◑", "◒"},
		Focus:          "›",
		Cursor:         "█",
		Ellipsis:       "…",
		Rule:           "─",
		RuleHeavy:      "═",
		RuleV:          "│",
	}
}

// ASCIIGlyphs is for terminals without reliable Unicode rendering.
func ASCIIGlyphs() GlyphSet {
	return GlyphSet{
		Name:           "ascii",
		CheckboxOn:     "[x]",
		CheckboxOff:    "[ ]",
		RadioOn:        "(*)",
		RadioOff:       "( )",
		ToggleOn:       "[--o]",
		ToggleOff:      "[o--]",
		ProgressFilled: "#",
		ProgressEmpty:  "-",
		SpinnerFrames:  []string{"|", "/", "-", "\\"},
		Focus:          ">",
		Cursor:         "_",
		Ellipsis:       "~",
		Rule:           "-",
		RuleHeavy:      "=",
		RuleV:          "|",
	}
}

// GlyphsByName resolves "unicode" or "ascii".
func GlyphsByName(name string) (GlyphSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode":
		return UnicodeGlyphs(), nil
	case "ascii":
		return ASCIIGlyphs(), nil
	}
	return GlyphSet{}, fmt.Errorf("unknown glyph set %q", name)
}

// frames returns the spinner frames, falling back to the Unicode ones when a
// hand-built set left them empty.
func (g GlyphSet) frames() []string {
	if len(g.SpinnerFrames) == 0 {
		return UnicodeGlyphs().SpinnerFrames
	}
	return g.SpinnerFrames
}
