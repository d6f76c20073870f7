package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// BorderVariant names one of the theme's border shapes.
type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// InputStyles holds the box style for each input state.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Invalid lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
// Keys are typed variant values, so ButtonVariantPrimary and
// BadgeVariantPrimary never collide.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[interface{}]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable bundle of every table the components read.
// Modifiers return new themes rather than mutating shared ones.
type Theme struct {
	Name       string
	Tones      ToneTable
	Glyphs     GlyphSet
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// Tone returns the style for t.
func (t Theme) Tone(tone Tone) ToneStyle {
	return t.Tones.Style(tone)
}

// WithGlyphs returns a copy of the theme drawing with g.
func (t Theme) WithGlyphs(g GlyphSet) Theme {
	t.Glyphs = g
	return t
}

// Normalize fills in whatever a partially specified theme left empty.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Glyphs.Name == "" {
		t.Glyphs = UnicodeGlyphs()
	}
	if t.Variants == nil {
		t.Variants = newThemeVariants()
	}
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
	}
}

// DefaultTheme returns the theme that follows the terminal's ANSI palette.
func DefaultTheme() Theme {
	return buildTheme("default", ansiTones())
}

// MonoTheme paints every tone in the terminal's default foreground; icons
// and glyphs still carry the state.
func MonoTheme() Theme {
	return buildTheme("mono", ansiTones().recolored(lipgloss.NoColor{}))
}

// AmberTheme mimics a monochrome amber phosphor display, keeping red for errors.
func AmberTheme() Theme {
	tones := ansiTones().recolored(lipgloss.Color("#ffb000"))
	tones[ToneNeutral].Color = lipgloss.Color("#996a00")
	tones[ToneError].Color = lipgloss.Color("#ff5f1f")
	return buildTheme("amber", tones)
}

// ThemeNames lists the names ThemeByName accepts.
func ThemeNames() []string {
	return []string{"default", "mono", "amber"}
}

// ThemeByName resolves one of ThemeNames.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), nil
	case "mono":
		return MonoTheme(), nil
	case "amber":
		return AmberTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames(), ", "))
}

func buildTheme(name string, tones ToneTable) Theme {
	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(tones[ToneNeutral].Color).
			Padding(0, 1),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(tones[TonePrimary].Color).
			Padding(0, 1),
		Invalid: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(tones[ToneError].Color).
			Padding(0, 1),
	}

	theme := Theme{
		Name:    name,
		Tones:   tones,
		Glyphs:  UnicodeGlyphs(),
		Borders: borders,
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
		Typography: defaultTypography(tones),
		Input:      input,
		Variants:   newThemeVariants(),
	}

	return theme.Normalize()
}

func newThemeVariants() *VariantRegistry {
	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)
	registerAlertVariants(variants)
	return variants
}

// registerButtonVariants populates button variant strategies.
func registerButtonVariants(registry *VariantRegistry) {
	for _, variant := range ButtonVariants() {
		registry.Register(variant, NewCompositeStrategy(
			Foreground(variant.Tone()),
			Typography(TypographyVariantEmphasis),
		))
	}
}

// registerBadgeVariants populates badge variant strategies.
func registerBadgeVariants(registry *VariantRegistry) {
	for _, variant := range BadgeVariants() {
		registry.Register(variant, NewCompositeStrategy(
			Foreground(variant.Tone()),
			Typography(TypographyVariantEmphasis),
		))
	}
}

// registerAlertVariants populates alert variant strategies.
func registerAlertVariants(registry *VariantRegistry) {
	for _, variant := range AlertVariants() {
		registry.Register(variant, NewCompositeStrategy(
			Border(BorderVariantNormal),
			BorderTone(variant.Tone()),
			PaddingX(SpacingSizeSmall),
		))
	}
}

func defaultTypography(tones ToneTable) TypographyScale {
	base := lipgloss.NewStyle()

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(tones[TonePrimary].Color),
		Subtitle: base.Faint(true),
		Body:     base,
		Code:     base.Foreground(tones[ToneSecondary].Color),
		Emphasis: base.Bold(true),
		Muted:    base.Foreground(tones[ToneNeutral].Color),
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// InputStyle returns the input box style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return theme.Input.Focus
	case InputStateInvalid:
		return theme.Input.Invalid
	default:
		return theme.Input.Default
	}
}

// Foreground paints text in the tone's colour.
func Foreground(tone Tone) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Tone(tone).Color)
	}
}

// Background fills with the tone's colour and reverses the text so it stays
// legible whatever the terminal palette is.
func Background(tone Tone) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Tone(tone).Color).Reverse(true)
	}
}

// BorderTone colours every border edge with the tone's colour.
func BorderTone(tone Tone) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(theme.Tone(tone).Color)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, size))
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// CardBaseStyle is the applier bundle every card starts from.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Border(BorderVariantRounded),
		BorderTone(ToneNeutral),
		PaddingX(SpacingSizeSmall),
	}
}
