package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneTableIsTotal(t *testing.T) {
	t.Parallel()

	for _, theme := range []Theme{DefaultTheme(), MonoTheme(), AmberTheme()} {
		for _, tone := range Tones() {
			style := theme.Tone(tone)
			assert.NotEmpty(t, style.Name, "%s/%s name", theme.Name, tone)
			assert.NotEmpty(t, style.Icon, "%s/%s icon", theme.Name, tone)
			assert.NotEmpty(t, style.Title, "%s/%s title", theme.Name, tone)
			assert.NotNil(t, style.Color, "%s/%s colour", theme.Name, tone)
		}
	}
}

func TestDefaultToneColours(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	for _, tone := range Tones() {
		color, ok := theme.Tone(tone).Color.(lipgloss.Color)
		require.True(t, ok, "tone %s", tone)
		assert.NotEmpty(t, string(color), "tone %s", tone)
	}

	assert.Equal(t, "red", theme.Tone(ToneError).Name)
	assert.Equal(t, "✗", theme.Tone(ToneError).Icon)
	assert.Equal(t, "green", theme.Tone(ToneSuccess).Name)
	assert.Equal(t, "✓", theme.Tone(ToneSuccess).Icon)
}

func TestToneOutOfRangeFallsBack(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, theme.Tone(ToneNeutral), theme.Tone(Tone(42)))
	assert.Equal(t, theme.Tone(ToneNeutral), theme.Tone(Tone(-1)))
	assert.Equal(t, "Tone(42)", Tone(42).String())
}

func TestParseTone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Tone
		err  bool
	}{
		{in: "success", want: ToneSuccess},
		{in: " Warning ", want: ToneWarning},
		{in: "danger", want: ToneError},
		{in: "", want: ToneNeutral},
		{in: "default", want: ToneNeutral},
		{in: "purple", err: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTone(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariantsResolveToStyledTones(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	check := func(name string, tone Tone) {
		style := theme.Tone(tone)
		assert.NotNil(t, style.Color, name)
		assert.NotEmpty(t, style.Icon, name)
	}

	for _, v := range BadgeVariants() {
		check("badge "+v.String(), v.Tone())
		assert.NotNil(t, theme.Variants.Get(v), "badge %s strategy", v)
	}
	for _, v := range ButtonVariants() {
		check("button "+v.String(), v.Tone())
		assert.NotNil(t, theme.Variants.Get(v), "button %s strategy", v)
	}
	for _, v := range AlertVariants() {
		check("alert "+v.String(), v.Tone())
		assert.NotNil(t, theme.Variants.Get(v), "alert %s strategy", v)
	}
	for _, s := range InputStates() {
		check("input "+s.String(), s.Tone())
	}
}

func TestVariantDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BadgeVariantDefault, NewBadge("x").Variant())
	assert.Equal(t, ToneNeutral, BadgeVariantDefault.Tone())
	assert.Equal(t, ButtonVariantPrimary, NewButton("x").Variant())
	assert.Equal(t, AlertVariantInfo, NewAlert("x").Variant())
	assert.Equal(t, InputStateDefault, NewInput().State())
}

func TestParseVariants(t *testing.T) {
	t.Parallel()

	badge, err := ParseBadgeVariant("SUCCESS")
	require.NoError(t, err)
	assert.Equal(t, BadgeVariantSuccess, badge)

	button, err := ParseButtonVariant("danger")
	require.NoError(t, err)
	assert.Equal(t, ButtonVariantError, button)

	alert, err := ParseAlertVariant("warning")
	require.NoError(t, err)
	assert.Equal(t, AlertVariantWarning, alert)

	_, err = ParseAlertVariant("primary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alert")

	assert.Equal(t, []string{"info", "success", "warning", "error"}, AlertVariantNames())
	assert.Len(t, BadgeVariantNames(), len(BadgeVariants()))
	assert.Len(t, ButtonVariantNames(), len(ButtonVariants()))
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames() {
		theme, err := ThemeByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, theme.Name)
		assert.NotNil(t, theme.Variants)
	}

	theme, err := ThemeByName("")
	require.NoError(t, err)
	assert.Equal(t, "default", theme.Name)

	_, err = ThemeByName("neon")
	require.Error(t, err)
}

func TestMonoThemeHasNoColour(t *testing.T) {
	t.Parallel()

	theme := MonoTheme()
	for _, tone := range Tones() {
		assert.Equal(t, lipgloss.NoColor{}, theme.Tone(tone).Color)
	}
}

func TestGlyphsByName(t *testing.T) {
	t.Parallel()

	g, err := GlyphsByName("ASCII")
	require.NoError(t, err)
	assert.Equal(t, "ascii", g.Name)
	assert.Equal(t, []string{"|", "/", "-", "\\"}, g.SpinnerFrames)

	g, err = GlyphsByName("")
	require.NoError(t, err)
	assert.Equal(t, []string{"◐", "◓", "◑", "◒"}, g.SpinnerFrames)

	_, err = GlyphsByName("emoji")
	require.Error(t, err)

	assert.Len(t, GlyphSet{}.frames(), 4)
}

func TestNormalizeFillsPartialTheme(t *testing.T) {
	t.Parallel()

	theme := Theme{Tones: ansiTones()}.Normalize()
	assert.Equal(t, "unicode", theme.Glyphs.Name)
	assert.NotNil(t, theme.Variants)
	assert.Equal(t, 2, PaddingValue(theme, SpacingSizeMedium))
}

func TestStyleModifiers(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	base := lipgloss.NewStyle()

	fg := Foreground(ToneError)(base, theme)
	assert.Equal(t, theme.Tone(ToneError).Color, fg.GetForeground())

	bg := Background(ToneInfo)(base, theme)
	assert.True(t, bg.GetReverse())

	padded := PaddingX(SpacingSizeSmall)(base, theme)
	assert.Equal(t, 1, padded.GetPaddingLeft())
	assert.Equal(t, 1, padded.GetPaddingRight())

	bordered := Border(BorderVariantRounded)(base, theme)
	assert.Equal(t, lipgloss.RoundedBorder(), bordered.GetBorderStyle())

	title := Typography(TypographyVariantTitle)(base, theme)
	assert.True(t, title.GetBold())
}
