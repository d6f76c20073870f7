package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func asciiContext() RenderContext {
	return DefaultContext().WithTheme(DefaultTheme().WithGlyphs(ASCIIGlyphs()))
}

func TestBadge(t *testing.T) {
	t.Parallel()

	for _, variant := range BadgeVariants() {
		out := NewBadge("ready").WithVariant(variant).View()
		assert.Equal(t, "[ready]", plain(out), "variant %s", variant)
	}

	assert.Equal(t, BadgeVariantSuccess, SuccessBadge("ok").Variant())
	assert.Equal(t, "ok", SuccessBadge("ok").Text())
}

func TestButton(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		button *Button
		want   string
	}{
		{name: "idle", button: NewButton("Save"), want: " [ Save ]"},
		{name: "focused", button: NewButton("Save").WithFocused(true), want: "›[ Save ]"},
		{name: "disabled hides focus", button: NewButton("Save").WithFocused(true).WithDisabled(true), want: " [ Save ]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, plain(tt.button.View()))
		})
	}

	b := NewButton("x").WithFocused(true).WithDisabled(true)
	assert.False(t, b.IsFocused())
	assert.True(t, b.IsDisabled())
	assert.True(t, b.computeStyle(DefaultTheme()).GetFaint())
	assert.True(t, NewButton("x").WithFocused(true).computeStyle(DefaultTheme()).GetReverse())
	assert.Equal(t, ButtonVariantError, ErrorButton("x").Variant())
}

func TestCheckbox(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  [ ] Sync", plain(NewCheckbox("Sync").View()))
	assert.Equal(t, "  [x] Sync", plain(NewCheckbox("Sync").WithChecked(true).View()))
	assert.Equal(t, "› [x] Sync", plain(NewCheckbox("Sync").WithChecked(true).WithFocused(true).View()))
	assert.Equal(t, "  [ ] Sync", plain(NewCheckbox("Sync").WithFocused(true).WithDisabled(true).View()))
	assert.Equal(t, "> [x] Sync", plain(NewCheckbox("Sync").WithChecked(true).WithFocused(true).ViewWithContext(asciiContext())))

	c := NewCheckbox("Sync").WithChecked(true)
	assert.True(t, c.IsChecked())
	assert.Equal(t, ToneSuccess, c.tone(ToneSuccess))
	assert.Equal(t, TonePrimary, c.WithFocused(true).tone(ToneSuccess))
	assert.Equal(t, ToneNeutral, NewCheckbox("").tone(ToneSuccess))
}

func TestRadio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  ( ) Small", plain(NewRadio("Small").View()))
	assert.Equal(t, "  (•) Small", plain(NewRadio("Small").WithSelected(true).View()))
	assert.Equal(t, "  (*) Small", plain(NewRadio("Small").WithSelected(true).ViewWithContext(asciiContext())))
}

func TestRadioGroup(t *testing.T) {
	t.Parallel()

	t.Run("one selected and one focused", func(t *testing.T) {
		t.Parallel()
		group := NewRadioGroup("Small", "Medium", "Large").WithSelected(1).WithFocused(2)
		want := strings.Join([]string{
			"  ( ) Small",
			"  (•) Medium",
			"› ( ) Large",
		}, "\n")
		assert.Equal(t, want, plain(group.View()))
		assert.Equal(t, 1, group.Selected())
	})

	t.Run("out of range selects nothing", func(t *testing.T) {
		t.Parallel()
		group := NewRadioGroup("a", "b").WithSelected(5).WithFocused(-3)
		assert.Equal(t, -1, group.Selected())
		assert.NotContains(t, plain(group.View()), "(•)")
		assert.NotContains(t, plain(group.View()), "›")
	})

	t.Run("empty group", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", plain(NewRadioGroup().View()))
	})
}

func TestToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  [●━━] OFF Wifi", plain(NewToggle("Wifi").View()))
	assert.Equal(t, "  [━━●] ON  Wifi", plain(NewToggle("Wifi").WithChecked(true).View()))
	assert.Equal(t, "  [--o] ON  Wifi", plain(NewToggle("Wifi").WithChecked(true).ViewWithContext(asciiContext())))

	assert.Equal(t, ToneSuccess, NewToggle("").WithChecked(true).StateTone())
	assert.Equal(t, ToneNeutral, NewToggle("").StateTone())
	assert.True(t, NewToggle("").WithChecked(true).IsOn())
}

func TestInput(t *testing.T) {
	t.Parallel()

	t.Run("placeholder when empty", func(t *testing.T) {
		t.Parallel()
		out := plain(NewInput().WithPlaceholder("your name").View())
		assert.Contains(t, out, "> your name")
		assert.Len(t, strings.Split(out, "\n"), 3, "bordered box is three rows")
	})

	t.Run("label above the box", func(t *testing.T) {
		t.Parallel()
		out := plain(NewInput().WithLabel("Name").WithValue("Ada").View())
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Name", lines[0])
		assert.Contains(t, lines[2], "> Ada")
	})

	t.Run("focused shows cursor", func(t *testing.T) {
		t.Parallel()
		out := plain(NewInput().WithValue("Ada").WithFocused(true).View())
		assert.Contains(t, out, "> Ada█")
		assert.Contains(t, out, "┏", "focused box uses the thick border")
	})

	t.Run("long value truncates with ellipsis", func(t *testing.T) {
		t.Parallel()
		out := plain(NewInput().WithWidth(10).WithValue("abcdefghijklmnop").View())
		assert.Contains(t, out, "> abcdefg…")
		assert.NotContains(t, out, "abcdefgh")
	})

	t.Run("tiny width stays on one row", func(t *testing.T) {
		t.Parallel()
		for _, focused := range []bool{false, true} {
			out := plain(NewInput().WithWidth(1).WithValue("Ada").WithFocused(focused).View())
			lines := strings.Split(out, "\n")
			require.Len(t, lines, 3, "focused=%v:\n%s", focused, out)
			if focused {
				assert.Contains(t, lines[1], "> …█")
			} else {
				assert.Contains(t, lines[1], "> …")
			}
		}
	})

	t.Run("invalid wins over focus", func(t *testing.T) {
		t.Parallel()
		in := NewInput().WithFocused(true).WithInvalid(true)
		assert.Equal(t, InputStateInvalid, in.State())
		assert.Equal(t, InputStateFocus, NewInput().WithFocused(true).State())
	})
}

func TestAlert(t *testing.T) {
	t.Parallel()

	t.Run("error defaults", func(t *testing.T) {
		t.Parallel()
		theme := DefaultTheme()
		alert := NewAlert("disk full").WithVariant(AlertVariantError)
		assert.Equal(t, "Error", alert.Title(theme))
		assert.Equal(t, "✗", alert.Icon(theme))

		out := plain(alert.View())
		assert.Contains(t, out, "✗ Error")
		assert.Contains(t, out, "disk full")
		assert.Contains(t, out, "┌", "alerts are boxed")
	})

	t.Run("defaults to info", func(t *testing.T) {
		t.Parallel()
		out := plain(NewAlert("heads up").View())
		assert.Contains(t, out, "ℹ Info")
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()
		out := plain(WarningAlert("careful").WithTitle("Careful").WithIcon("!").View())
		assert.Contains(t, out, "! Careful")
	})

	t.Run("fills parent width", func(t *testing.T) {
		t.Parallel()
		out := plain(SuccessAlert("done").ViewWithContext(DefaultContext().WithParentWidth(30)))
		for _, line := range strings.Split(out, "\n") {
			assert.Equal(t, 30, ansi.StringWidth(line), "line %q", line)
		}
	})

	t.Run("every variant has a title and icon", func(t *testing.T) {
		t.Parallel()
		theme := DefaultTheme()
		for _, v := range AlertVariants() {
			alert := NewAlert("").WithVariant(v)
			assert.NotEmpty(t, alert.Title(theme), "variant %s", v)
			assert.NotEmpty(t, alert.Icon(theme), "variant %s", v)
		}
	})
}
