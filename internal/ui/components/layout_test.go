package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeading(t *testing.T) {
	t.Parallel()

	t.Run("level one is underlined", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Settings\n════════", plain(NewHeading("Settings").View()))
	})

	t.Run("level two has no rule", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Settings", plain(NewHeading("Settings").WithLevel(2).View()))
	})

	t.Run("subtitle below", func(t *testing.T) {
		t.Parallel()
		out := plain(NewHeading("Settings").WithLevel(3).WithSubtitle("account").View())
		assert.Equal(t, "Settings\naccount", out)
	})

	t.Run("level is clamped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1, NewHeading("x").WithLevel(0).Level())
		assert.Equal(t, 6, NewHeading("x").WithLevel(9).Level())
	})

	t.Run("ascii rule", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hi\n==", plain(NewHeading("Hi").ViewWithContext(asciiContext())))
	})
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		divider *Divider
		ctx     RenderContext
		want    int
	}{
		{name: "fallback", divider: NewDivider(), ctx: DefaultContext(), want: 40},
		{name: "parent", divider: NewDivider(), ctx: DefaultContext().WithParentWidth(12), want: 12},
		{name: "constraint beats parent", divider: NewDivider(), ctx: DefaultContext().WithParentWidth(12).WithConstraints(WithMaxWidth(8)), want: 8},
		{name: "explicit beats all", divider: NewDivider().WithWidth(5), ctx: DefaultContext().WithParentWidth(12).WithConstraints(WithMaxWidth(8)), want: 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := plain(tt.divider.ViewWithContext(tt.ctx))
			assert.Equal(t, strings.Repeat("─", tt.want), out)
		})
	}
}

func TestDividerVariants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "── Logs ────", plain(NewDivider().WithWidth(12).WithLabel("Logs").View()))
	assert.Equal(t, "│\n│\n│", plain(VerticalDivider().WithWidth(3).View()))
	assert.Equal(t, "****", plain(NewDivider().WithWidth(4).WithChar("*").View()))
	assert.Equal(t, "----", plain(NewDivider().WithWidth(4).ViewWithContext(asciiContext())))
}

func TestStackGap(t *testing.T) {
	t.Parallel()

	t.Run("vertical gap is blank rows", func(t *testing.T) {
		t.Parallel()
		for gap := 0; gap <= 3; gap++ {
			out := plain(VStack(NewText("a"), NewText("b")).WithGap(gap).View())
			assert.Equal(t, "a\n"+strings.Repeat("\n", gap)+"b", out, "gap %d", gap)
		}
	})

	t.Run("horizontal gap is columns", func(t *testing.T) {
		t.Parallel()
		out := plain(HStack(NewText("a"), NewText("b")).WithGap(2).View())
		assert.Equal(t, "a  b", out)
	})

	t.Run("negative gap clamps", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, VStack().WithGap(-4).Gap())
	})

	t.Run("nil children are skipped", func(t *testing.T) {
		t.Parallel()
		out := plain(VStack(NewText("a"), nil, NewText("b")).View())
		assert.Equal(t, "a\nb", out)
	})
}

func TestCard(t *testing.T) {
	t.Parallel()

	t.Run("rounded frame around title and body", func(t *testing.T) {
		t.Parallel()
		out := plain(NewCard(NewText("body")).WithTitle("Status").View())
		lines := strings.Split(out, "\n")
		require.GreaterOrEqual(t, len(lines), 4)
		assert.True(t, strings.HasPrefix(lines[0], "╭"))
		assert.Contains(t, out, "Status")
		assert.Contains(t, out, "body")
		assert.Less(t, strings.Index(out, "Status"), strings.Index(out, "body"))
	})

	t.Run("footer below divider", func(t *testing.T) {
		t.Parallel()
		card := NewCard(NewText("body")).WithFooter(NewText("footer"))
		out := plain(card.ViewWithContext(DefaultContext().WithParentWidth(30)))
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, ansi.StringWidth(line), 30, "line %q", line)
		}
		assert.Contains(t, out, "──────")
		assert.Less(t, strings.Index(out, "body"), strings.Index(out, "footer"))
		assert.NotNil(t, card.Footer())
	})
}

func TestTextTone(t *testing.T) {
	t.Parallel()

	text := NewText("hi").WithTone(ToneWarning)
	assert.Equal(t, "hi", plain(text.View()))
	assert.Equal(t, DefaultTheme().Tone(ToneWarning).Color, text.ComputeStyle(DefaultTheme()).GetForeground())
}
