package scene

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/components"
	"github.com/alexisbeaulieu97/tuimorphic/pkg/errors"
)

func writeScene(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeScene(t, "demo.yml", `
title: Demo
theme: amber
widgets:
  - kind: heading
    text: Hello
  - kind: progress
    value: 45
    width: 20
  - kind: input
    label: Name
    value: Ada
`)

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Demo", sc.Title)
	assert.Equal(t, "amber", sc.Theme)
	require.Len(t, sc.Widgets, 3)
	assert.Equal(t, Scalar("45"), sc.Widgets[1].Value)
	assert.Equal(t, "Ada", sc.Widgets[2].Value.String())
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	path := writeScene(t, "demo.toml", `
title = "Demo"

[[widgets]]
kind = "progress"
value = 62.5
width = 10

[[widgets]]
kind = "badge"
text = "ok"
variant = "success"

[[widgets]]
kind = "row"
gap = 2

  [[widgets.children]]
  kind = "toggle"
  label = "Wifi"
  checked = true
`)

	sc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, sc.Widgets, 3)

	value, err := sc.Widgets[0].Value.Float()
	require.NoError(t, err)
	assert.Equal(t, 62.5, value)
	require.Len(t, sc.Widgets[2].Children, 1)
	assert.True(t, sc.Widgets[2].Children[0].Checked)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		var parseErr *errors.ParseError
		require.True(t, stderrors.As(err, &parseErr))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeScene(t, "scene.json", `{}`))
		var parseErr *errors.ParseError
		require.True(t, stderrors.As(err, &parseErr))
		assert.Contains(t, err.Error(), "unsupported scene format")
	})

	t.Run("malformed yaml reports line", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeScene(t, "bad.yaml", "title: Demo\nwidgets:\n  - kind: [heading\n"))
		var parseErr *errors.ParseError
		require.True(t, stderrors.As(err, &parseErr))
		assert.Greater(t, parseErr.Line, 0)
	})

	t.Run("unknown yaml field", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeScene(t, "typo.yaml", "widgets:\n  - kind: text\n    txt: hi\n"))
		var parseErr *errors.ParseError
		require.True(t, stderrors.As(err, &parseErr))
		assert.Equal(t, 3, parseErr.Line)
	})

	t.Run("malformed toml reports line", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeScene(t, "bad.toml", "title = \"Demo\"\n[[widgets]]\nkind = \n"))
		var parseErr *errors.ParseError
		require.True(t, stderrors.As(err, &parseErr))
		assert.Greater(t, parseErr.Line, 0)
	})

	t.Run("unknown toml key", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeScene(t, "typo.toml", "[[widgets]]\nkind = \"text\"\ntxt = \"hi\"\n"))
		var parseErr *errors.ParseError
		require.True(t, stderrors.As(err, &parseErr))
		assert.Contains(t, err.Error(), "widgets.txt")
	})

	t.Run("empty yaml", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeScene(t, "empty.yaml", ""))
		var parseErr *errors.ParseError
		require.True(t, stderrors.As(err, &parseErr))
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{name: "no widgets", yaml: "title: x\n", field: "widgets"},
		{name: "unknown kind", yaml: "widgets:\n  - kind: slider\n", field: "widgets[0].kind"},
		{name: "missing kind", yaml: "widgets:\n  - text: hi\n", field: "widgets[0].kind"},
		{name: "heading level", yaml: "widgets:\n  - kind: heading\n    text: x\n    level: 7\n", field: "widgets[0].level"},
		{name: "negative width", yaml: "widgets:\n  - kind: divider\n    width: -1\n", field: "widgets[0].width"},
		{name: "bad theme", yaml: "theme: neon\nwidgets:\n  - kind: divider\n", field: "theme"},
		{name: "badge variant", yaml: "widgets:\n  - kind: badge\n    text: x\n    variant: loud\n", field: "widgets[0].variant"},
		{name: "variant on checkbox", yaml: "widgets:\n  - kind: checkbox\n    label: x\n    variant: success\n", field: "widgets[0].variant"},
		{name: "alert primary", yaml: "widgets:\n  - kind: alert\n    variant: primary\n", field: "widgets[0].variant"},
		{name: "bad tone", yaml: "widgets:\n  - kind: text\n    text: x\n    tone: purple\n", field: "widgets[0].tone"},
		{name: "button without label", yaml: "widgets:\n  - kind: button\n", field: "widgets[0].label"},
		{name: "empty radio group", yaml: "widgets:\n  - kind: radio-group\n", field: "widgets[0].options"},
		{name: "progress not numeric", yaml: "widgets:\n  - kind: progress\n    value: lots\n", field: "widgets[0].value"},
		{name: "children on badge", yaml: "widgets:\n  - kind: badge\n    text: x\n    children:\n      - kind: text\n", field: "widgets[0].children"},
		{name: "nested", yaml: "widgets:\n  - kind: row\n    children:\n      - kind: badge\n        text: x\n        variant: nope\n", field: "widgets[0].children[0].variant"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse("test.yaml", []byte(tt.yaml), FormatYAML)
			require.Error(t, err)

			var validationErr *errors.ValidationError
			require.True(t, stderrors.As(err, &validationErr), "got %T: %v", err, err)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestProgressValueIsClampedNotRejected(t *testing.T) {
	t.Parallel()

	sc, err := Parse("p.yaml", []byte("widgets:\n  - kind: progress\n    value: 250\n"), FormatYAML)
	require.NoError(t, err)

	root, err := Build(sc)
	require.NoError(t, err)
	p, ok := root.Children()[0].(*components.Progress)
	require.True(t, ok)
	assert.Equal(t, 100.0, p.Value())
}

func TestBuild(t *testing.T) {
	t.Parallel()

	sc, err := Parse("b.yaml", []byte(`
gap: 2
widgets:
  - kind: badge
    text: ok
    variant: danger
  - kind: button
    label: Go
  - kind: alert
    message: careful
    variant: warning
  - kind: radio-group
    options: [a, b]
    selected_index: 1
    focused_index: 0
  - kind: row
    children:
      - kind: spinner
        label: busy
      - kind: toggle
        label: on
        checked: true
  - kind: card
    title: Box
    footer: foot
    children:
      - kind: text
        text: inside
`), FormatYAML)
	require.NoError(t, err)

	root, err := Build(sc)
	require.NoError(t, err)
	assert.Equal(t, 2, root.Gap())

	children := root.Children()
	require.Len(t, children, 6)

	badge := children[0].(*components.Badge)
	assert.Equal(t, components.BadgeVariantError, badge.Variant())

	button := children[1].(*components.Button)
	assert.Equal(t, components.ButtonVariantPrimary, button.Variant())

	alert := children[2].(*components.Alert)
	assert.Equal(t, components.AlertVariantWarning, alert.Variant())

	group := children[3].(*components.RadioGroup)
	assert.Equal(t, 1, group.Selected())
	assert.Equal(t, 0, group.Focused())

	row := children[4].(*components.Stack)
	assert.Equal(t, components.DirectionHorizontal, row.Direction())
	_, isSpinner := row.Children()[0].(*components.Spinner)
	assert.True(t, isSpinner)

	card := children[5].(*components.Card)
	assert.Equal(t, "Box", card.Title())
	assert.NotNil(t, card.Footer())
	assert.Len(t, card.Children(), 1)
}

func TestDefaultShowcase(t *testing.T) {
	t.Parallel()

	sc := Default()
	require.NotEmpty(t, sc.Widgets)

	root, err := Build(sc)
	require.NoError(t, err)

	out := ansi.Strip(root.View())
	assert.Contains(t, out, "Tuimorphic")
	assert.Contains(t, out, "[success]")
	assert.Contains(t, out, " 45%")
	assert.Contains(t, out, "✗ Error")
}

func TestKindsAndVariants(t *testing.T) {
	t.Parallel()

	assert.Len(t, Kinds(), 16)
	assert.Contains(t, Kinds(), KindRadioGroup)
	assert.Equal(t, components.AlertVariantNames(), Variants(KindAlert))
	assert.Nil(t, Variants(KindText))
}

func TestScalarFloat(t *testing.T) {
	t.Parallel()

	v, err := Scalar(" 45% ").Float()
	require.NoError(t, err)
	assert.Equal(t, 45.0, v)

	v, err = Scalar("").Float()
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = Scalar("abc").Float()
	require.Error(t, err)
}
