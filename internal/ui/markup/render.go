// Package markup renders component trees as HTML fragments. Appearance is
// left to CSS through BEM class names ("tm-badge tm-badge--success");
// semantics are carried by native elements and ARIA attributes.
package markup

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alexisbeaulieu97/tuimorphic/internal/ui"
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/components"
	"github.com/alexisbeaulieu97/tuimorphic/pkg/errors"
)

// ErrUnsupported is wrapped by the RenderError returned for component types
// the renderer has no markup for.
var ErrUnsupported = stderrors.New("no markup for component")

// Renderer converts components to HTML. Glyphs and default alert titles
// come from its theme; colours do not, CSS owns those.
type Renderer struct {
	theme  components.Theme
	groups int
}

// NewRenderer creates a renderer using theme for glyphs and titles.
func NewRenderer(theme components.Theme) *Renderer {
	return &Renderer{theme: theme.Normalize()}
}

// Render converts node to HTML with the default theme.
func Render(node ui.Renderable) (template.HTML, error) {
	return NewRenderer(components.DefaultTheme()).Render(node)
}

// Page wraps the rendered node in a standalone HTML document.
func (r *Renderer) Page(title string, node ui.Renderable) (string, error) {
	body, err := r.Render(node)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "page", struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: body}); err != nil {
		return "", errors.NewRenderError("page", err)
	}
	return buf.String(), nil
}

// Render converts node and its descendants to HTML.
func (r *Renderer) Render(node ui.Renderable) (template.HTML, error) {
	switch n := node.(type) {
	case nil:
		return "", nil
	case *components.Text:
		return r.execute("text", map[string]any{
			"Class":   block("text"),
			"Content": n.Content(),
		})
	case *components.Heading:
		return r.execute("heading", map[string]any{
			"Class":    Classes(block("heading"), fmt.Sprintf("level-%d", n.Level())),
			"Level":    n.Level(),
			"Text":     n.Text(),
			"Subtitle": n.Subtitle(),
		})
	case *components.Divider:
		return r.divider(n)
	case *components.Badge:
		return r.execute("badge", map[string]any{
			"Class": Classes(block("badge"), n.Variant().String()),
			"Text":  n.Text(),
		})
	case *components.Button:
		return r.execute("button", map[string]any{
			"Class": Classes(block("button"),
				n.Variant().String(),
				When(n.IsFocused(), "focused"),
				When(n.IsDisabled(), "disabled"),
			),
			"Label":    n.Label(),
			"Disabled": n.IsDisabled(),
		})
	case *components.Checkbox:
		return r.checkbox(n)
	case *components.Radio:
		return r.radio(n, "")
	case *components.RadioGroup:
		return r.radioGroup(n)
	case *components.Toggle:
		return r.toggle(n)
	case *components.Input:
		return r.execute("input", map[string]any{
			"Class":       Classes(block("input"), n.State().String()),
			"Label":       n.Label(),
			"Value":       n.Value(),
			"Placeholder": n.Placeholder(),
			"Focused":     n.IsFocused(),
			"Invalid":     n.State() == components.InputStateInvalid,
		})
	case *components.Progress:
		return r.progress(n)
	case *components.Spinner:
		return r.spinner(n)
	case *components.Alert:
		return r.alert(n)
	case *components.Card:
		return r.card(n)
	case *components.Container:
		return r.stack(block("container"), "", 0, n.Children())
	case *components.Stack:
		direction := "vertical"
		if n.Direction() == components.DirectionHorizontal {
			direction = "horizontal"
		}
		return r.stack(block("stack"), direction, n.Gap(), n.Children())
	default:
		return "", errors.NewRenderError(fmt.Sprintf("%T", node), ErrUnsupported)
	}
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.NewRenderError(name, err)
	}
	// Output of html/template is already escaped.
	return template.HTML(buf.String()), nil
}

func (r *Renderer) renderAll(nodes []ui.Renderable) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(nodes))
	for _, node := range nodes {
		html, err := r.Render(node)
		if err != nil {
			return nil, err
		}
		if html != "" {
			out = append(out, html)
		}
	}
	return out, nil
}

func (r *Renderer) divider(d *components.Divider) (template.HTML, error) {
	orientation := "horizontal"
	if d.Direction() == components.DirectionVertical {
		orientation = "vertical"
	}
	return r.execute("divider", map[string]any{
		"Class":       Classes(block("divider"), orientation, When(d.Label() != "", "labelled")),
		"Label":       d.Label(),
		"Orientation": orientation,
	})
}

func (r *Renderer) checkbox(c *components.Checkbox) (template.HTML, error) {
	glyph := r.theme.Glyphs.CheckboxOff
	if c.IsChecked() {
		glyph = r.theme.Glyphs.CheckboxOn
	}
	return r.execute("checkbox", map[string]any{
		"Class": Classes(block("checkbox"),
			When(c.IsChecked(), "checked"),
			When(c.IsFocused(), "focused"),
			When(c.IsDisabled(), "disabled"),
		),
		"Label":    c.Label(),
		"Glyph":    glyph,
		"Checked":  c.IsChecked(),
		"Disabled": c.IsDisabled(),
	})
}

func (r *Renderer) radio(radio *components.Radio, name string) (template.HTML, error) {
	glyph := r.theme.Glyphs.RadioOff
	if radio.IsSelected() {
		glyph = r.theme.Glyphs.RadioOn
	}
	return r.execute("radio", map[string]any{
		"Class": Classes(block("radio"),
			When(radio.IsSelected(), "selected"),
			When(radio.IsFocused(), "focused"),
			When(radio.IsDisabled(), "disabled"),
		),
		"Name":     name,
		"Label":    radio.Label(),
		"Glyph":    glyph,
		"Selected": radio.IsSelected(),
		"Disabled": radio.IsDisabled(),
	})
}

// radioGroup names its inputs so a browser enforces the single selection.
func (r *Renderer) radioGroup(g *components.RadioGroup) (template.HTML, error) {
	r.groups++
	name := fmt.Sprintf("tm-radio-group-%d", r.groups)

	items := make([]template.HTML, 0, len(g.Options()))
	for i, option := range g.Options() {
		radio := components.NewRadio(option).
			WithSelected(i == g.Selected()).
			WithFocused(i == g.Focused())
		html, err := r.radio(radio, name)
		if err != nil {
			return "", err
		}
		items = append(items, html)
	}
	return r.execute("radio-group", map[string]any{
		"Class": block("radio-group"),
		"Items": items,
	})
}

func (r *Renderer) toggle(t *components.Toggle) (template.HTML, error) {
	glyph := r.theme.Glyphs.ToggleOff
	if t.IsOn() {
		glyph = r.theme.Glyphs.ToggleOn
	}
	return r.execute("toggle", map[string]any{
		"Class": Classes(block("toggle"),
			When(t.IsOn(), "on"),
			When(t.IsFocused(), "focused"),
			When(t.IsDisabled(), "disabled"),
		),
		"Label":    t.Label(),
		"Glyph":    glyph,
		"On":       t.IsOn(),
		"Disabled": t.IsDisabled(),
	})
}

func (r *Renderer) progress(p *components.Progress) (template.HTML, error) {
	filled, empty := components.ProgressSegments(p.Value(), p.Width())
	glyphs := r.theme.Glyphs
	return r.execute("progress", map[string]any{
		"Class":       Classes(block("progress"), p.Tone().String()),
		"Value":       components.WholePercent(p.Value()),
		"Filled":      strings.Repeat(glyphs.ProgressFilled, filled),
		"Empty":       strings.Repeat(glyphs.ProgressEmpty, empty),
		"ShowPercent": p.ShowsPercent(),
		"Label":       components.PercentLabel(p.Value()),
	})
}

func (r *Renderer) spinner(s *components.Spinner) (template.HTML, error) {
	frames := r.theme.Glyphs.SpinnerFrames
	glyph := ""
	if len(frames) > 0 {
		glyph = frames[s.Frame()%len(frames)]
	}
	return r.execute("spinner", map[string]any{
		"Class": Classes(block("spinner"), s.Tone().String(), When(s.IsActive(), "active")),
		"Glyph": glyph,
		"Label": s.Label(),
	})
}

func (r *Renderer) alert(a *components.Alert) (template.HTML, error) {
	role := "status"
	if tone := a.Variant().Tone(); tone == components.ToneError || tone == components.ToneWarning {
		role = "alert"
	}
	return r.execute("alert", map[string]any{
		"Class":   Classes(block("alert"), a.Variant().String()),
		"Role":    role,
		"Icon":    a.Icon(r.theme),
		"Title":   a.Title(r.theme),
		"Message": a.Message(),
	})
}

func (r *Renderer) card(c *components.Card) (template.HTML, error) {
	items, err := r.renderAll(c.Children())
	if err != nil {
		return "", err
	}
	footer, err := r.Render(c.Footer())
	if err != nil {
		return "", err
	}
	return r.execute("card", map[string]any{
		"Class":  block("card"),
		"Title":  c.Title(),
		"Items":  items,
		"Footer": footer,
	})
}

func (r *Renderer) stack(base, direction string, gap int, children []ui.Renderable) (template.HTML, error) {
	items, err := r.renderAll(children)
	if err != nil {
		return "", err
	}
	gapMod := ""
	if gap > 0 {
		gapMod = fmt.Sprintf("gap-%d", gap)
	}
	return r.execute("stack", map[string]any{
		"Class": Classes(base, direction, gapMod),
		"Items": items,
	})
}
