package scene

import (
	"fmt"

	"github.com/alexisbeaulieu97/tuimorphic/internal/ui"
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/components"
	"github.com/alexisbeaulieu97/tuimorphic/pkg/errors"
)

// Build turns a validated scene into a vertical stack of components.
func Build(sc *Scene) (*components.Stack, error) {
	if sc == nil {
		return nil, errors.NewValidationError("scene", "scene is nil", nil)
	}

	children, err := buildAll(sc.Widgets, "widgets")
	if err != nil {
		return nil, err
	}
	return components.VStack(children...).WithGap(sc.Gap), nil
}

func buildAll(widgets []Widget, path string) ([]ui.Renderable, error) {
	out := make([]ui.Renderable, 0, len(widgets))
	for i := range widgets {
		node, err := buildWidget(&widgets[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func buildWidget(w *Widget, path string) (ui.Renderable, error) {
	tone, err := w.tone()
	if err != nil {
		return nil, errors.NewValidationError(path+".tone", err.Error(), err)
	}

	switch w.Kind {
	case KindHeading:
		h := components.NewHeading(w.Text).WithSubtitle(w.Subtitle)
		if w.Level > 0 {
			h.WithLevel(w.Level)
		}
		return h, nil

	case KindText:
		text := components.NewText(w.Text)
		if w.Tone != "" {
			text.WithTone(tone)
		}
		return text, nil

	case KindBadge:
		variant := components.BadgeVariantDefault
		if w.Variant != "" {
			if variant, err = components.ParseBadgeVariant(w.Variant); err != nil {
				return nil, errors.NewValidationError(path+".variant", err.Error(), err)
			}
		}
		return components.NewBadge(w.Text).WithVariant(variant), nil

	case KindButton:
		variant := components.ButtonVariantPrimary
		if w.Variant != "" {
			if variant, err = components.ParseButtonVariant(w.Variant); err != nil {
				return nil, errors.NewValidationError(path+".variant", err.Error(), err)
			}
		}
		return components.NewButton(w.Label).
			WithVariant(variant).
			WithFocused(w.Focused).
			WithDisabled(w.Disabled), nil

	case KindCheckbox:
		return components.NewCheckbox(w.Label).
			WithChecked(w.Checked).
			WithFocused(w.Focused).
			WithDisabled(w.Disabled), nil

	case KindRadio:
		return components.NewRadio(w.Label).
			WithSelected(w.Selected || w.Checked).
			WithFocused(w.Focused).
			WithDisabled(w.Disabled), nil

	case KindRadioGroup:
		group := components.NewRadioGroup(w.Options...)
		if w.SelectedIndex != nil {
			group.WithSelected(*w.SelectedIndex)
		}
		if w.FocusedIndex != nil {
			group.WithFocused(*w.FocusedIndex)
		}
		return group, nil

	case KindToggle:
		return components.NewToggle(w.Label).
			WithChecked(w.Checked).
			WithFocused(w.Focused).
			WithDisabled(w.Disabled), nil

	case KindInput:
		return components.NewInput().
			WithLabel(w.Label).
			WithValue(w.Value.String()).
			WithPlaceholder(w.Placeholder).
			WithWidth(w.Width).
			WithFocused(w.Focused).
			WithInvalid(w.Invalid), nil

	case KindProgress:
		value, err := w.Value.Float()
		if err != nil {
			return nil, errors.NewValidationError(path+".value", err.Error(), err)
		}
		p := components.NewProgress(value)
		if w.Width > 0 {
			p.WithWidth(w.Width)
		}
		if w.Tone != "" {
			p.WithTone(tone)
		}
		if w.Percent != nil {
			p.WithPercent(*w.Percent)
		}
		return p, nil

	case KindAlert:
		variant := components.AlertVariantInfo
		if w.Variant != "" {
			if variant, err = components.ParseAlertVariant(w.Variant); err != nil {
				return nil, errors.NewValidationError(path+".variant", err.Error(), err)
			}
		}
		message := w.Message
		if message == "" {
			message = w.Text
		}
		return components.NewAlert(message).
			WithVariant(variant).
			WithTitle(w.Title).
			WithIcon(w.Icon), nil

	case KindCard:
		children, err := buildAll(w.Children, path+".children")
		if err != nil {
			return nil, err
		}
		card := components.NewCard(children...).WithTitle(w.Title).WithGap(w.Gap)
		if w.Footer != "" {
			card.WithFooter(components.MutedText(w.Footer))
		}
		return card, nil

	case KindDivider:
		d := components.NewDivider().WithLabel(w.Label).WithWidth(w.Width).WithChar(w.Char)
		if w.Direction == "vertical" {
			d.WithDirection(components.DirectionVertical)
		}
		if w.Tone != "" {
			d.WithTone(tone)
		}
		return d, nil

	case KindSpinner:
		s := components.NewSpinner(w.Label)
		if w.Tone != "" {
			s.WithTone(tone)
		}
		return s, nil

	case KindRow, KindColumn:
		children, err := buildAll(w.Children, path+".children")
		if err != nil {
			return nil, err
		}
		if w.Kind == KindRow {
			return components.HStack(children...).WithGap(w.Gap), nil
		}
		return components.VStack(children...).WithGap(w.Gap), nil
	}

	return nil, errors.NewValidationError(path+".kind", fmt.Sprintf("unknown widget kind %q", w.Kind), nil)
}

func (w *Widget) tone() (components.Tone, error) {
	if w.Tone == "" {
		switch w.Kind {
		case KindProgress, KindSpinner:
			return components.TonePrimary, nil
		}
		return components.ToneNeutral, nil
	}
	return components.ParseTone(w.Tone)
}
