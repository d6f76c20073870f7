package scene

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/components"
	"github.com/alexisbeaulieu97/tuimorphic/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("widget_kind", func(fl validator.FieldLevel) bool {
			return isKind(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Variants lists the variant names a kind accepts, nil when it has none.
func Variants(kind string) []string {
	switch kind {
	case KindBadge:
		return components.BadgeVariantNames()
	case KindButton:
		return components.ButtonVariantNames()
	case KindAlert:
		return components.AlertVariantNames()
	}
	return nil
}

// Validate performs schema checks and the per-kind checks struct tags
// cannot express.
func Validate(sc *Scene) error {
	if sc == nil {
		return errors.NewValidationError("scene", "scene is nil", nil)
	}

	if err := validatorInstance().Struct(sc); err != nil {
		return convertValidationError(err)
	}

	for i := range sc.Widgets {
		if err := validateWidget(&sc.Widgets[i], fmt.Sprintf("widgets[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateWidget(w *Widget, path string) error {
	if w.Variant != "" {
		if err := validateVariant(w.Kind, w.Variant); err != nil {
			return errors.NewValidationError(path+".variant", err.Error(), err)
		}
	}

	if w.Tone != "" {
		if _, err := components.ParseTone(w.Tone); err != nil {
			return errors.NewValidationError(path+".tone", err.Error(), err)
		}
	}

	switch w.Kind {
	case KindHeading, KindBadge:
		if strings.TrimSpace(w.Text) == "" {
			return errors.NewValidationError(path+".text", fmt.Sprintf("%s requires text", w.Kind), nil)
		}
	case KindButton, KindCheckbox, KindRadio, KindToggle:
		if strings.TrimSpace(w.Label) == "" {
			return errors.NewValidationError(path+".label", fmt.Sprintf("%s requires a label", w.Kind), nil)
		}
	case KindRadioGroup:
		if len(w.Options) == 0 {
			return errors.NewValidationError(path+".options", "radio-group requires at least one option", nil)
		}
	case KindProgress:
		if _, err := w.Value.Float(); err != nil {
			return errors.NewValidationError(path+".value", fmt.Sprintf("progress value %q is not a number", w.Value), err)
		}
	}

	if len(w.Children) > 0 && !AcceptsChildren(w.Kind) {
		return errors.NewValidationError(path+".children", fmt.Sprintf("%s cannot have children", w.Kind), nil)
	}
	for i := range w.Children {
		if err := validateWidget(&w.Children[i], fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func validateVariant(kind, variant string) error {
	var err error
	switch kind {
	case KindBadge:
		_, err = components.ParseBadgeVariant(variant)
	case KindButton:
		_, err = components.ParseButtonVariant(variant)
	case KindAlert:
		_, err = components.ParseAlertVariant(variant)
	default:
		err = fmt.Errorf("%s has no variants", kind)
	}
	return err
}

// AcceptsChildren reports whether kind is a container.
func AcceptsChildren(kind string) bool {
	return kind == KindRow || kind == KindColumn || kind == KindCard
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return errors.NewValidationError(field, msg, err)
	}

	return errors.NewValidationError("scene", err.Error(), err)
}

// yamlishFieldName turns "Scene.Widgets[0].Kind" into "widgets[0].kind".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
