package components

import (
	"fmt"
	"strings"
)

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSecondary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantError
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
)

// AlertVariant specifies the severity of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// InputState selects the input box style.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateInvalid
)

var (
	badgeTones = map[BadgeVariant]Tone{
		BadgeVariantDefault:   ToneNeutral,
		BadgeVariantPrimary:   TonePrimary,
		BadgeVariantSecondary: ToneSecondary,
		BadgeVariantSuccess:   ToneSuccess,
		BadgeVariantWarning:   ToneWarning,
		BadgeVariantError:     ToneError,
		BadgeVariantInfo:      ToneInfo,
	}
	badgeNames = map[BadgeVariant]string{
		BadgeVariantDefault:   "default",
		BadgeVariantPrimary:   "primary",
		BadgeVariantSecondary: "secondary",
		BadgeVariantSuccess:   "success",
		BadgeVariantWarning:   "warning",
		BadgeVariantError:     "error",
		BadgeVariantInfo:      "info",
	}

	buttonTones = map[ButtonVariant]Tone{
		ButtonVariantPrimary:   TonePrimary,
		ButtonVariantSecondary: ToneSecondary,
		ButtonVariantSuccess:   ToneSuccess,
		ButtonVariantError:     ToneError,
		ButtonVariantWarning:   ToneWarning,
		ButtonVariantInfo:      ToneInfo,
		ButtonVariantMuted:     ToneNeutral,
	}
	buttonNames = map[ButtonVariant]string{
		ButtonVariantPrimary:   "primary",
		ButtonVariantSecondary: "secondary",
		ButtonVariantSuccess:   "success",
		ButtonVariantError:     "error",
		ButtonVariantWarning:   "warning",
		ButtonVariantInfo:      "info",
		ButtonVariantMuted:     "muted",
	}

	alertTones = map[AlertVariant]Tone{
		AlertVariantInfo:    ToneInfo,
		AlertVariantSuccess: ToneSuccess,
		AlertVariantWarning: ToneWarning,
		AlertVariantError:   ToneError,
	}
	alertNames = map[AlertVariant]string{
		AlertVariantInfo:    "info",
		AlertVariantSuccess: "success",
		AlertVariantWarning: "warning",
		AlertVariantError:   "error",
	}

	inputTones = map[InputState]Tone{
		InputStateDefault: ToneNeutral,
		InputStateFocus:   TonePrimary,
		InputStateInvalid: ToneError,
	}
	inputNames = map[InputState]string{
		InputStateDefault: "default",
		InputStateFocus:   "focus",
		InputStateInvalid: "invalid",
	}
)

// Tone resolves the badge variant.
func (v BadgeVariant) Tone() Tone { return badgeTones[v] }

func (v BadgeVariant) String() string { return variantName(badgeNames, v) }

// BadgeVariants lists every badge variant.
func BadgeVariants() []BadgeVariant { return enumerate(BadgeVariantInfo) }

// ParseBadgeVariant resolves a badge variant by name.
func ParseBadgeVariant(name string) (BadgeVariant, error) {
	return parseVariant("badge", badgeNames, name)
}

// Tone resolves the button variant.
func (v ButtonVariant) Tone() Tone { return buttonTones[v] }

func (v ButtonVariant) String() string { return variantName(buttonNames, v) }

// ButtonVariants lists every button variant.
func ButtonVariants() []ButtonVariant { return enumerate(ButtonVariantMuted) }

// ParseButtonVariant resolves a button variant by name.
func ParseButtonVariant(name string) (ButtonVariant, error) {
	return parseVariant("button", buttonNames, name)
}

// Tone resolves the alert variant.
func (v AlertVariant) Tone() Tone { return alertTones[v] }

func (v AlertVariant) String() string { return variantName(alertNames, v) }

// AlertVariants lists every alert variant.
func AlertVariants() []AlertVariant { return enumerate(AlertVariantError) }

// ParseAlertVariant resolves an alert variant by name.
func ParseAlertVariant(name string) (AlertVariant, error) {
	return parseVariant("alert", alertNames, name)
}

// Tone resolves the input state.
func (s InputState) Tone() Tone { return inputTones[s] }

func (s InputState) String() string { return variantName(inputNames, s) }

// InputStates lists every input state.
func InputStates() []InputState { return enumerate(InputStateInvalid) }

func enumerate[V ~int](last V) []V {
	out := make([]V, 0, int(last)+1)
	for v := V(0); v <= last; v++ {
		out = append(out, v)
	}
	return out
}

func variantName[V ~int](names map[V]string, v V) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(v))
}

// variantNames returns the accepted names for a variant enum in declaration order.
func variantNames[V ~int](names map[V]string) []string {
	out := make([]string, len(names))
	for v, name := range names {
		out[int(v)] = name
	}
	return out
}

// BadgeVariantNames lists the names ParseBadgeVariant accepts.
func BadgeVariantNames() []string { return variantNames(badgeNames) }

// ButtonVariantNames lists the names ParseButtonVariant accepts.
func ButtonVariantNames() []string { return variantNames(buttonNames) }

// AlertVariantNames lists the names ParseAlertVariant accepts.
func AlertVariantNames() []string { return variantNames(alertNames) }

func parseVariant[V ~int](kind string, names map[V]string, name string) (V, error) {
	wanted := strings.ToLower(strings.TrimSpace(name))
	if wanted == "danger" {
		wanted = "error"
	}
	for v, candidate := range names {
		if candidate == wanted {
			return v, nil
		}
	}
	var zero V
	return zero, fmt.Errorf("unknown %s variant %q", kind, name)
}
