package scene

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Widget kinds a scene may declare.
const (
	KindHeading    = "heading"
	KindText       = "text"
	KindBadge      = "badge"
	KindButton     = "button"
	KindCheckbox   = "checkbox"
	KindRadio      = "radio"
	KindRadioGroup = "radio-group"
	KindToggle     = "toggle"
	KindInput      = "input"
	KindProgress   = "progress"
	KindAlert      = "alert"
	KindCard       = "card"
	KindDivider    = "divider"
	KindSpinner    = "spinner"
	KindRow        = "row"
	KindColumn     = "column"
)

var kinds = []string{
	KindHeading, KindText, KindBadge, KindButton, KindCheckbox, KindRadio,
	KindRadioGroup, KindToggle, KindInput, KindProgress, KindAlert, KindCard,
	KindDivider, KindSpinner, KindRow, KindColumn,
}

// Kinds lists every widget kind in a stable order.
func Kinds() []string {
	out := make([]string, len(kinds))
	copy(out, kinds)
	return out
}

func isKind(kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Scene is a declarative component tree loaded from YAML or TOML.
type Scene struct {
	Title   string   `yaml:"title" toml:"title"`
	Theme   string   `yaml:"theme,omitempty" toml:"theme" validate:"omitempty,oneof=default mono amber"`
	Glyphs  string   `yaml:"glyphs,omitempty" toml:"glyphs" validate:"omitempty,oneof=unicode ascii"`
	Width   int      `yaml:"width,omitempty" toml:"width" validate:"gte=0"`
	Gap     int      `yaml:"gap,omitempty" toml:"gap" validate:"gte=0"`
	Widgets []Widget `yaml:"widgets" toml:"widgets" validate:"required,min=1,dive"`
}

// Widget declares a single component. Which fields apply depends on Kind;
// fields a kind does not use are ignored.
type Widget struct {
	Kind string `yaml:"kind" toml:"kind" validate:"required,widget_kind"`

	Text        string `yaml:"text,omitempty" toml:"text"`
	Label       string `yaml:"label,omitempty" toml:"label"`
	Title       string `yaml:"title,omitempty" toml:"title"`
	Subtitle    string `yaml:"subtitle,omitempty" toml:"subtitle"`
	Message     string `yaml:"message,omitempty" toml:"message"`
	Footer      string `yaml:"footer,omitempty" toml:"footer"`
	Icon        string `yaml:"icon,omitempty" toml:"icon"`
	Placeholder string `yaml:"placeholder,omitempty" toml:"placeholder"`
	Char        string `yaml:"char,omitempty" toml:"char"`

	Variant   string `yaml:"variant,omitempty" toml:"variant"`
	Tone      string `yaml:"tone,omitempty" toml:"tone"`
	Direction string `yaml:"direction,omitempty" toml:"direction" validate:"omitempty,oneof=horizontal vertical"`

	Value Scalar `yaml:"value,omitempty" toml:"value"`
	Level int    `yaml:"level,omitempty" toml:"level" validate:"omitempty,min=1,max=6"`
	Width int    `yaml:"width,omitempty" toml:"width" validate:"gte=0"`
	Gap   int    `yaml:"gap,omitempty" toml:"gap" validate:"gte=0"`

	Checked  bool  `yaml:"checked,omitempty" toml:"checked"`
	Selected bool  `yaml:"selected,omitempty" toml:"selected"`
	Focused  bool  `yaml:"focused,omitempty" toml:"focused"`
	Disabled bool  `yaml:"disabled,omitempty" toml:"disabled"`
	Invalid  bool  `yaml:"invalid,omitempty" toml:"invalid"`
	Percent  *bool `yaml:"percent,omitempty" toml:"percent"`

	Options       []string `yaml:"options,omitempty" toml:"options"`
	SelectedIndex *int     `yaml:"selected_index,omitempty" toml:"selected_index"`
	FocusedIndex  *int     `yaml:"focused_index,omitempty" toml:"focused_index"`

	Children []Widget `yaml:"children,omitempty" toml:"children" validate:"dive"`
}

// Scalar holds a value that may be written as a number or a string: input
// text and progress percentages share the "value" key.
type Scalar string

// UnmarshalYAML accepts any scalar node.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a scalar", node.Line)
	}
	*s = Scalar(node.Value)
	return nil
}

// UnmarshalTOML accepts strings, integers and floats.
func (s *Scalar) UnmarshalTOML(v any) error {
	switch value := v.(type) {
	case string:
		*s = Scalar(value)
	case int64:
		*s = Scalar(strconv.FormatInt(value, 10))
	case float64:
		*s = Scalar(strconv.FormatFloat(value, 'f', -1, 64))
	default:
		return fmt.Errorf("value must be a string or number, got %T", v)
	}
	return nil
}

// String returns the raw text.
func (s Scalar) String() string { return string(s) }

// Float parses the value as a number; an empty value is 0.
func (s Scalar) Float() (float64, error) {
	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(string(s)), "%"))
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
