// Package settings loads user preferences for the tuimorphic CLI from
// defaults, an optional config file, TUIMORPHIC_* environment variables and
// command-line flags, in increasing order of precedence.
package settings

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/components"
)

// EnvPrefix prefixes every environment override, e.g. TUIMORPHIC_THEME.
const EnvPrefix = "TUIMORPHIC"

// Settings is the resolved user configuration.
type Settings struct {
	Theme   string  `mapstructure:"theme"`
	Glyphs  string  `mapstructure:"glyphs"`
	NoColor bool    `mapstructure:"no_color"`
	Scene   string  `mapstructure:"scene"`
	Log     Log     `mapstructure:"log"`
	Preview Preview `mapstructure:"preview"`
}

// Log configures diagnostics. Logs never go to stdout.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
	Human bool   `mapstructure:"human"`
}

// Preview configures the interactive harness.
type Preview struct {
	Watch  bool `mapstructure:"watch"`
	Static bool `mapstructure:"static"`
}

// flagKeys maps CLI flag names to settings keys.
var flagKeys = map[string]string{
	"theme":     "theme",
	"glyphs":    "glyphs",
	"no-color":  "no_color",
	"log-level": "log.level",
	"log-file":  "log.file",
	"watch":     "preview.watch",
	"static":    "preview.static",
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tuimorphic", "config.yml")
}

// Load resolves settings. An explicit path must exist; the default path may
// be missing. flags may be nil; flags the user did not set do not override
// the file or environment.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault("theme", "default")
	v.SetDefault("glyphs", "unicode")
	v.SetDefault("no_color", false)
	v.SetDefault("scene", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.human", true)
	v.SetDefault("preview.watch", false)
	v.SetDefault("preview.static", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := stderrors.Is(err, fs.ErrNotExist) || stderrors.As(err, &notFound)
		if explicit || !missing {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// NO_COLOR is a cross-tool convention, honoured alongside our own key.
	if os.Getenv("NO_COLOR") != "" {
		s.NoColor = true
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the enumerated settings.
func (s *Settings) Validate() error {
	if _, err := components.ThemeByName(s.Theme); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if _, err := components.GlyphsByName(s.Glyphs); err != nil {
		return fmt.Errorf("glyphs: %w", err)
	}
	return nil
}

// ResolveTheme builds the component theme the settings describe.
func (s *Settings) ResolveTheme() (components.Theme, error) {
	theme, err := components.ThemeByName(s.Theme)
	if err != nil {
		return components.Theme{}, err
	}
	glyphs, err := components.GlyphsByName(s.Glyphs)
	if err != nil {
		return components.Theme{}, err
	}
	return theme.WithGlyphs(glyphs), nil
}
