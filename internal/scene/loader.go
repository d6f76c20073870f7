package scene

import (
	"bytes"
	_ "embed"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tuimorphic/pkg/errors"
)

// Format is a scene file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DefaultName is the path reported for the built-in showcase scene.
const DefaultName = "showcase.yaml"

//go:embed showcase.yaml
var showcase []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFor picks the decoder from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported scene format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
}

// Load reads, decodes and validates the scene at path.
func Load(path string) (*Scene, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, errors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewParseError(path, 0, err)
	}

	return Parse(path, data, format)
}

// Default returns the built-in showcase scene.
func Default() *Scene {
	sc, err := Parse(DefaultName, showcase, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in scene is invalid: %v", err))
	}
	return sc
}

// Parse decodes data as format and validates the result. name is only used
// in error messages.
func Parse(name string, data []byte, format Format) (*Scene, error) {
	var (
		sc  Scene
		err error
	)

	switch format {
	case FormatYAML:
		err = decodeYAML(data, &sc)
	case FormatTOML:
		err = decodeTOML(data, &sc)
	default:
		err = fmt.Errorf("unsupported scene format %q", format)
	}
	if err != nil {
		return nil, errors.NewParseError(name, extractLine(err), err)
	}

	if err := Validate(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func decodeYAML(data []byte, sc *Scene) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(sc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return stderrors.New("scene is empty")
		}
		return err
	}
	return nil
}

func decodeTOML(data []byte, sc *Scene) error {
	meta, err := toml.Decode(string(data), sc)
	if err != nil {
		return err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	var tomlErr toml.ParseError
	if stderrors.As(err, &tomlErr) {
		return tomlErr.Position.Line
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
