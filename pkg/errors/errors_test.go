package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("showcase.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "showcase.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: showcase.yaml:7: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.toml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.toml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("widgets[1].variant", "unknown badge variant \"loud\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "widgets[1].variant", validationErr.Field)
	require.Contains(t, err.Error(), "unknown badge variant")

	bare := NewValidationError("", "scene is nil", nil)
	require.Equal(t, "validation error: scene is nil", bare.Error())
}

func TestRenderErrorIncludesComponent(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unsupported component")
	err := NewRenderError("*main.custom", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "*main.custom", renderErr.Component)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[*main.custom]")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var renderErr *RenderError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, renderErr.Error())
	require.Nil(t, renderErr.Unwrap())
}
