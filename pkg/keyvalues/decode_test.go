package keyvalues

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/goleak"
	"gotest.tools/v3/assert"
)

type appManifest struct {
	AppState struct {
		AppID      string `mapstructure:"appid"`
		InstallDir string `mapstructure:"installdir"`
	} `mapstructure:"AppState"`
}

func TestDecode(t *testing.T) {
	defer goleak.VerifyNone(t)

	text := `"AppState"
{
	"appid"		"322170"
	"installdir"		"Geometry Dash"
}`

	var manifest appManifest
	assert.NilError(t, Decode(strings.NewReader(text), &manifest))
	assert.Equal(t, manifest.AppState.AppID, "322170")
	assert.Equal(t, manifest.AppState.InstallDir, "Geometry Dash")
}

func TestValidate(t *testing.T) {
	defer goleak.VerifyNone(t)

	assert.NilError(t, Validate(strings.NewReader(libraryFoldersVDF)))
	assert.NilError(t, Validate(strings.NewReader(`"s" { "a" "" "b" { } }`)))
}

func TestValidateMalformed(t *testing.T) {
	defer goleak.VerifyNone(t)

	testCases := []struct {
		name    string
		text    string
		message string
	}{
		{"empty", "", "empty document"},
		{"top-level value", `"AppState" "oops"`, "outside of a section"},
		{"missing close brace", "\"s\"\n{\n\t\"a\" \"1\"\n", "line 4: 1 unclosed section(s)"},
		{"extra close brace", `"s" { "a" "1" } }`, "unexpected closing brace"},
		{"anonymous section", `{ "a" "1" }`, "section without a name"},
		{"unterminated value", `"s" { "a" "1`, "unterminated string"},
		{"key without value", `"s" { "lonely" }`, `key "lonely" has no value`},
		{"bare words", `junk "s" { "a" "1" }`, "unexpected character 'j'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(strings.NewReader(tc.text))
			assert.Assert(t, errors.Is(err, ErrMalformed))
			assert.ErrorContains(t, err, tc.message)
		})
	}
}
