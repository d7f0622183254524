package main

import (
	"bytes"
	"testing"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/keyvalues"
	"github.com/pkg/errors"
	"gotest.tools/v3/assert"
)

func TestReport(t *testing.T) {
	var out, errOut bytes.Buffer
	r := &report{out: &out, errOut: &errOut}

	r.pass("appmanifest_322170.acf", keyvalues.Parse(`"AppState" { "appid" "322170" "installdir" "Geometry Dash" }`))
	assert.Assert(t, r.ok())
	assert.Equal(t, out.String(), "appmanifest_322170.acf: pass validate\n"+
		"\tAppState.appid = \"322170\"\n"+
		"\tAppState.installdir = \"Geometry Dash\"\n")

	r.fail(errors.New("libraryfolders.vdf: line 3: unexpected closing brace"))
	assert.Assert(t, !r.ok())
	assert.Equal(t, errOut.String(), "ERROR: libraryfolders.vdf: line 3: unexpected closing brace\n")
}
