package pkg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/cmd/validator/pkg"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/pkg/errors"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func write(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateAppManifest(t *testing.T) {
	tree, err := pkg.ValidateManifest(write(t, "appmanifest_322170.acf", common.SampleAppManifestACF))
	assert.NilError(t, err)

	installDir, ok := tree.Get(common.AppManifestInstallDirKey)
	assert.Assert(t, ok)
	assert.Equal(t, installDir, "Geometry Dash")
}

func TestValidateAppManifestWithoutInstallDir(t *testing.T) {
	_, err := pkg.ValidateManifest(write(t, "appmanifest_440.acf", `"AppState" { "appid" "440" }`))
	assert.Assert(t, errors.Is(err, pkg.ErrInstallDirMissing))
}

func TestValidateLibraryFolders(t *testing.T) {
	for _, content := range []string{common.SampleLibraryFoldersVDF, common.SampleLegacyLibraryFoldersVDF} {
		tree, err := pkg.ValidateManifest(write(t, common.LibraryFoldersFileName, content))
		assert.NilError(t, err)
		assert.Assert(t, tree.Len() > 0)
	}
}

func TestValidateMalformed(t *testing.T) {
	_, err := pkg.ValidateManifest(write(t, common.LibraryFoldersFileName, `"libraryfolders" { "0" { "path" "/mnt" }`))
	assert.Assert(t, is.ErrorContains(err, common.LibraryFoldersFileName))
}

func TestValidateMissingFile(t *testing.T) {
	_, err := pkg.ValidateManifest(filepath.Join(t.TempDir(), "missing.vdf"))
	assert.Assert(t, os.IsNotExist(errors.Cause(err)))
}
