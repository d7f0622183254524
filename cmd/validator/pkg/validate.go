package pkg

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/model"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/keyvalues"
	"github.com/pkg/errors"
)

var ErrInstallDirMissing = errors.New("app manifest has no installdir")

// ValidateManifest checks the manifest at path strictly and returns its
// tolerant parse. App manifests must also name their install directory.
func ValidateManifest(path string) (*keyvalues.Tree, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if err := keyvalues.Validate(bytes.NewReader(content)); err != nil {
		return nil, errors.Wrap(err, path)
	}

	if isAppManifest(path) {
		var manifest model.AppManifest
		if err := keyvalues.Decode(bytes.NewReader(content), &manifest); err != nil {
			return nil, errors.Wrap(err, path)
		}

		if manifest.AppState.InstallDir == "" {
			return nil, errors.Wrap(ErrInstallDirMissing, path)
		}
	}

	return keyvalues.Parse(string(content)), nil
}

func isAppManifest(path string) bool {
	matched, _ := filepath.Match(fmt.Sprintf(common.AppManifestFileNameFormat, "*"), filepath.Base(path))
	return matched
}
