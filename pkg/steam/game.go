package steam

import (
	"fmt"
	"path/filepath"

	"github.com/IceWhaleTech/CasaOS-Common/utils/file"
	"github.com/IceWhaleTech/CasaOS-Common/utils/logger"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// AppManifestPath is where a library folder records an installed app.
func AppManifestPath(library, appID string) string {
	return filepath.Join(library, fmt.Sprintf(common.AppManifestFileNameFormat, appID))
}

// ProtonPrefixPath is where Proton keeps the Wine prefix of an app.
func ProtonPrefixPath(library, appID string) string {
	return filepath.Join(library, common.SteamCompatDataDirectory, appID, common.ProtonPrefixDirectoryName)
}

// FindByAppID returns the install directory of appID from the first library
// folder whose app manifest points at a directory that exists.
func (f *Finder) FindByAppID(appID string) *model.Installation {
	library, dir, ok := firstResolved(f.libraries, func(library string) (string, bool) {
		return f.installDir(library, appID)
	})
	if !ok {
		return nil
	}

	return &model.Installation{Dir: dir, Library: library}
}

func (f *Finder) installDir(library, appID string) (string, bool) {
	manifestPath := AppManifestPath(library, appID)
	if !file.Exists(manifestPath) {
		return "", false
	}

	tree, err := f.manifest(manifestPath)
	if err != nil {
		logger.Error("failed to read app manifest", zap.Error(err), zap.String("path", manifestPath))
		return "", false
	}

	installDir, ok := tree.Get(common.AppManifestInstallDirKey)
	if !ok || installDir == "" {
		logger.Info("app manifest has no install directory", zap.String("path", manifestPath))
		return "", false
	}

	return filepath.Join(library, common.SteamCommonDirectoryName, installDir), true
}

// FindProtonPrefix returns the Proton prefix of appID. The preferred library
// folders are checked first, then every library folder in discovery order,
// since the prefix does not have to live next to the game.
func (f *Finder) FindProtonPrefix(appID string, preferred ...string) (string, bool) {
	libraries := append(append([]string{}, preferred...), f.libraries...)

	return firstExisting(lo.Map(libraries, func(library string, _ int) string {
		return ProtonPrefixPath(library, appID)
	}))
}

// Resolve looks up both the install directory and the Proton prefix of
// appID. A missing prefix does not make the game not found.
func (f *Finder) Resolve(appID string) model.GameInfo {
	info := model.GameInfo{
		AppID:        appID,
		Installation: f.FindByAppID(appID),
	}

	var preferred []string
	if info.Found() {
		preferred = append(preferred, info.Installation.Library)
	}

	if prefix, ok := f.FindProtonPrefix(appID, preferred...); ok {
		info.ProtonPrefix = lo.ToPtr(prefix)
	}

	return info
}
