package steam

import (
	"path/filepath"

	"github.com/IceWhaleTech/CasaOS-Common/utils/file"
	"github.com/IceWhaleTech/CasaOS-Common/utils/logger"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func (f *Finder) libraryFolders(root string) []string {
	primary := filepath.Join(root, common.SteamAppsDirectoryName)
	folders := []string{primary}

	manifestPath := filepath.Join(primary, common.LibraryFoldersFileName)
	if file.Exists(manifestPath) {
		folders = append(folders, f.declaredLibraryFolders(manifestPath)...)
	}

	return lo.Uniq(lo.Map(folders, func(folder string, _ int) string { return normalize(folder) }))
}

// declaredLibraryFolders returns the steamapps directories listed in a
// libraryfolders.vdf that exist on disk, in manifest order.
func (f *Finder) declaredLibraryFolders(manifestPath string) []string {
	tree, err := f.manifest(manifestPath)
	if err != nil {
		logger.Error("failed to read library folders manifest", zap.Error(err), zap.String("path", manifestPath))
		return nil
	}

	folders := []string{}
	for _, key := range selectKeys(tree, anyOf(isLibraryPathKey, isLegacyPathKey)) {
		value, _ := tree.Get(key)
		if value == "" {
			continue
		}

		folder := filepath.Join(value, common.SteamAppsDirectoryName)
		if !file.Exists(folder) {
			logger.Info("skipping library folder that does not exist", zap.String("key", key), zap.String("path", folder))
			continue
		}

		folders = append(folders, folder)
	}

	return folders
}

func normalize(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
