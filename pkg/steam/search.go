package steam

import (
	"strings"

	"github.com/IceWhaleTech/CasaOS-Common/utils/file"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/keyvalues"
	"github.com/samber/lo"
)

// firstExisting returns the first candidate present on disk.
func firstExisting(candidates []string) (string, bool) {
	return lo.Find(candidates, file.Exists)
}

// firstResolved walks items in order and returns the first one whose
// resolved path is present on disk. resolve may decline an item by
// returning false.
func firstResolved[T any](items []T, resolve func(T) (string, bool)) (T, string, bool) {
	for _, item := range items {
		path, ok := resolve(item)
		if ok && file.Exists(path) {
			return item, path, true
		}
	}

	var zero T
	return zero, "", false
}

type keyPredicate func(key string) bool

func anyOf(predicates ...keyPredicate) keyPredicate {
	return func(key string) bool {
		return lo.ContainsBy(predicates, func(p keyPredicate) bool { return p(key) })
	}
}

// isLibraryPathKey matches libraryfolders.<index>.path.
func isLibraryPathKey(key string) bool {
	return strings.HasPrefix(key, common.LibraryFoldersSectionName+keyvalues.Separator) &&
		keyvalues.LocalName(key) == common.LibraryFolderPathFieldName
}

// isLegacyPathKey matches any <section>.path key, which is how older
// libraryfolders.vdf files (and hand written ones) list extra libraries.
// It will also pick up unrelated keys named path should a manifest ever
// carry them.
func isLegacyPathKey(key string) bool {
	return strings.Contains(key, keyvalues.Separator) &&
		keyvalues.LocalName(key) == common.LibraryFolderPathFieldName
}

func selectKeys(tree *keyvalues.Tree, match keyPredicate) []string {
	return lo.Filter(tree.Keys(), func(key string, _ int) bool { return match(key) })
}
