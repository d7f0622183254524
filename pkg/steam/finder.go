package steam

import (
	"os"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/keyvalues"
	"github.com/bluele/gcache"
	"github.com/pkg/errors"
)

const manifestCacheSize = 64

// Finder locates Steam, its library folders and the apps installed in them.
// Root and library folders are discovered once, in NewFinder.
type Finder struct {
	root      string
	hasRoot   bool
	libraries []string
	manifests gcache.Cache
}

type manifestKey struct {
	path    string
	modTime int64
	size    int64
}

// NewFinder probes candidates (see RootCandidates) for a Steam root and
// enumerates its library folders.
func NewFinder(candidates []string) *Finder {
	f := &Finder{
		manifests: gcache.New(manifestCacheSize).LRU().Build(),
	}

	f.root, f.hasRoot = FindRoot(candidates)
	if f.hasRoot {
		f.libraries = f.libraryFolders(f.root)
	}

	return f
}

// Root returns the Steam root directory, if one was found.
func (f *Finder) Root() (string, bool) {
	return f.root, f.hasRoot
}

// LibraryFolders returns every steamapps directory known to Steam, the
// primary one first.
func (f *Finder) LibraryFolders() []string {
	return append([]string(nil), f.libraries...)
}

// manifest parses a manifest file, reusing the previous parse while the
// file is unchanged.
func (f *Finder) manifest(path string) (*keyvalues.Tree, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", path)
	}

	key := manifestKey{path: path, modTime: info.ModTime().UnixNano(), size: info.Size()}
	if cached, err := f.manifests.Get(key); err == nil {
		return cached.(*keyvalues.Tree), nil
	}

	tree, err := keyvalues.ParseFile(path)
	if err != nil {
		return nil, err
	}

	if err := f.manifests.Set(key, tree); err != nil {
		return nil, err
	}

	return tree, nil
}
