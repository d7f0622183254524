package steam

import (
	"path/filepath"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/mitchellh/go-homedir"
	"github.com/samber/lo"
)

// RootCandidates lists where Steam may be installed, most specific first.
// extra entries are probed before the built in locations.
func RootCandidates(home string, extra ...string) []string {
	candidates := append([]string{}, extra...)

	if home != "" {
		candidates = append(candidates,
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".steam", "root"),
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", "data", "Steam"), // flatpak
		)
	}

	return append(candidates, "/usr/share/steam")
}

// DefaultRootCandidates is RootCandidates for the current user.
func DefaultRootCandidates(extra ...string) []string {
	home, err := homedir.Dir()
	if err != nil {
		home = ""
	}
	return RootCandidates(home, extra...)
}

// FindRoot returns the first candidate that holds a steamapps directory.
func FindRoot(candidates []string) (string, bool) {
	steamApps, ok := firstExisting(lo.Map(candidates, func(c string, _ int) string {
		return filepath.Join(c, common.SteamAppsDirectoryName)
	}))
	if !ok {
		return "", false
	}
	return filepath.Dir(steamApps), true
}
