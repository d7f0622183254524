package common

const (
	GeodeInstallerVersion     = "0.1.0"
	GeodeInstallerServiceName = "geode-installer"

	// GeometryDashAppID is the Steam app id of Geometry Dash.
	GeometryDashAppID = "322170"

	GeodeLoaderAPI        = "https://api.geode-sdk.org/v1/loader/versions/latest"
	GeodeReleaseURLFormat = "https://github.com/geode-sdk/geode/releases/download/%[1]s/geode-%[1]s-win.zip"
	GeodeArtifactName     = "geode_win.zip"

	DefaultAPITimeout      = 30  // seconds
	DefaultDownloadTimeout = 300 // seconds

	SteamAppsDirectoryName     = "steamapps"
	SteamCommonDirectoryName   = "common"
	SteamCompatDataDirectory   = "compatdata"
	ProtonPrefixDirectoryName  = "pfx"
	LibraryFoldersFileName     = "libraryfolders.vdf"
	AppManifestFileNameFormat  = "appmanifest_%s.acf"
	AppManifestInstallDirKey   = "AppState.installdir"
	LibraryFoldersSectionName  = "libraryfolders"
	LibraryFolderPathFieldName = "path"

	WineUserRegistryFileName = "user.reg"
	WineDllOverridesSection  = `[Software\\Wine\\DllOverrides]`
	XInputDllName            = "xinput1_4"
	DllOverrideNativeBuiltin = "native,builtin"
)
