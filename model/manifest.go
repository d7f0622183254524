package model

// LibraryFolders mirrors steamapps/libraryfolders.vdf.
type LibraryFolders struct {
	LibraryFolders map[string]LibraryFolder `mapstructure:"libraryfolders" yaml:"libraryfolders"`
}

type LibraryFolder struct {
	Path  string            `mapstructure:"path" yaml:"path"`
	Label string            `mapstructure:"label" yaml:"label,omitempty"`
	Apps  map[string]string `mapstructure:"apps" yaml:"apps,omitempty"`
}

// AppManifest mirrors steamapps/appmanifest_<appid>.acf.
type AppManifest struct {
	AppState struct {
		AppID      string `mapstructure:"appid" yaml:"appid"`
		Name       string `mapstructure:"name" yaml:"name"`
		InstallDir string `mapstructure:"installdir" yaml:"installdir"`
	} `mapstructure:"AppState" yaml:"AppState"`
}
