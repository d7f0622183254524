package model

type APPModel struct {
	LogPath     string
	LogSaveName string
	LogFileExt  string
	AppID       string
}

type ServerModel struct {
	LoaderAPI       string
	ReleaseURL      string
	APITimeout      int
	DownloadTimeout int
}

type SteamModel struct {
	RootList []string `ini:"root,,allowshadow"`
}
