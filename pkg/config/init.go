package config

import (
	"log"
	"time"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/model"
	"gopkg.in/ini.v1"
)

var (
	AppInfo = &model.APPModel{
		LogSaveName: common.GeodeInstallerServiceName,
		LogFileExt:  "log",
		AppID:       common.GeometryDashAppID,
	}

	ServerInfo = &model.ServerModel{
		LoaderAPI:       common.GeodeLoaderAPI,
		ReleaseURL:      common.GeodeReleaseURLFormat,
		APITimeout:      common.DefaultAPITimeout,
		DownloadTimeout: common.DefaultDownloadTimeout,
	}

	SteamInfo = &model.SteamModel{}

	Cfg            *ini.File
	ConfigFilePath string
)

// InitSetup loads the config file over the defaults above. A missing file
// leaves the defaults untouched.
func InitSetup(config string) {
	ConfigFilePath = GeodeInstallerConfigFilePath
	if len(config) > 0 {
		ConfigFilePath = config
	}

	var err error

	Cfg, err = ini.LoadSources(ini.LoadOptions{Loose: true, AllowShadows: true}, ConfigFilePath)
	if err != nil {
		panic(err)
	}

	mapTo("app", AppInfo)
	mapTo("server", ServerInfo)
	mapTo("steam", SteamInfo)
}

func APITimeout() time.Duration {
	return seconds(ServerInfo.APITimeout, common.DefaultAPITimeout)
}

func DownloadTimeout() time.Duration {
	return seconds(ServerInfo.DownloadTimeout, common.DefaultDownloadTimeout)
}

func seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}

func mapTo(section string, v interface{}) {
	err := Cfg.Section(section).MapTo(v)
	if err != nil {
		log.Fatalf("Cfg.MapTo %s err: %v", section, err)
	}
}
