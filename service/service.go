package service

import (
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/config"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/geode"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/steam"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/wine"
)

var MyService Services

type Services interface {
	Steam() *steam.Finder
	Geode() *geode.Client
	Installer() *Installer
}

// NewService wires the services from the loaded config. observer may be nil.
func NewService(observer Observer) Services {
	finder := steam.NewFinder(steam.DefaultRootCandidates(config.SteamInfo.RootList...))
	releases := geode.NewClient(config.ServerInfo.LoaderAPI, config.ServerInfo.ReleaseURL, config.APITimeout())

	return &store{
		steam: finder,
		geode: releases,
		installer: NewInstaller(finder, releases, wine.NewPatcher(), InstallerOptions{
			AppID:           config.AppInfo.AppID,
			DownloadTimeout: config.DownloadTimeout(),
			Observer:        observer,
		}),
	}
}

type store struct {
	steam     *steam.Finder
	geode     *geode.Client
	installer *Installer
}

func (c *store) Steam() *steam.Finder {
	return c.steam
}

func (c *store) Geode() *geode.Client {
	return c.geode
}

func (c *store) Installer() *Installer {
	return c.installer
}
