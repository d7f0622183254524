package service

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/IceWhaleTech/CasaOS-Common/utils/file"
	"github.com/IceWhaleTech/CasaOS-Common/utils/logger"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/geode"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/steam"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/utils/downloadHelper"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/wine"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type InstallerOptions struct {
	// AppID is the Steam app the Steam flow installs into.
	AppID           string
	DownloadTimeout time.Duration
	Observer        Observer
}

// Installer downloads the Geode loader into a Geometry Dash directory and
// enables its xinput proxy dll in the Wine prefix running the game.
type Installer struct {
	finder   *steam.Finder
	releases *geode.Client
	patcher  *wine.Patcher
	options  InstallerOptions
}

func NewInstaller(finder *steam.Finder, releases *geode.Client, patcher *wine.Patcher, options InstallerOptions) *Installer {
	if options.AppID == "" {
		options.AppID = common.GeometryDashAppID
	}
	if options.DownloadTimeout <= 0 {
		options.DownloadTimeout = common.DefaultDownloadTimeout * time.Second
	}

	return &Installer{
		finder:   finder,
		releases: releases,
		patcher:  patcher,
		options:  options,
	}
}

// AppID is the Steam app id the Steam flow installs into.
func (i *Installer) AppID() string {
	return i.options.AppID
}

// InstallToSteam installs into the Steam copy of the game, using the Proton
// prefix Steam created for it. Nothing is written unless Steam, the game and
// its prefix are all found.
func (i *Installer) InstallToSteam(ctx context.Context) error {
	r := newRun(i.options.Observer, zap.String("flow", "steam"), zap.String("app_id", i.options.AppID))
	if err := r.advance(StateResolving); err != nil {
		return err
	}

	root, ok := i.finder.Root()
	if !ok {
		return r.fail(steam.ErrSteamRootNotFound, "")
	}
	logger.Info("steam root found", zap.String("path", root))

	info := i.finder.Resolve(i.options.AppID)
	if !info.Found() {
		return r.fail(errors.Wrapf(ErrGameNotFound, "app %s", i.options.AppID), "")
	}
	logger.Info("game found", zap.String("path", info.Installation.Dir), zap.String("library", info.Installation.Library))

	if info.ProtonPrefix == nil {
		return r.fail(errors.Wrapf(ErrProtonPrefixNotFound, "app %s", i.options.AppID), "")
	}
	logger.Info("proton prefix found", zap.String("path", *info.ProtonPrefix))

	return i.install(ctx, r, *info.ProtonPrefix, info.Installation.Dir)
}

// InstallToWine installs into gameDir and patches the registry of the Wine
// prefix at prefix. Both directories must already exist.
func (i *Installer) InstallToWine(ctx context.Context, prefix string, gameDir string) error {
	r := newRun(i.options.Observer, zap.String("flow", "wine"), zap.String("prefix", prefix), zap.String("game_dir", gameDir))
	if err := r.advance(StateResolving); err != nil {
		return err
	}

	return i.install(ctx, r, prefix, gameDir)
}

// InstallToDirectory downloads the latest release and extracts it into dir,
// creating dir if needed.
func (i *Installer) InstallToDirectory(ctx context.Context, dir string) error {
	r := newRun(i.options.Observer, zap.String("flow", "directory"), zap.String("dir", dir))
	if err := r.advance(StateResolving); err != nil {
		return err
	}

	if err := i.installFiles(ctx, r, dir); err != nil {
		return err
	}

	return r.advance(StateDone)
}

func (i *Installer) install(ctx context.Context, r *run, prefix string, gameDir string) error {
	if !file.Exists(prefix) {
		return r.fail(errors.Wrap(ErrPrefixNotFound, prefix), "")
	}

	if !file.Exists(gameDir) {
		return r.fail(errors.Wrap(ErrGameDirNotFound, gameDir), "")
	}

	if err := i.installFiles(ctx, r, gameDir); err != nil {
		return err
	}

	if err := r.advance(StatePatching); err != nil {
		return err
	}

	registry := filepath.Join(prefix, common.WineUserRegistryFileName)
	changed, err := i.patcher.PatchDllOverride(registry, common.WineDllOverridesSection, common.XInputDllName, common.DllOverrideNativeBuiltin)
	if err != nil {
		return r.fail(err, "registry patch")
	}
	logger.Info("wine registry checked", zap.String("path", registry), zap.Bool("changed", changed))

	return r.advance(StateDone)
}

// installFiles takes r from StateResolving to StateExtracting.
func (i *Installer) installFiles(ctx context.Context, r *run, dir string) error {
	url, err := i.releases.LatestDownloadURL(ctx)
	if err != nil {
		return r.fail(err, "release lookup")
	}

	if err := r.advance(StateDownloading); err != nil {
		return err
	}

	if err := file.IsNotExistMkDir(dir); err != nil {
		return r.fail(errors.Wrapf(err, "failed to create %s", dir), "download")
	}

	artifact := filepath.Join(dir, common.GeodeArtifactName)
	logger.Info("downloading geode", zap.String("url", url), zap.String("path", artifact))

	if err := downloadHelper.Download(ctx, url, artifact, i.options.DownloadTimeout); err != nil {
		return r.fail(err, "download")
	}

	defer func() {
		if err := os.Remove(artifact); err != nil && !os.IsNotExist(err) {
			logger.Error("failed to remove downloaded archive", zap.Error(err), zap.String("path", artifact))
		}
	}()

	if err := r.advance(StateExtracting); err != nil {
		return err
	}

	if err := downloadHelper.Extract(artifact, dir); err != nil {
		return r.fail(err, "extraction")
	}

	return nil
}
