package main

import (
	"context"
	"fmt"
	"os"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/model"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/service"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type steamCommand struct {
	ctx context.Context
}

func (c *steamCommand) Execute(_ []string) error {
	setup()

	return report(service.MyService.Installer().InstallToSteam(c.ctx))
}

type wineCommand struct {
	ctx context.Context

	GameDir string `short:"g" long:"game-dir" required:"true" description:"Geometry Dash directory"`
	Prefix  string `short:"p" long:"prefix" required:"true" description:"Wine prefix directory"`
}

func (c *wineCommand) Execute(_ []string) error {
	setup()

	return report(service.MyService.Installer().InstallToWine(c.ctx, c.Prefix, c.GameDir))
}

// Location is what the locate command prints.
type Location struct {
	Root      string         `yaml:"root,omitempty"`
	Libraries []string       `yaml:"libraries"`
	Game      model.GameInfo `yaml:"game"`
}

type locateCommand struct{}

func (c *locateCommand) Execute(_ []string) error {
	setup()

	finder := service.MyService.Steam()

	var location Location
	location.Root, _ = finder.Root()
	location.Libraries = finder.LibraryFolders()
	location.Game = finder.Resolve(service.MyService.Installer().AppID())

	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer encoder.Close()

	return errors.Wrap(encoder.Encode(location), "failed to print location")
}

// report prints the single line outcome of an installation.
func report(err error) error {
	if err != nil {
		return errors.Wrap(err, "installation failed")
	}

	fmt.Println(successStyle.Render("Geode installed successfully"))
	return nil
}
