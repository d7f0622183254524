package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/IceWhaleTech/CasaOS-Common/utils/logger"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/config"
	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/service"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type Options struct {
	Config  string `short:"c" long:"config" description:"config file path"`
	Version func() `short:"v" long:"version" description:"print the version and exit"`
}

var options Options

func main() {
	options.Version = func() {
		fmt.Printf("v%s\n", common.GeodeInstallerVersion)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	parser := flags.NewParser(&options, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	addCommand(parser, "steam", "Install into the Steam copy of Geometry Dash", &steamCommand{ctx: ctx})
	addCommand(parser, "wine", "Install into a Wine prefix", &wineCommand{ctx: ctx})
	addCommand(parser, "locate", "Print where Steam and Geometry Dash were found", &locateCommand{})

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, failureStyle.Render(err.Error()))
		os.Exit(1)
	}

	if parser.Active != nil {
		return
	}

	setup()

	if err := runMenu(ctx, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, failureStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func addCommand(parser *flags.Parser, name, description string, command flags.Commander) {
	if _, err := parser.AddCommand(name, description, description, command); err != nil {
		panic(err)
	}
}

// setup loads the config, starts logging and wires the services.
func setup() {
	config.InitSetup(options.Config)

	if config.AppInfo.LogPath != "" {
		logger.LogInit(config.AppInfo.LogPath, config.AppInfo.LogSaveName, config.AppInfo.LogFileExt)
	} else {
		logger.LogInitConsoleOnly()
	}

	service.MyService = service.NewService(printProgress)

	logger.Info("geode installer started", zap.String("version", common.GeodeInstallerVersion), zap.String("config", config.ConfigFilePath))
}
