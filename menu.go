package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/service"
)

var menuItems = []string{
	"1) Install to Steam",
	"2) Install to Wine",
	"0) Quit",
}

// runMenu asks which flow to run and runs it once. End of input quits.
func runMenu(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	fmt.Println(headerStyle.Render("Geode installer"))
	for _, item := range menuItems {
		fmt.Println(mutedStyle.Render(item))
	}

	for {
		choice, ok := prompt(scanner, "Choice")
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			return report(service.MyService.Installer().InstallToSteam(ctx))
		case "2":
			gameDir, _ := prompt(scanner, "Geometry Dash directory")
			prefix, _ := prompt(scanner, "Wine prefix")
			return report(service.MyService.Installer().InstallToWine(ctx, prefix, gameDir))
		case "0":
			return nil
		default:
			fmt.Println(warningStyle.Render("Unknown choice " + choice))
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(promptStyle.Render(label + ": "))
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
