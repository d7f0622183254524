package main

import (
	"fmt"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/service"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("25"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
)

var progressLabels = map[service.State]string{
	service.StateResolving:   "Looking up the latest Geode release",
	service.StateDownloading: "Downloading Geode",
	service.StateExtracting:  "Extracting Geode",
	service.StatePatching:    "Enabling the xinput override",
}

func printProgress(_, to service.State) {
	if label, ok := progressLabels[to]; ok {
		fmt.Println(progressStyle.Render(label + "..."))
	}
}
