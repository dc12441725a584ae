package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the radar (or detail) panel and the airship list
// horizontally, with the menu bar on top and the status bar at the bottom.
func ComposeLayout(menuBar, mainPanel, airshipList, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, mainPanel, airshipList)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
