package ui

import (
	"fmt"
	"strings"

	"flight-radar.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar with the key map and the feed
// source on the right.
func RenderMenuBar(width int, source string, vision, guidelines bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct {
		key, label string
		on         *bool
	}{
		{"+/-", "zoom", nil},
		{"[/]", "size", nil},
		{"V", "ision", &vision},
		{"G", "uides", &guidelines},
		{"Q", "uit", nil},
	}

	var menu strings.Builder
	for _, k := range keys {
		label := StyleMenuLabel.Render(k.label)
		if k.on != nil && !*k.on {
			label = StyleToggleOff.Render(k.label)
		}
		menu.WriteString("  " + StyleMenuKey.Render("["+k.key+"]") + label)
	}

	left := StyleMenuKey.Render(title) + menu.String()
	right := StyleMenuLabel.Render("Feed: "+source) + " "

	// the bar's own padding takes two columns
	gap := max(width-2-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
