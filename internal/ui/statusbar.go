package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is what the bottom bar reports about the last frame.
type Status struct {
	Airships   int
	ClosePairs int
	Zoom       float64
	CellPx     float64 // pixels per kilometer
	Range      float64 // km
	Err        error
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, st Status) string {
	var state string
	switch {
	case st.Err != nil:
		state = StyleStatusError.Render("[ERROR]")
	case st.ClosePairs > 0:
		state = StyleStatusAlert.Render(fmt.Sprintf("[CLOSE x%d]", st.ClosePairs))
	default:
		state = StyleStatusLive.Render("[LIVE]")
	}

	info := fmt.Sprintf(" Airships: %d  Pairs: %d  Zoom: x%.2f  Cell: %.1fpx/km  Range: %.1fkm",
		st.Airships, st.ClosePairs, st.Zoom, st.CellPx, st.Range)
	if st.Err != nil {
		info += "  " + st.Err.Error()
	}

	content := state + StyleStatusBar.Foreground(ColorGreen).Render(info)
	gap := max(width-2-lipgloss.Width(content), 0)
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
