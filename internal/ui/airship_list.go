package ui

import (
	"fmt"
	"strings"

	"flight-radar.klederson.com/internal/airship"
	"github.com/charmbracelet/lipgloss"
)

// Cursor row style: black text on bright green = unmissable highlight
var cursorRowSty = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#000000")).
	Background(ColorMatrixGreen).
	Bold(true)

const linesPerAirship = 4 // 3 content + 1 blank

// RenderAirshipList renders the scrollable airship list panel. Airships in
// closeIDs are flagged. The title stays fixed at the top; only the entries
// scroll, keeping the cursor visible.
func RenderAirshipList(ships []airship.Airship, closeIDs map[string]bool, width, height, cursorIndex int) string {
	innerW := max(width-4, 10)

	title := StylePanelTitle.Render(fmt.Sprintf("AIRSHIPS [%d]", len(ships)))
	separator := StyleAirshipDim.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator}

	innerH := max(height-2, len(headerLines)+1)
	space := innerH - len(headerLines)

	var lines []string
	if len(ships) == 0 {
		lines = append(lines, "", StyleHelp.Render(" No airships..."), StyleHelp.Render(" Waiting for feed"))
	} else {
		maxVisible := max(space/linesPerAirship, 1)
		viewStart := 0
		if cursorIndex >= maxVisible {
			viewStart = cursorIndex - maxVisible + 1
		}
		for i := viewStart; i < len(ships) && len(lines) < space; i++ {
			lines = append(lines, renderAirshipEntry(ships[i], innerW, i == cursorIndex, closeIDs[ships[i].ID])...)
		}
	}

	if len(lines) > space {
		lines = lines[:space]
	}
	for len(lines) < space {
		lines = append(lines, "")
	}

	all := append(headerLines, lines...)
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(all, "\n"))

	// lipgloss Height() only sets a minimum; it won't truncate overflow.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

func renderAirshipEntry(a airship.Airship, maxW int, isCursor, isClose bool) []string {
	cursor := "  "
	if isCursor {
		cursor = ">>"
	}
	tag := ""
	if isClose {
		tag = " [CLOSE]"
	}

	raw1 := truncRaw(fmt.Sprintf("%s %s%s", cursor, a.ID, tag), maxW)
	raw2 := truncRaw(fmt.Sprintf("     %+.2f, %+.2f km", a.Position.X, a.Position.Y), maxW)
	raw3 := truncRaw(fmt.Sprintf("     %03.0f° %-2s %3.0f km/h", float64(a.Heading.Normalize()), a.Heading.Compass(), a.Speed), maxW)

	if isCursor {
		return []string{cursorRowSty.Render(raw1), cursorRowSty.Render(raw2), cursorRowSty.Render(raw3), ""}
	}

	idSty := StyleAirshipID
	if isClose {
		idSty = StyleAirshipClose
	}
	return []string{
		idSty.Render(raw1),
		StyleAirshipDim.Render(raw2),
		StyleAirshipData.Render(raw3),
		"",
	}
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}
