package ui

// RadarInner returns the content area of a radar panel of the given size:
// the border takes two columns and two rows, the legend one more row.
func RadarInner(width, height int) (cols, rows int) {
	return max(width-4, 5), max(height-3, 3)
}

// RenderRadarPanel wraps radar content with a styled border.
// The actual radar rendering is done externally to avoid import cycles.
func RenderRadarPanel(width, height int, radarContent, legend string) string {
	content := radarContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
