package config

import "time"

const (
	// Radar display
	AspectRatio   = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	TargetFPS     = 30  // Target frames per second
	RenderWorkers = 4   // Goroutines projecting airships per frame

	// "1 km" scale bars, placed as a fraction of the display range
	ScaleBarHorizX = 0.8
	ScaleBarHorizY = -0.9
	ScaleBarVertX  = 0.7
	ScaleBarVertY  = -0.8
	ScaleText      = "1 km"

	// App
	AppName    = "FLIGHT-RADAR"
	AppVersion = "1.0"
)

// Defaults for Config. Distances are Cartesian kilometers.
const (
	DefaultRange         = 5.0 // km from center to the nearest panel edge
	DefaultRingCount     = 4
	DefaultRingLineWidth = 1.0 // pixels
	DefaultLookahead     = 5.0
	DefaultConeRadius    = 2.0
	DefaultConeHalfAngle = 30.0 // degrees
	DefaultSpriteScale   = 4.0
	DefaultZoom          = 1.0
	DefaultZoomMin       = 0.25
	DefaultZoomMax       = 8.0
	DefaultZoomStep      = 1.25
	DefaultProximity     = 1.5

	DefaultFeedTimeout  = 30 * time.Second // Drop airships not updated for this long
	DefaultFeedInterval = 200 * time.Millisecond
	DefaultEvictEvery   = 5 * time.Second
	DefaultDemoCount    = 6

	DefaultLogLevel = "info"
)
