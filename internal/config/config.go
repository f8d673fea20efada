package config

import "math"

const (
	WindowWidth  = 800
	WindowHeight = 600

	// PanelWidth is the control panel strip on the right edge; the
	// trail canvas spans the remaining width.
	PanelWidth  = 300
	CanvasWidth = WindowWidth - PanelWidth

	// Beam and spot rendering
	CoreRadius    = 2
	SpotsPerStep  = 10
	MaxSpots      = 4096
	BeamStiffness = 8.0
	BeamDamping   = 0.6

	// Slider geometry
	SliderWidth   = 150
	SliderHeight  = 15
	SliderSpacing = 25
	HandleWidth   = 10
	PanelPadding  = 20
	PanelTop      = 30

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 30

	// Per-channel parameter ranges
	FreqMin   = 0.1
	FreqMax   = 5.0
	AmpMin    = 10.0
	AmpMax    = 200.0
	OffsetMin = -150.0
	OffsetMax = 150.0
	PhaseMin  = 0.0
	PhaseMax  = 2 * math.Pi

	// Global parameter ranges
	SizeMin     = 2.0
	SizeMax     = 20.0
	LifetimeMin = 0.2
	LifetimeMax = 3.0
	PollRateMin = 1.0
	PollRateMax = 240.0
)

// Documented defaults: the reset button restores every one of these.
const (
	DefaultFreq     = 1.0
	DefaultAmp      = 75.0
	DefaultOffset   = 0.0
	DefaultPhase    = 0.0
	DefaultSize     = 20.0
	DefaultLifetime = 1.0
	DefaultPollRate = 60.0
)
