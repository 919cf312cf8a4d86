package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all camera rig and sandbox configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Rig      RigConfig      `yaml:"rig"`
	Boundary BoundaryConfig `yaml:"boundary"`
	Minimap  MinimapConfig  `yaml:"minimap"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
	// World units per screen pixel in the top-down sandbox view
	WorldScale float64 `yaml:"world_scale"`
}

type CameraConfig struct {
	FieldOfView float64 `yaml:"field_of_view"` // degrees, horizontal
	// AspectRatio overrides the window aspect when positive
	AspectRatio     float64 `yaml:"aspect_ratio"`
	ConstrainAspect bool    `yaml:"constrain_aspect"`
}

type RigConfig struct {
	MinimumZoomLength     float64 `yaml:"minimum_zoom_length"`
	MaximumZoomLength     float64 `yaml:"maximum_zoom_length"`
	ZoomSpeed             float64 `yaml:"zoom_speed"`
	ZoomCatchupSpeed      float64 `yaml:"zoom_catchup_speed"`
	MinimumMovementSpeed  float64 `yaml:"minimum_movement_speed"`
	MaximumMovementSpeed  float64 `yaml:"maximum_movement_speed"`
	RotationSpeed         float64 `yaml:"rotation_speed"` // degrees per turn step
	StartingPitch         float64 `yaml:"starting_pitch"` // degrees, negative looks down
	StartingYaw           float64 `yaml:"starting_yaw"`   // degrees
	EdgeScrollEnabled     bool    `yaml:"edge_scroll_enabled"`
	EdgeScrollThreshold   float64 `yaml:"edge_scroll_threshold"` // fraction of the viewport
	DragExtent            float64 `yaml:"drag_extent"`           // fraction of the viewport
	DynamicHeight         bool    `yaml:"dynamic_height"`
	GroundTraceLength     float64 `yaml:"ground_trace_length"`
	StartingX             float64 `yaml:"starting_x"`
	StartingY             float64 `yaml:"starting_y"`
	ProjectionFarDistance float64 `yaml:"projection_far_distance"`
}

type BoundaryConfig struct {
	Enabled               bool    `yaml:"enabled"`
	OriginX               float64 `yaml:"origin_x"`
	OriginY               float64 `yaml:"origin_y"`
	HalfExtentX           float64 `yaml:"half_extent_x"`
	HalfExtentY           float64 `yaml:"half_extent_y"`
	TransitionRatio       float64 `yaml:"transition_ratio"`
	EnableXAxisConstraint bool    `yaml:"enable_x_axis_constraint"`
	EnableYAxisConstraint bool    `yaml:"enable_y_axis_constraint"`
	CompensationStrength  float64 `yaml:"compensation_strength"`
}

type MinimapConfig struct {
	Size      int     `yaml:"size"`
	Margin    int     `yaml:"margin"`
	LineWidth float64 `yaml:"line_width"`
}

type TerrainConfig struct {
	Enabled    bool    `yaml:"enabled"`
	BaseHeight float64 `yaml:"base_height"`
	Amplitude  float64 `yaml:"amplitude"`
	Wavelength float64 `yaml:"wavelength"`
	Seed       int64   `yaml:"seed"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// DefaultConfig returns the shipped defaults. Loaded files are decoded on top of it.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			WindowTitle:  "RTS Camera Rig Sandbox",
			Resizable:    true,
			TPS:          60,
			WorldScale:   4,
		},
		Camera: CameraConfig{
			FieldOfView: 45,
		},
		Rig: RigConfig{
			MinimumZoomLength:     500,
			MaximumZoomLength:     5000,
			ZoomSpeed:             -200,
			ZoomCatchupSpeed:      4,
			MinimumMovementSpeed:  128,
			MaximumMovementSpeed:  1024,
			RotationSpeed:         45,
			StartingPitch:         -45,
			StartingYaw:           0,
			EdgeScrollEnabled:     true,
			EdgeScrollThreshold:   0.1,
			DragExtent:            0.6,
			DynamicHeight:         true,
			GroundTraceLength:     100000,
			ProjectionFarDistance: 100000,
		},
		Boundary: BoundaryConfig{
			Enabled:               true,
			HalfExtentX:           2000,
			HalfExtentY:           2000,
			TransitionRatio:       0.15,
			EnableXAxisConstraint: true,
			EnableYAxisConstraint: true,
			CompensationStrength:  0.5,
		},
		Minimap: MinimapConfig{
			Size:      200,
			Margin:    12,
			LineWidth: 1.5,
		},
		Terrain: TerrainConfig{
			Enabled:    true,
			Amplitude:  60,
			Wavelength: 900,
			Seed:       7,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

var GlobalConfig *Config

// LoadConfig loads the configuration from a yaml file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate reports suspicious values. Nothing is corrected; the caller decides
// whether to log or abort.
func (c *Config) Validate() []string {
	var warnings []string
	if c.Rig.MinimumZoomLength > c.Rig.MaximumZoomLength {
		warnings = append(warnings, fmt.Sprintf("zoom bounds inverted: min %.1f > max %.1f",
			c.Rig.MinimumZoomLength, c.Rig.MaximumZoomLength))
	}
	if c.Rig.ZoomCatchupSpeed < 0 {
		warnings = append(warnings, fmt.Sprintf("negative zoom catch-up speed %.2f", c.Rig.ZoomCatchupSpeed))
	}
	if c.Boundary.Enabled && (c.Boundary.HalfExtentX <= 0 || c.Boundary.HalfExtentY <= 0) {
		warnings = append(warnings, fmt.Sprintf("boundary half extents must be positive, got (%.1f, %.1f)",
			c.Boundary.HalfExtentX, c.Boundary.HalfExtentY))
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		warnings = append(warnings, fmt.Sprintf("field of view %.1f outside (0, 180)", c.Camera.FieldOfView))
	}
	return warnings
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetAspectRatio returns the configured override or the window aspect.
func (c *Config) GetAspectRatio() float64 {
	if c.Camera.AspectRatio > 0 {
		return c.Camera.AspectRatio
	}
	if c.Display.ScreenHeight <= 0 {
		return 0
	}
	return float64(c.Display.ScreenWidth) / float64(c.Display.ScreenHeight)
}

// GetFieldOfViewRadians converts the configured horizontal FOV
func (c *Config) GetFieldOfViewRadians() float64 {
	return c.Camera.FieldOfView * math.Pi / 180
}

func (c *Config) GetStartingPitchRadians() float64 {
	return c.Rig.StartingPitch * math.Pi / 180
}

func (c *Config) GetStartingYawRadians() float64 {
	return c.Rig.StartingYaw * math.Pi / 180
}

func (c *Config) GetRotationSpeedRadians() float64 {
	return c.Rig.RotationSpeed * math.Pi / 180
}
