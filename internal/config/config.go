// Package config handles application configuration loading and management.
package config

import "strings"

// Config holds all settings.
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Scene    SceneConfig    `yaml:"scene" toml:"scene"`
	Assets   AssetsConfig   `yaml:"assets" toml:"assets"`
	Shaders  ShaderConfig   `yaml:"shaders" toml:"shaders"`
	Audio    AudioConfig    `yaml:"audio" toml:"audio"`
	Controls ControlsConfig `yaml:"controls" toml:"controls"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
}

// CameraConfig holds the orbit camera's start pose, tunables and lens.
// Theta is elevation in radians; phi is given in degrees for readability.
type CameraConfig struct {
	Radius       float32 `yaml:"radius" toml:"radius"`
	Theta        float32 `yaml:"theta" toml:"theta"`
	PhiDegrees   float32 `yaml:"phi_degrees" toml:"phi_degrees"`
	AngularSpeed float32 `yaml:"angular_speed" toml:"angular_speed"`
	PoleMargin   float32 `yaml:"pole_margin" toml:"pole_margin"`
	ZoomScale    float32 `yaml:"zoom_scale" toml:"zoom_scale"`
	MinRadius    float32 `yaml:"min_radius" toml:"min_radius"`
	FovDegrees   float32 `yaml:"fov_degrees" toml:"fov_degrees"`
	Near         float32 `yaml:"near" toml:"near"`
	Far          float32 `yaml:"far" toml:"far"`
}

// SceneConfig describes what is drawn.
type SceneConfig struct {
	OrbitSegments int          `yaml:"orbit_segments" toml:"orbit_segments"`
	OrbitColor    [3]float32   `yaml:"orbit_color" toml:"orbit_color"`
	Background    string       `yaml:"background" toml:"background"`
	StartPaused   bool         `yaml:"start_paused" toml:"start_paused"`
	Credit        CreditConfig `yaml:"credit" toml:"credit"`
	Bodies        []BodyConfig `yaml:"bodies" toml:"bodies"`
}

// CreditConfig places the static text line. The pen starts OffsetRight
// pixels left of the right window edge, Y pixels above the bottom.
type CreditConfig struct {
	Text        string     `yaml:"text" toml:"text"`
	Font        string     `yaml:"font" toml:"font"` // empty uses the built-in bitmap face
	FontSize    float64    `yaml:"font_size" toml:"font_size"`
	OffsetRight float32    `yaml:"offset_right" toml:"offset_right"`
	Y           float32    `yaml:"y" toml:"y"`
	Scale       float32    `yaml:"scale" toml:"scale"`
	Color       [3]float32 `yaml:"color" toml:"color"`
}

// BodyConfig describes one celestial body. OrbitRadius 0 means the body
// does not orbit.
type BodyConfig struct {
	Name          string  `yaml:"name" toml:"name"`
	Texture       string  `yaml:"texture" toml:"texture"`
	Radius        float32 `yaml:"radius" toml:"radius"`
	Sectors       int     `yaml:"sectors" toml:"sectors"`
	Stacks        int     `yaml:"stacks" toml:"stacks"`
	OrbitRadius   float32 `yaml:"orbit_radius" toml:"orbit_radius"`
	RotationSpeed float32 `yaml:"rotation_speed" toml:"rotation_speed"`
	OrbitSpeed    float32 `yaml:"orbit_speed" toml:"orbit_speed"`
}

// AssetsConfig holds asset search directories. Later entries win.
type AssetsConfig struct {
	SearchDirs []string `yaml:"search_dirs" toml:"search_dirs"`
}

// ShaderConfig holds shader override settings.
type ShaderConfig struct {
	Dir   string `yaml:"dir" toml:"dir"`     // files here replace embedded stages
	Watch bool   `yaml:"watch" toml:"watch"` // recompile on change
}

// AudioConfig holds soundtrack settings.
type AudioConfig struct {
	Music  string  `yaml:"music" toml:"music"`
	Volume float32 `yaml:"volume" toml:"volume"`
	Muted  bool    `yaml:"muted" toml:"muted"`
}

// ControlsConfig maps actions to SDL key names.
type ControlsConfig struct {
	AzimuthDecrease   string `yaml:"azimuth_decrease" toml:"azimuth_decrease"`
	AzimuthIncrease   string `yaml:"azimuth_increase" toml:"azimuth_increase"`
	ElevationIncrease string `yaml:"elevation_increase" toml:"elevation_increase"`
	ElevationDecrease string `yaml:"elevation_decrease" toml:"elevation_decrease"`
	TogglePause       string `yaml:"toggle_pause" toml:"toggle_pause"`
	Quit              string `yaml:"quit" toml:"quit"`
	Screenshot        string `yaml:"screenshot" toml:"screenshot"`
	Mute              string `yaml:"mute" toml:"mute"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config reproducing the stock solar system scene.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Solar System",
			Width:  1800,
			Height: 1400,
			VSync:  true,
		},
		Camera: CameraConfig{
			Radius:       300,
			Theta:        0,
			PhiDegrees:   90,
			AngularSpeed: 1,
			PoleMargin:   0.01,
			ZoomScale:    10,
			MinRadius:    50,
			FovDegrees:   45,
			Near:         0.1,
			Far:          1000,
		},
		Scene: SceneConfig{
			OrbitSegments: 100,
			OrbitColor:    [3]float32{0.6, 0.6, 0.6},
			Background:    "stars.jpg",
			Credit: CreditConfig{
				Text:        "Solar System",
				FontSize:    24,
				OffsetRight: 300,
				Y:           30,
				Scale:       1,
				Color:       [3]float32{1, 1, 1},
			},
			Bodies: DefaultBodies(),
		},
		Assets: AssetsConfig{
			SearchDirs: []string{"assets"},
		},
		Shaders: ShaderConfig{
			Dir:   "shaders",
			Watch: false,
		},
		Audio: AudioConfig{
			Volume: 0.7,
		},
		Controls: ControlsConfig{
			AzimuthDecrease:   "A",
			AzimuthIncrease:   "D",
			ElevationIncrease: "W",
			ElevationDecrease: "S",
			TogglePause:       "Space",
			Quit:              "Escape",
			Screenshot:        "F12",
			Mute:              "M",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultBodies returns the sun and the seven planets out to Uranus.
func DefaultBodies() []BodyConfig {
	planet := func(name string, radius, orbit, rot, speed float32) BodyConfig {
		return BodyConfig{
			Name:          name,
			Texture:       strings.ToLower(name) + ".jpg",
			Radius:        radius,
			Sectors:       36,
			Stacks:        18,
			OrbitRadius:   orbit,
			RotationSpeed: rot,
			OrbitSpeed:    speed,
		}
	}

	return []BodyConfig{
		{Name: "Sun", Texture: "sun.jpg", Radius: 25, Sectors: 48, Stacks: 24, RotationSpeed: 0.2},
		planet("Mercury", 2, 40, 0.02, 4.17),
		planet("Venus", 3, 60, 0, 1.61),
		planet("Earth", 3, 85, 1, 1),
		planet("Mars", 2.5, 110, 0.97, 0.53),
		planet("Jupiter", 7, 150, 2.4, 0.084),
		planet("Saturn", 6, 230, 2.27, 0.034),
		planet("Uranus", 4, 300, -1.39, 0.012),
	}
}
