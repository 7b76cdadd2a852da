// internal/config/config.go
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const (
	StrokeWidth   = 2.0
	HUDLineHeight = 18
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	TileColor        = color.RGBA{70, 100, 120, 220}
	HoverTileColor   = color.RGBA{255, 0, 0, 255}
	RouteColor       = color.RGBA{90, 130, 150, 220}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	UnitColor        = color.RGBA{0, 0, 255, 255}
	ProjectileColor  = color.RGBA{0, 0, 255, 255}
	AttackColor      = color.RGBA{255, 0, 0, 255}
	RecoverColor     = color.RGBA{50, 0, 0, 255}
	ReachColor       = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	CardOutlineColor = color.RGBA{240, 240, 240, 255}
	MazeColor        = color.RGBA{69, 69, 69, 255}
	StompColor       = color.RGBA{150, 150, 0, 255}
	ShootColor       = color.RGBA{0, 255, 0, 255}
)

// Config holds every tunable of a game session.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Timing    TimingConfig    `yaml:"timing"`
	Grid      GridConfig      `yaml:"grid"`
	Player    PlayerConfig    `yaml:"player"`
	Units     UnitsConfig     `yaml:"units"`
	Rounds    RoundsConfig    `yaml:"rounds"`
	Towers    TowersConfig    `yaml:"towers"`
	Hand      HandConfig      `yaml:"hand"`
	Game      GameConfig      `yaml:"game"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
	VisualFPS      int `yaml:"visual_fps"`
}

// GridConfig places the grid as fractions of the screen.
type GridConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type PlayerConfig struct {
	Health int `yaml:"health"`
	Gold   int `yaml:"gold"`
}

// UnitsConfig: health = base + per_round*round, speed = base*(round/divisor + 1).
type UnitsConfig struct {
	BaseHealth        int     `yaml:"base_health"`
	HealthPerRound    int     `yaml:"health_per_round"`
	BaseSpeed         float64 `yaml:"base_speed"`
	SpeedRoundDivisor float64 `yaml:"speed_round_divisor"`
	Gold              int     `yaml:"gold"`
	Size              float64 `yaml:"size"`
}

type RoundsConfig struct {
	Count                 int `yaml:"count"`
	UnitsPerRound         int `yaml:"units_per_round"`
	PrepBaseSeconds       int `yaml:"prep_base_seconds"`
	FirstRoundUnits       int `yaml:"first_round_units"`
	FirstRoundPrepSeconds int `yaml:"first_round_prep_seconds"`
	SpawnIntervalBase     int `yaml:"spawn_interval_base"`
	SpawnIntervalStep     int `yaml:"spawn_interval_step"`
	SpawnIntervalFloor    int `yaml:"spawn_interval_floor"`
	GoldBonus             int `yaml:"gold_bonus"`
}

type TowersConfig struct {
	Maze  TowerConfig `yaml:"maze"`
	Stomp TowerConfig `yaml:"stomp"`
	Shoot TowerConfig `yaml:"shoot"`
}

// TowerConfig holds the stats of one tower kind. Timings are in ticks.
type TowerConfig struct {
	Cost             int     `yaml:"cost"`
	UpgradeCost      int     `yaml:"upgrade_cost"`
	Damage           int     `yaml:"damage"`
	StartupTicks     int     `yaml:"startup_ticks"`
	ActiveTicks      int     `yaml:"active_ticks"`
	EndTicks         int     `yaml:"end_ticks"`
	ReloadTicks      int     `yaml:"reload_ticks"`
	Range            float64 `yaml:"range"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileDamage int     `yaml:"projectile_damage"`
	ProjectileSize   float64 `yaml:"projectile_size"`
	Size             float64 `yaml:"size"`
}

type HandConfig struct {
	Size int `yaml:"size"`
}

type GameConfig struct {
	RepathOnTowerChange bool `yaml:"repath_on_tower_change"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type TelemetryConfig struct {
	Dir string `yaml:"dir"`
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	TickDuration   time.Duration
	VisualDuration time.Duration
	LogLevel       slog.Level
}

// Load reads configuration from a YAML file over the embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	switch {
	case c.Timing.TicksPerSecond <= 0:
		return fmt.Errorf("config: timing.ticks_per_second must be positive")
	case c.Timing.VisualFPS <= 0:
		return fmt.Errorf("config: timing.visual_fps must be positive")
	case c.Grid.Rows <= 0 || c.Grid.Cols <= 0:
		return fmt.Errorf("config: grid.rows and grid.cols must be positive")
	case c.Rounds.SpawnIntervalFloor <= 0:
		return fmt.Errorf("config: rounds.spawn_interval_floor must be positive")
	case c.Rounds.Count < 0:
		return fmt.Errorf("config: rounds.count must not be negative")
	case c.Hand.Size < 0:
		return fmt.Errorf("config: hand.size must not be negative")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TickDuration = time.Second / time.Duration(c.Timing.TicksPerSecond)
	c.Derived.VisualDuration = time.Second / time.Duration(c.Timing.VisualFPS)

	switch strings.ToLower(c.Log.Level) {
	case "debug":
		c.Derived.LogLevel = slog.LevelDebug
	case "warn", "warning":
		c.Derived.LogLevel = slog.LevelWarn
	case "error":
		c.Derived.LogLevel = slog.LevelError
	default:
		c.Derived.LogLevel = slog.LevelInfo
	}
}

// PrepTicks converts a prep duration in seconds to ticks.
func (c *Config) PrepTicks(seconds int) int {
	return seconds * c.Timing.TicksPerSecond
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
