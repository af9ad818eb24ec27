// Package config loads runtime settings with viper
// Defaults come from the parameter package; a file and ARPG_* environment variables override them
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"

	"github.com/lixenwraith/arpg/parameter"
	"github.com/lixenwraith/arpg/system"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// MotionConfig is the speed law
type MotionConfig struct {
	Mode           string  `mapstructure:"mode"`
	CruiseSpeed    float32 `mapstructure:"cruise_speed"`
	EaseFactor     float32 `mapstructure:"ease_factor"`
	ArrivalEpsilon float32 `mapstructure:"arrival_epsilon"`
}

// CameraConfig holds the fixed follow offset
type CameraConfig struct {
	Offset []float32 `mapstructure:"offset"`
}

// EngineConfig controls the frame loop
type EngineConfig struct {
	FPS      int     `mapstructure:"fps"`
	MaxDelta float32 `mapstructure:"max_dt"`
}

// BridgeConfig enables the websocket bridge when Listen is set
type BridgeConfig struct {
	Listen string `mapstructure:"listen"`
}

// LogConfig selects level and optional rotating file
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// AudioConfig toggles audio cues
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the full runtime configuration
type Config struct {
	Motion MotionConfig `mapstructure:"motion"`
	Camera CameraConfig `mapstructure:"camera"`
	Engine EngineConfig `mapstructure:"engine"`
	Bridge BridgeConfig `mapstructure:"bridge"`
	Log    LogConfig    `mapstructure:"log"`
	Audio  AudioConfig  `mapstructure:"audio"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("motion.mode", parameter.MotionModeEased)
	v.SetDefault("motion.cruise_speed", parameter.CruiseSpeed)
	v.SetDefault("motion.ease_factor", parameter.EaseFactor)
	v.SetDefault("motion.arrival_epsilon", parameter.ArrivalEpsilon)

	v.SetDefault("camera.offset", []float32{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ})

	v.SetDefault("engine.fps", parameter.DefaultFPS)
	v.SetDefault("engine.max_dt", parameter.MaxDeltaTime)

	v.SetDefault("bridge.listen", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("audio.enabled", true)
}

// Load reads configuration from path (any format viper detects by extension)
// An empty path loads defaults and environment only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ARPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if _, err := system.ParseMotionMode(c.Motion.Mode); err != nil {
		return fmt.Errorf("%w: motion.mode: %v", ErrInvalidConfig, err)
	}
	if c.Motion.CruiseSpeed <= 0 {
		return fmt.Errorf("%w: motion.cruise_speed must be positive", ErrInvalidConfig)
	}
	if c.Motion.EaseFactor <= 0 {
		return fmt.Errorf("%w: motion.ease_factor must be positive", ErrInvalidConfig)
	}
	if c.Motion.ArrivalEpsilon <= 0 {
		return fmt.Errorf("%w: motion.arrival_epsilon must be positive", ErrInvalidConfig)
	}
	if len(c.Camera.Offset) != 3 {
		return fmt.Errorf("%w: camera.offset needs 3 components, got %d", ErrInvalidConfig, len(c.Camera.Offset))
	}
	if c.CameraOffset().Len() == 0 {
		return fmt.Errorf("%w: camera.offset must be non-zero", ErrInvalidConfig)
	}
	if c.Engine.FPS <= 0 {
		return fmt.Errorf("%w: engine.fps must be positive", ErrInvalidConfig)
	}
	if c.Engine.MaxDelta <= 0 {
		return fmt.Errorf("%w: engine.max_dt must be positive", ErrInvalidConfig)
	}
	return nil
}

// MotionParams converts the motion section for the motion system
func (c *Config) MotionParams() system.MotionParams {
	mode, _ := system.ParseMotionMode(c.Motion.Mode)
	return system.MotionParams{
		Mode:           mode,
		CruiseSpeed:    c.Motion.CruiseSpeed,
		EaseFactor:     c.Motion.EaseFactor,
		ArrivalEpsilon: c.Motion.ArrivalEpsilon,
	}
}

// CameraOffset returns the configured follow offset
func (c *Config) CameraOffset() mgl32.Vec3 {
	return mgl32.Vec3{c.Camera.Offset[0], c.Camera.Offset[1], c.Camera.Offset[2]}
}
