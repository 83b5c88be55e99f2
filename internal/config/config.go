// SPDX-License-Identifier: MIT
// Package config loads the spatialdemo settings from SPATIAL_* environment
// variables.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. SPATIAL_CAMERA_FOV.
const Prefix = "SPATIAL"

// ErrInvalid is returned by Validate for values outside their domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all demo configuration.
type Config struct {
	Frames    int     `envconfig:"FRAMES" default:"5"`
	Tolerance float32 `envconfig:"TOLERANCE" default:"1e-6"`
	Camera    CameraConfig
	Log       LogConfig
}

// CameraConfig holds the view and projection parameters.
type CameraConfig struct {
	FOV    float32 `envconfig:"FOV" default:"60"` // vertical, degrees
	Aspect float32 `envconfig:"ASPECT" default:"1.7777778"`
	Near   float32 `envconfig:"NEAR" default:"0.1"`
	Far    float32 `envconfig:"FAR" default:"100"`
	Height float32 `envconfig:"HEIGHT" default:"2"`
	Radius float32 `envconfig:"RADIUS" default:"6"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Frames:    5,
		Tolerance: 1e-6,
		Camera: CameraConfig{
			FOV:    60,
			Aspect: 1.7777778,
			Near:   0.1,
			Far:    100,
			Height: 2,
			Radius: 6,
		},
		Log: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Validate checks ranges that envconfig cannot express.
func (c *Config) Validate() error {
	switch {
	case c.Frames < 2:
		return fmt.Errorf("%w: SPATIAL_FRAMES=%d, need at least 2", ErrInvalid, c.Frames)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: SPATIAL_TOLERANCE=%g is negative", ErrInvalid, c.Tolerance)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: SPATIAL_CAMERA_FOV=%g outside (0, 180)", ErrInvalid, c.Camera.FOV)
	case c.Camera.Aspect <= 0:
		return fmt.Errorf("%w: SPATIAL_CAMERA_ASPECT=%g", ErrInvalid, c.Camera.Aspect)
	case c.Camera.Near < 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: need 0 <= near < far, got %g, %g", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.Radius <= 0:
		return fmt.Errorf("%w: SPATIAL_CAMERA_RADIUS=%g", ErrInvalid, c.Camera.Radius)
	}
	return nil
}
