// Package config provides configuration loading and management for microsim.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"microsim/internal/models"
	"microsim/pkg/detector"
	"microsim/pkg/optics"
)

// ErrInvalidExposure is returned when the exposure time is negative
var ErrInvalidExposure = errors.New("invalid exposure")

// Config represents the application configuration loaded from YAML
type Config struct {
	// Optics describes the objective and the light it collects
	Optics struct {
		// Objective selects a lens from the objective table
		Objective optics.Objective `yaml:"objective"`

		// NumericalAperture overrides the objective when set together with Magnification
		NumericalAperture float64 `yaml:"numericalAperture,omitempty"`

		// Magnification overrides the objective when set together with NumericalAperture
		Magnification float64 `yaml:"magnification,omitempty"`

		// Wavelength of the emitted light in meters
		Wavelength float64 `yaml:"wavelength"`
	} `yaml:"optics"`

	// Detector describes the camera
	Detector struct {
		// PixelSize is the pixel pitch in meters
		PixelSize float64 `yaml:"pixelSize"`

		// SensorSize is the sensor extent in pixels
		SensorSize models.FieldOfView `yaml:"sensorSize"`

		// ReadNoise in electrons RMS
		ReadNoise float64 `yaml:"readNoise"`

		// DarkCurrent in electrons per pixel per second
		DarkCurrent float64 `yaml:"darkCurrent"`
	} `yaml:"detector"`

	// Exposure is the camera exposure time in seconds
	Exposure float64 `yaml:"exposure"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Optics.Objective = optics.Blue
	cfg.Optics.Wavelength = 500e-9

	// Sony ICX285 class CCD
	cfg.Detector.PixelSize = 6.9e-6
	cfg.Detector.SensorSize = models.FieldOfView{Width: 728, Height: 544}
	cfg.Detector.ReadNoise = 15.0
	cfg.Detector.DarkCurrent = 350.0

	cfg.Exposure = 100e-6

	cfg.Output.Verbose = false

	return cfg
}

// UsesDirectOptics reports whether the objective is bypassed by explicit
// numerical aperture and magnification values.
func (c *Config) UsesDirectOptics() bool {
	return c.Optics.NumericalAperture != 0 || c.Optics.Magnification != 0
}

// OpticalModel resolves the optics section into a model. Explicit numerical
// aperture and magnification take precedence over the objective.
func (c *Config) OpticalModel() (*optics.Model, error) {
	if c.UsesDirectOptics() {
		m, err := optics.New(optics.Params{
			NumericalAperture: c.Optics.NumericalAperture,
			Magnification:     c.Optics.Magnification,
			Wavelength:        c.Optics.Wavelength,
			PixelSize:         c.Detector.PixelSize,
			FieldOfView:       c.Detector.SensorSize,
		})
		if err != nil {
			return nil, fmt.Errorf("error building optics from direct parameters: %w", err)
		}
		return m, nil
	}

	m, err := optics.FromObjective(c.Optics.Objective, c.Optics.Wavelength, c.Detector.PixelSize, c.Detector.SensorSize)
	if err != nil {
		return nil, fmt.Errorf("error building optics from objective %s: %w", c.Optics.Objective, err)
	}
	return m, nil
}

// Camera builds the camera model described by the detector section
func (c *Config) Camera() (*detector.Detector, error) {
	d, err := detector.New(detector.Params{
		PixelSize:   c.Detector.PixelSize,
		SensorSize:  c.Detector.SensorSize,
		ReadNoise:   c.Detector.ReadNoise,
		DarkCurrent: c.Detector.DarkCurrent,
	})
	if err != nil {
		return nil, fmt.Errorf("error building detector: %w", err)
	}
	return d, nil
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks every section by building the models they describe.
func (c *Config) Validate() error {
	if c.Exposure < 0 {
		return fmt.Errorf("%w: must not be negative, got %g", ErrInvalidExposure, c.Exposure)
	}
	if _, err := c.OpticalModel(); err != nil {
		return err
	}
	if _, err := c.Camera(); err != nil {
		return err
	}
	return nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
