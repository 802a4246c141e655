// Package optics models the light path of a widefield microscope: the
// objective, the emission wavelength and the camera sampling it.
package optics

import (
	"errors"
	"fmt"

	"microsim/internal/models"
)

// Rayleigh is the prefactor of the Rayleigh criterion for a circular aperture.
const Rayleigh = 0.61

// ErrInvalidParams is returned by New when a parameter is out of range
var ErrInvalidParams = errors.New("invalid optical parameters")

// Params holds the optical and detector parameters of a Model.
type Params struct {
	// NumericalAperture of the objective, dimensionless
	NumericalAperture float64

	// Magnification of the optical path from object to sensor
	Magnification float64

	// Wavelength of the emitted light in meters
	Wavelength float64

	// PixelSize is the physical camera pixel pitch in meters.
	// Zero means the camera is not known.
	PixelSize float64

	// FieldOfView is the sensor extent in pixels.
	FieldOfView models.FieldOfView
}

// Validate checks that the parameters describe a physical system.
func (p Params) Validate() error {
	if !(p.NumericalAperture > 0) {
		return fmt.Errorf("%w: numerical aperture must be positive, got %g", ErrInvalidParams, p.NumericalAperture)
	}
	if !(p.Wavelength > 0) {
		return fmt.Errorf("%w: wavelength must be positive, got %g", ErrInvalidParams, p.Wavelength)
	}
	if !(p.Magnification > 0) {
		return fmt.Errorf("%w: magnification must be positive, got %g", ErrInvalidParams, p.Magnification)
	}
	if p.PixelSize < 0 {
		return fmt.Errorf("%w: pixel size must not be negative, got %g", ErrInvalidParams, p.PixelSize)
	}
	if !p.FieldOfView.Valid() {
		return fmt.Errorf("%w: field of view must not be negative, got %dx%d",
			ErrInvalidParams, p.FieldOfView.Width, p.FieldOfView.Height)
	}
	return nil
}

// Model is an immutable optical system. Build one with New or FromObjective.
type Model struct {
	params Params
}

// New validates params and returns the corresponding Model.
func New(params Params) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Model{params: params}, nil
}

// NewUnchecked builds a Model without validation. A zero numerical aperture
// yields an infinite resolution rather than an error.
func NewUnchecked(params Params) *Model {
	return &Model{params: params}
}

// FromObjective resolves the objective's numerical aperture and magnification
// and builds a Model from them.
func FromObjective(obj Objective, wavelength, pixelSize float64, fov models.FieldOfView) (*Model, error) {
	lens, err := obj.Lens()
	if err != nil {
		return nil, err
	}
	return New(Params{
		NumericalAperture: lens.NumericalAperture,
		Magnification:     lens.Magnification,
		Wavelength:        wavelength,
		PixelSize:         pixelSize,
		FieldOfView:       fov,
	})
}

// Params returns a copy of the model parameters
func (m *Model) Params() Params {
	return m.params
}

// CalculateResolution returns the Rayleigh resolution in meters:
// the smallest distance at which two point sources can be told apart.
func (m *Model) CalculateResolution() float64 {
	return Rayleigh * m.params.Wavelength / m.params.NumericalAperture
}

// CalculateIdealPixelSize returns the largest camera pixel pitch, in meters,
// that still samples the magnified resolution at twice its frequency.
func (m *Model) CalculateIdealPixelSize() float64 {
	return m.CalculateResolution() * m.params.Magnification / 2.0
}

// CalculateFieldOfView returns the width and height, in meters, of the region
// of the sample imaged onto the sensor. Both are zero if the camera is unknown.
func (m *Model) CalculateFieldOfView() (width, height float64) {
	scale := m.params.PixelSize / m.params.Magnification
	return float64(m.params.FieldOfView.Width) * scale, float64(m.params.FieldOfView.Height) * scale
}

// IsNyquistSampled reports whether the camera pixel is no larger than the
// ideal pixel size.
func (m *Model) IsNyquistSampled() bool {
	if m.params.PixelSize == 0 {
		return false
	}
	return m.params.PixelSize <= m.CalculateIdealPixelSize()
}
