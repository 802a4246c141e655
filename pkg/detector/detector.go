// Package detector describes the camera sensor behind the microscope.
package detector

import (
	"errors"
	"fmt"

	"microsim/internal/models"
)

// ErrInvalidParams is returned by New when a detector parameter is negative
var ErrInvalidParams = errors.New("invalid detector parameters")

// Params holds the camera characteristics.
type Params struct {
	// PixelSize is the pixel pitch in meters
	PixelSize float64

	// SensorSize is the number of pixels along each axis
	SensorSize models.FieldOfView

	// ReadNoise in electrons RMS per read
	ReadNoise float64

	// DarkCurrent in electrons per pixel per second
	DarkCurrent float64
}

// Detector is an immutable camera model
type Detector struct {
	params Params
}

// New validates params and returns a Detector.
func New(params Params) (*Detector, error) {
	switch {
	case params.PixelSize < 0:
		return nil, fmt.Errorf("%w: pixel size %g", ErrInvalidParams, params.PixelSize)
	case !params.SensorSize.Valid():
		return nil, fmt.Errorf("%w: sensor size %dx%d", ErrInvalidParams, params.SensorSize.Width, params.SensorSize.Height)
	case params.ReadNoise < 0:
		return nil, fmt.Errorf("%w: read noise %g", ErrInvalidParams, params.ReadNoise)
	case params.DarkCurrent < 0:
		return nil, fmt.Errorf("%w: dark current %g", ErrInvalidParams, params.DarkCurrent)
	}
	return &Detector{params: params}, nil
}

// Params returns a copy of the detector parameters
func (d *Detector) Params() Params {
	return d.params
}

// CalculateDarkCurrentNoise returns the dark signal, in electrons, accumulated
// over an exposure of the given length in seconds.
func (d *Detector) CalculateDarkCurrentNoise(exposure float64) float64 {
	return d.params.DarkCurrent * exposure
}

// SensorArea returns the physical width and height of the sensor in meters.
func (d *Detector) SensorArea() (width, height float64) {
	return float64(d.params.SensorSize.Width) * d.params.PixelSize,
		float64(d.params.SensorSize.Height) * d.params.PixelSize
}
