package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microsim/internal/models"
)

func sonyICX() Params {
	return Params{
		PixelSize:   6.9e-6,
		SensorSize:  models.FieldOfView{Width: 728, Height: 544},
		ReadNoise:   15.0,
		DarkCurrent: 350.0,
	}
}

func TestCalculateDarkCurrentNoise(t *testing.T) {
	d, err := New(sonyICX())
	require.NoError(t, err)

	assert.InDelta(t, 0.035, d.CalculateDarkCurrentNoise(100e-6), 1e-15)
	assert.Zero(t, d.CalculateDarkCurrentNoise(0))
}

func TestDarkCurrentNoiseIsLinearInExposure(t *testing.T) {
	d, err := New(sonyICX())
	require.NoError(t, err)

	base := d.CalculateDarkCurrentNoise(1e-3)
	for _, k := range []float64{2, 10, 1000} {
		assert.InDelta(t, base*k, d.CalculateDarkCurrentNoise(1e-3*k), 1e-9)
	}
}

func TestSensorArea(t *testing.T) {
	d, err := New(sonyICX())
	require.NoError(t, err)

	w, h := d.SensorArea()
	assert.InDelta(t, 728*6.9e-6, w, 1e-12)
	assert.InDelta(t, 544*6.9e-6, h, 1e-12)
}

func TestNewRejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"pixel size", func(p *Params) { p.PixelSize = -1 }},
		{"sensor size", func(p *Params) { p.SensorSize.Height = -544 }},
		{"read noise", func(p *Params) { p.ReadNoise = -15 }},
		{"dark current", func(p *Params) { p.DarkCurrent = -350 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sonyICX()
			tt.mutate(&p)
			_, err := New(p)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}
