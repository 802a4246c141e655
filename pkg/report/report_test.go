package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microsim/internal/models"
	"microsim/pkg/detector"
	"microsim/pkg/optics"
	"microsim/pkg/particles"
)

func buildDefault(t *testing.T) Report {
	t.Helper()
	fov := models.FieldOfView{Width: 728, Height: 544}

	m, err := optics.FromObjective(optics.Blue, 500e-9, 6.9e-6, fov)
	require.NoError(t, err)
	d, err := detector.New(detector.Params{PixelSize: 6.9e-6, SensorSize: fov, ReadNoise: 15, DarkCurrent: 350})
	require.NoError(t, err)

	return Build(m, d, particles.NewPlaceholderTable(3.0), 100e-6)
}

func TestBuild(t *testing.T) {
	r := buildDefault(t)

	assert.InDelta(t, 1.794117647e-6, r.Resolution, 1e-12)
	assert.InDelta(t, 3.588235294e-5, r.IdealPixelSize, 1e-11)
	assert.InDelta(t, r.Resolution*r.Params.Magnification/2, r.IdealPixelSize, 1e-20)
	assert.InDelta(t, 0.035, r.DarkCurrentNoise, 1e-15)
	assert.True(t, r.NyquistSampled)
	assert.Equal(t, particles.TableSize, r.Particles.Count)
	assert.Equal(t, 3.0, r.Particles.MeanSize)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildDefault(t).Write(&buf))

	out := buf.String()
	assert.Regexp(t, `Resolution of optics:\s+1\.79411764\d*e-06 m`, out)
	assert.Regexp(t, `Ideal pixel size:\s+3\.5882352\d*e-05 m`, out)
	assert.Regexp(t, `Nyquist sampled:\s+true\n`, out)
	assert.Contains(t, out, "(mean size 3 px, 1e+10 photons total)")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritePropagatesErrors(t *testing.T) {
	err := buildDefault(t).Write(failingWriter{})
	assert.Error(t, err)
}
