package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"microsim/pkg/detector"
	"microsim/pkg/optics"
	"microsim/pkg/particles"
)

// Report collects the quantities derived from one optical setup
type Report struct {
	Params optics.Params

	// Resolution is the Rayleigh resolution in meters
	Resolution float64

	// IdealPixelSize is the Nyquist pixel pitch in meters
	IdealPixelSize float64

	// FieldOfView is the imaged sample area, width and height in meters
	FieldOfView [2]float64

	NyquistSampled bool

	// Exposure in seconds and the dark signal accumulated during it
	Exposure         float64
	DarkCurrentNoise float64

	Particles particles.Summary
}

// Build evaluates the model, detector and particle table into a Report.
func Build(m *optics.Model, d *detector.Detector, table *particles.Table, exposure float64) Report {
	w, h := m.CalculateFieldOfView()
	return Report{
		Params:           m.Params(),
		Resolution:       m.CalculateResolution(),
		IdealPixelSize:   m.CalculateIdealPixelSize(),
		FieldOfView:      [2]float64{w, h},
		NyquistSampled:   m.IsNyquistSampled(),
		Exposure:         exposure,
		DarkCurrentNoise: d.CalculateDarkCurrentNoise(exposure),
		Particles:        table.Summary(),
	}
}

// Write prints the report as aligned text.
func (r Report) Write(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	lines := []struct {
		label string
		value string
	}{
		{"Numerical aperture", fmt.Sprintf("%g", r.Params.NumericalAperture)},
		{"Magnification", fmt.Sprintf("%g", r.Params.Magnification)},
		{"Wavelength", fmt.Sprintf("%g m", r.Params.Wavelength)},
		{"Resolution of optics", fmt.Sprintf("%g m", r.Resolution)},
		{"Ideal pixel size", fmt.Sprintf("%g m", r.IdealPixelSize)},
		{"Field of view", fmt.Sprintf("%g x %g m", r.FieldOfView[0], r.FieldOfView[1])},
		{"Nyquist sampled", fmt.Sprintf("%t", r.NyquistSampled)},
		{"Dark current noise", fmt.Sprintf("%g e- over %g s", r.DarkCurrentNoise, r.Exposure)},
		{"Particles", fmt.Sprintf("%d (mean size %g px, %g photons total)",
			r.Particles.Count, r.Particles.MeanSize, r.Particles.TotalPhotons)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", l.label, l.value); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}
