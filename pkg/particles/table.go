// Package particles holds the table of particles placed in the sample.
package particles

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"microsim/internal/models"
)

// TableSize is the fixed number of particles in a Table
const TableSize = 10

const (
	placeholderRow     = 10.0
	placeholderCol     = 10.0
	placeholderPhotons = 1_000_000_000
)

// Table is a fixed-length list of particles indexed from 0 to TableSize-1
type Table struct {
	particles [TableSize]models.Particle
}

// NewPlaceholderTable returns a demo table where every particle sits at
// (10, 10), has the given size in pixels and receives 1e9 photons.
// The values are not derived from any simulation.
func NewPlaceholderTable(size float64) *Table {
	t := &Table{}
	for i := range t.particles {
		t.particles[i] = models.Particle{
			Position:        [2]float64{placeholderRow, placeholderCol},
			Size:            size,
			IncidentPhotons: placeholderPhotons,
		}
	}
	return t
}

// Len always returns TableSize
func (t *Table) Len() int {
	return len(t.particles)
}

// Particle returns the i-th particle. It panics if i is out of range.
func (t *Table) Particle(i int) models.Particle {
	return t.particles[i]
}

// Positions returns the (row, column) of every particle
func (t *Table) Positions() [][2]float64 {
	out := make([][2]float64, len(t.particles))
	for i, p := range t.particles {
		out[i] = p.Position
	}
	return out
}

// Sizes returns the size of every particle in pixels
func (t *Table) Sizes() []float64 {
	out := make([]float64, len(t.particles))
	for i, p := range t.particles {
		out[i] = p.Size
	}
	return out
}

// Summary aggregates the table
type Summary struct {
	Count        int
	MeanSize     float64
	StdDevSize   float64
	TotalPhotons float64
	MeanPosition [2]float64
}

// Summary computes aggregate statistics over the table.
func (t *Table) Summary() Summary {
	sizes := t.Sizes()
	rows := make([]float64, len(t.particles))
	cols := make([]float64, len(t.particles))
	photons := make([]float64, len(t.particles))
	for i, p := range t.particles {
		rows[i] = p.Position[0]
		cols[i] = p.Position[1]
		photons[i] = float64(p.IncidentPhotons)
	}

	mean, std := stat.MeanStdDev(sizes, nil)
	return Summary{
		Count:        len(t.particles),
		MeanSize:     mean,
		StdDevSize:   std,
		TotalPhotons: floats.Sum(photons),
		MeanPosition: [2]float64{stat.Mean(rows, nil), stat.Mean(cols, nil)},
	}
}
