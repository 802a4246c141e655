package models

// FieldOfView is the sensor extent in pixels.
type FieldOfView struct {
	// Width is the number of sensor columns
	Width int `yaml:"width"`

	// Height is the number of sensor rows
	Height int `yaml:"height"`
}

// Valid reports whether both dimensions are non-negative.
// A zero FieldOfView means the sensor extent is unknown.
func (f FieldOfView) Valid() bool {
	return f.Width >= 0 && f.Height >= 0
}

// IsZero reports whether the field of view was left unset.
func (f FieldOfView) IsZero() bool {
	return f.Width == 0 && f.Height == 0
}

// Particle is one entry of a particle table
type Particle struct {
	// Position is the (row, column) location on the detector, in pixels
	Position [2]float64

	// Size is the particle diameter in pixels
	Size float64

	// IncidentPhotons is the number of photons reaching the particle
	IncidentPhotons uint64
}
