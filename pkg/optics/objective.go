package optics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownObjective is returned when a lens is not part of the Objective set
var ErrUnknownObjective = errors.New("unknown objective")

// Objective identifies one of the Nikon objectives mounted on the microscope.
// The color names follow the band painted on each lens barrel.
type Objective int

const (
	// Yellow is the 10x objective, NA 0.25
	Yellow Objective = iota
	// Blue is the 40x objective, NA 0.17
	Blue
	// White is the 100x objective, NA 0.17
	White
)

// Lens holds the physical constants of a single objective
type Lens struct {
	NumericalAperture float64
	Magnification     float64
}

var lenses = map[Objective]Lens{
	Yellow: {NumericalAperture: 0.25, Magnification: 10},
	Blue:   {NumericalAperture: 0.17, Magnification: 40},
	White:  {NumericalAperture: 0.17, Magnification: 100},
}

var objectiveNames = map[Objective]string{
	Yellow: "yellow",
	Blue:   "blue",
	White:  "white",
}

// Objectives returns every known objective in declaration order.
func Objectives() []Objective {
	return []Objective{Yellow, Blue, White}
}

// Lens returns the numerical aperture and magnification of the objective.
func (o Objective) Lens() (Lens, error) {
	lens, ok := lenses[o]
	if !ok {
		return Lens{}, fmt.Errorf("%w: %d", ErrUnknownObjective, int(o))
	}
	return lens, nil
}

// String returns the lowercase lens name, or Objective(n) for unknown values.
func (o Objective) String() string {
	if name, ok := objectiveNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Objective(%d)", int(o))
}

// ParseObjective converts a lens name such as "blue" into an Objective.
// Matching is case-insensitive.
func ParseObjective(text string) (Objective, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	for obj, n := range objectiveNames {
		if n == name {
			return obj, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownObjective, text)
}

// MarshalText implements encoding.TextMarshaler
func (o Objective) MarshalText() ([]byte, error) {
	name, ok := objectiveNames[o]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownObjective, int(o))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Objective) UnmarshalText(text []byte) error {
	obj, err := ParseObjective(string(text))
	if err != nil {
		return err
	}
	*o = obj
	return nil
}
