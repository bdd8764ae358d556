package model

import (
	"errors"
	"fmt"
)

// ErrInvalidUnit is returned when a unit selector is not one of the known units.
var ErrInvalidUnit = errors.New("invalid unit")

// Unit selects how methane cost is expressed.
// Keep these values stable; they are used in file names and CSV headers.
type Unit string

const (
	UnitKg  Unit = "kg"
	UnitKcf Unit = "kcf"
)

// Units lists every supported unit in rendering order.
func Units() []Unit {
	return []Unit{UnitKg, UnitKcf}
}

// ParseUnit accepts exactly "kg" or "kcf".
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitKg, UnitKcf:
		return Unit(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected one of \"kg\", \"kcf\")", ErrInvalidUnit, s)
	}
}

// Convert rescales a USD/kg cost into this unit.
func (u Unit) Convert(costPerKg float64, c MethaneCoefficients) float64 {
	if u == UnitKcf {
		return costPerKg * c.KgPerKcf
	}
	return costPerKg
}

// Label is the currency-per-unit label used in titles and headers.
func (u Unit) Label() string {
	return "USD/" + string(u)
}
