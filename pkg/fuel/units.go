// Package fuel converts trip distance, fuel volume and fuel price into a
// fuel-efficiency figure and a total cost, and keeps a history of the
// calculations made through an Engine.
package fuel

import (
	"fmt"
	"strconv"
)

// Unit is a distance or volume unit tag.
type Unit string

const (
	Kilometers Unit = "km"
	Miles      Unit = "miles"
	Liters     Unit = "liters"
	Gallons    Unit = "gallons"
)

// Family groups units that can be converted into each other.
type Family string

const (
	FamilyDistance Family = "distance"
	FamilyVolume   Family = "volume"
)

// EfficiencyUnit selects how an efficiency figure is expressed.
type EfficiencyUnit string

const (
	LitersPer100Km EfficiencyUnit = "L/100km"
	KmPerLiter     EfficiencyUnit = "km/L"
	MilesPerGallon EfficiencyUnit = "mpg"
)

var (
	DistanceUnits   = []Unit{Kilometers, Miles}
	VolumeUnits     = []Unit{Liters, Gallons}
	EfficiencyUnits = []EfficiencyUnit{LitersPer100Km, KmPerLiter, MilesPerGallon}
)

// Family returns the family of u, or "" for an unknown tag.
func (u Unit) Family() Family {
	switch u {
	case Kilometers, Miles:
		return FamilyDistance
	case Liters, Gallons:
		return FamilyVolume
	default:
		return ""
	}
}

func (u EfficiencyUnit) Valid() bool {
	switch u {
	case LitersPer100Km, KmPerLiter, MilesPerGallon:
		return true
	default:
		return false
	}
}

// ParseDistanceUnit validates s against the distance units.
func ParseDistanceUnit(s string) (Unit, error) {
	return parseUnit(s, FamilyDistance)
}

// ParseVolumeUnit validates s against the volume units.
func ParseVolumeUnit(s string) (Unit, error) {
	return parseUnit(s, FamilyVolume)
}

// ParseEfficiencyUnit validates s against the efficiency units.
func ParseEfficiencyUnit(s string) (EfficiencyUnit, error) {
	u := EfficiencyUnit(s)
	if !u.Valid() {
		return "", fmt.Errorf("%w: unknown efficiency unit %q", ErrInvalidUnit, s)
	}
	return u, nil
}

func parseUnit(s string, family Family) (Unit, error) {
	u := Unit(s)
	if u.Family() != family {
		return "", fmt.Errorf("%w: unknown %s unit %q", ErrInvalidUnit, family, s)
	}
	return u, nil
}

// Quantity is a measured value together with the unit it was entered in.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// String formats q as "{value} {unit}" without trailing zeros.
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'f', -1, 64) + " " + string(q.Unit)
}

// In returns the value of q expressed in unit to.
func (q Quantity) In(to Unit) float64 {
	return Convert(q.Value, q.Unit, to)
}
