package fuel

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// litersPer100KmToMpg converts between L/100km and US miles per gallon;
	// the relation is reciprocal.
	litersPer100KmToMpg = 235.215
	per100Km            = 100.0
	displayDecimals     = 2
)

// Efficiency is a fuel-efficiency figure rounded for display.
type Efficiency struct {
	Value float64        `json:"value"`
	Unit  EfficiencyUnit `json:"unit"`
}

// String formats e as "{value} {unit}" with two decimals.
func (e Efficiency) String() string {
	return strconv.FormatFloat(e.Value, 'f', displayDecimals, 64) + " " + string(e.Unit)
}

// ComputeEfficiency normalizes distance to kilometers and fuel to liters,
// computes the consumption in liters per 100 km and expresses it in out.
func ComputeEfficiency(distance, fuel Quantity, out EfficiencyUnit) (Efficiency, error) {
	if err := checkValue("distance", distance.Value); err != nil {
		return Efficiency{}, err
	}
	if err := checkValue("fuel filled", fuel.Value); err != nil {
		return Efficiency{}, err
	}
	if distance.Unit.Family() != FamilyDistance {
		return Efficiency{}, fmt.Errorf("%w: unknown distance unit %q", ErrInvalidUnit, distance.Unit)
	}
	if fuel.Unit.Family() != FamilyVolume {
		return Efficiency{}, fmt.Errorf("%w: unknown volume unit %q", ErrInvalidUnit, fuel.Unit)
	}
	if !out.Valid() {
		return Efficiency{}, fmt.Errorf("%w: unknown efficiency unit %q", ErrInvalidUnit, out)
	}

	distanceKm := distance.In(Kilometers)
	if distanceKm == 0 {
		return Efficiency{}, fmt.Errorf("%w: distance must be greater than zero", ErrInvalidInput)
	}
	fuelLiters := fuel.In(Liters)
	base := fuelLiters / distanceKm * per100Km

	var value float64
	switch out {
	case LitersPer100Km:
		value = base
	case KmPerLiter, MilesPerGallon:
		if base == 0 {
			return Efficiency{}, fmt.Errorf("%w: fuel filled must be greater than zero for %s", ErrInvalidInput, out)
		}
		if out == KmPerLiter {
			value = per100Km / base
		} else {
			value = litersPer100KmToMpg / base
		}
	}
	value = round(value, displayDecimals)
	if !isFinite(value) {
		return Efficiency{}, fmt.Errorf("%w: efficiency is out of range", ErrInvalidInput)
	}

	return Efficiency{Value: value, Unit: out}, nil
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
