package fuelcalc

import (
	"errors"
	"fmt"
	"math"

	"github.com/rubiojr/fuelcalc/pkg/fuel"
	"github.com/tkrajina/gpxgo/gpx"
)

const (
	metersPerKm   = 1000.0
	trackDecimals = 3
	decimalBase   = 10
)

var ErrEmptyTrack = errors.New("track has no distance")

// TrackDistance returns the 2D length of all the tracks in a GPX file,
// expressed in the distance unit u.
func TrackDistance(path string, u fuel.Unit) (fuel.Quantity, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return fuel.Quantity{}, fmt.Errorf("error parsing GPX file %s: %w", path, err)
	}
	return trackLength(g, u)
}

// ParseTrack is TrackDistance for a GPX document already in memory.
func ParseTrack(data []byte, u fuel.Unit) (fuel.Quantity, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return fuel.Quantity{}, fmt.Errorf("error parsing GPX data: %w", err)
	}
	return trackLength(g, u)
}

func trackLength(g *gpx.GPX, u fuel.Unit) (fuel.Quantity, error) {
	if u.Family() != fuel.FamilyDistance {
		return fuel.Quantity{}, fmt.Errorf("%w: unknown distance unit %q", fuel.ErrInvalidUnit, u)
	}
	meters := g.Length2D()
	if meters <= 0 || math.IsNaN(meters) {
		return fuel.Quantity{}, ErrEmptyTrack
	}
	km := meters / metersPerKm
	return fuel.Quantity{
		Value: reducePrecision(fuel.Convert(km, fuel.Kilometers, u), trackDecimals),
		Unit:  u,
	}, nil
}

func reducePrecision(v float64, decimalPlaces int) float64 {
	factor := math.Pow(decimalBase, float64(decimalPlaces))
	return math.Round(v*factor) / factor
}
