package fuel

import "math"

const (
	kmToMiles       = 0.621371
	milesToKm       = 1.60934
	litersToGallons = 0.264172
	gallonsToLiters = 3.78541
)

type unitPair struct {
	from, to Unit
}

var conversionFactors = map[unitPair]float64{
	{Kilometers, Miles}: kmToMiles,
	{Miles, Kilometers}: milesToKm,
	{Liters, Gallons}:   litersToGallons,
	{Gallons, Liters}:   gallonsToLiters,
}

// Convert converts value from one unit to another of the same family.
//
// Convert never fails: a NaN or infinite value converts to 0, and a pair
// without a known factor returns value unchanged. Callers validate their input
// before reaching this point.
func Convert(value float64, from, to Unit) float64 {
	if !isFinite(value) {
		return 0
	}
	if from == to {
		return value
	}
	factor, ok := conversionFactors[unitPair{from, to}]
	if !ok {
		return value
	}
	return value * factor
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
