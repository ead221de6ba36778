package fuel

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

const costDecimals = 2

// ComputeCost returns fuelFilled * pricePerUnit rounded to cents.
//
// The volume is used as entered: the price is per unit of the volume the user
// filled, so no conversion to liters takes place here.
func ComputeCost(fuelFilled, pricePerUnit float64) (float64, error) {
	cost, err := costOf(fuelFilled, pricePerUnit)
	if err != nil {
		return 0, err
	}
	total := cost.InexactFloat64()
	if !isFinite(total) {
		return 0, fmt.Errorf("%w: total cost is out of range", ErrInvalidInput)
	}
	return total, nil
}

func costOf(fuelFilled, pricePerUnit float64) (decimal.Decimal, error) {
	if err := checkValue("fuel filled", fuelFilled); err != nil {
		return decimal.Zero, err
	}
	if err := checkValue("fuel cost", pricePerUnit); err != nil {
		return decimal.Zero, err
	}
	total := decimal.NewFromFloat(fuelFilled).Mul(decimal.NewFromFloat(pricePerUnit))
	return total.Round(costDecimals), nil
}

// FormatCost formats a cost with exactly two decimals. NaN and infinities,
// which ComputeCost never returns, are formatted as "NaN", "+Inf" and "-Inf".
func FormatCost(cost float64) string {
	if !isFinite(cost) {
		return strconv.FormatFloat(cost, 'f', costDecimals, 64)
	}
	return decimal.NewFromFloat(cost).StringFixed(costDecimals)
}
