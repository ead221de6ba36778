package translations

// GetEnglishTranslations returns all English text strings
func GetEnglishTranslations() Translations {
	return Translations{
		Title:        "Fuel Efficiency Calculator",
		ResultsTitle: "Calculation Results",
		HistoryTitle: "History",

		Distance:   "Distance",
		FuelFilled: "Fuel Filled",
		Efficiency: "Efficiency",
		TotalCost:  "Total Cost",

		DistanceUnit:   "Distance",
		FuelUnit:       "Fuel",
		EfficiencyUnit: "Output",

		InvalidNumbers: "Please enter valid numbers",
		NoHistory:      "No calculations yet.",
		NoResult:       "No result to show.",
		ResetDone:      "Inputs cleared.",
		HistoryCleared: "History cleared.",

		UnitLabels: map[string]string{
			"km":      "Kilometers",
			"miles":   "Miles",
			"liters":  "Liters",
			"gallons": "Gallons",
			"L/100km": "L/100km",
			"km/L":    "km/L",
			"mpg":     "MPG",
		},
	}
}
