package translations

// GetSpanishTranslations returns all Spanish text strings
func GetSpanishTranslations() Translations {
	return Translations{
		Title:        "Calculadora de Consumo",
		ResultsTitle: "Resultados del Cálculo",
		HistoryTitle: "Historial",

		Distance:   "Distancia",
		FuelFilled: "Combustible Repostado",
		Efficiency: "Consumo",
		TotalCost:  "Coste Total",

		DistanceUnit:   "Distancia",
		FuelUnit:       "Combustible",
		EfficiencyUnit: "Resultado",

		InvalidNumbers: "Introduce números válidos",
		NoHistory:      "Todavía no hay cálculos.",
		NoResult:       "No hay ningún resultado que mostrar.",
		ResetDone:      "Campos borrados.",
		HistoryCleared: "Historial borrado.",

		UnitLabels: map[string]string{
			"km":      "Kilómetros",
			"miles":   "Millas",
			"liters":  "Litros",
			"gallons": "Galones",
			"L/100km": "L/100km",
			"km/L":    "km/L",
			"mpg":     "MPG",
		},
	}
}
