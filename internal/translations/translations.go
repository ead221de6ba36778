package translations

import (
	"github.com/rubiojr/fuelcalc/pkg/api"
	"github.com/rubiojr/fuelcalc/pkg/fuel"
)

// Translations contains all text strings shown around calculator output.
// Numbers are never localized.
type Translations struct {
	// Titles
	Title        string
	ResultsTitle string
	HistoryTitle string

	// Field labels
	Distance   string
	FuelFilled string
	Efficiency string
	TotalCost  string

	// Unit selectors
	DistanceUnit   string
	FuelUnit       string
	EfficiencyUnit string

	// Messages
	InvalidNumbers string
	NoHistory      string
	NoResult       string
	ResetDone      string
	HistoryCleared string

	// Unit labels
	UnitLabels map[string]string
}

// Unit returns the label of a unit tag, or the tag itself when unknown.
func (t Translations) Unit(tag string) string {
	if label, ok := t.UnitLabels[tag]; ok {
		return label
	}
	return tag
}

// UnitOptions returns the three closed unit sets keyed by selector.
func (t Translations) UnitOptions() map[string][]api.UnitOption {
	options := map[string][]api.UnitOption{}
	for _, u := range fuel.DistanceUnits {
		options["distance"] = append(options["distance"], api.UnitOption{Label: t.Unit(string(u)), Value: string(u)})
	}
	for _, u := range fuel.VolumeUnits {
		options["fuel"] = append(options["fuel"], api.UnitOption{Label: t.Unit(string(u)), Value: string(u)})
	}
	for _, u := range fuel.EfficiencyUnits {
		options["efficiency"] = append(options["efficiency"], api.UnitOption{Label: t.Unit(string(u)), Value: string(u)})
	}
	return options
}

// GetTranslations returns translations for the specified language
func GetTranslations(lang string) Translations {
	switch GetLanguage(lang) {
	case "es":
		return GetSpanishTranslations()
	default:
		return GetEnglishTranslations()
	}
}

// GetLanguage normalizes a language parameter, defaults to English
func GetLanguage(lang string) string {
	switch lang {
	case "es", "spanish", "español":
		return "es"
	default:
		return "en"
	}
}
