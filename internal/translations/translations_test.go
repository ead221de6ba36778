package translations

import (
	"testing"

	"github.com/rubiojr/fuelcalc/pkg/api"
	"github.com/rubiojr/fuelcalc/pkg/fuel"
)

func TestGetLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"es", "es"},
		{"spanish", "es"},
		{"en", "en"},
		{"", "en"},
		{"fr", "en"},
	}

	for _, test := range tests {
		if result := GetLanguage(test.input); result != test.expected {
			t.Errorf("GetLanguage(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestUnitOptions(t *testing.T) {
	for _, lang := range []string{"en", "es"} {
		options := GetTranslations(lang).UnitOptions()

		if len(options["distance"]) != len(fuel.DistanceUnits) {
			t.Errorf("%s: %d distance options, expected %d", lang, len(options["distance"]), len(fuel.DistanceUnits))
		}
		if len(options["fuel"]) != len(fuel.VolumeUnits) {
			t.Errorf("%s: %d fuel options, expected %d", lang, len(options["fuel"]), len(fuel.VolumeUnits))
		}
		if len(options["efficiency"]) != len(fuel.EfficiencyUnits) {
			t.Errorf("%s: %d efficiency options, expected %d", lang, len(options["efficiency"]), len(fuel.EfficiencyUnits))
		}

		for selector, opts := range options {
			for _, o := range opts {
				if o.Label == "" {
					t.Errorf("%s: %s option %q has no label", lang, selector, o.Value)
				}
			}
		}
	}
}

func TestUnitFallback(t *testing.T) {
	tr := GetTranslations("es")
	if got := tr.Unit("miles"); got != "Millas" {
		t.Errorf("Unit(miles) = %q, expected %q", got, "Millas")
	}
	if got := tr.Unit("furlongs"); got != "furlongs" {
		t.Errorf("Unit(furlongs) = %q, expected the tag itself", got)
	}
}

func TestUnitOptionsLabels(t *testing.T) {
	options := GetTranslations("es").UnitOptions()
	expected := api.UnitOption{Label: "Galones", Value: "gallons"}
	if got := options["fuel"][1]; got != expected {
		t.Errorf("fuel option 1 = %+v, expected %+v", got, expected)
	}
}

func TestMessagesDiffer(t *testing.T) {
	for _, lang := range []string{"en", "es"} {
		tr := GetTranslations(lang)
		if tr.NoResult == "" || tr.NoResult == tr.NoHistory {
			t.Errorf("%s: NoResult = %q, expected a message of its own", lang, tr.NoResult)
		}
	}
}
