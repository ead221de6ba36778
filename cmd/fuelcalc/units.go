package main

import (
	"fmt"
	"io"

	"github.com/rubiojr/fuelcalc/internal/translations"
	"github.com/urfave/cli/v2"
)

func unitsCommand() *cli.Command {
	return &cli.Command{
		Name:   "units",
		Usage:  "List the selectable units",
		Action: unitsAction,
	}
}

func unitsAction(c *cli.Context) error {
	tr := translations.GetTranslations(translations.GetLanguage(c.String("lang")))
	printUnits(c.App.Writer, tr)
	return nil
}

func printUnits(w io.Writer, tr translations.Translations) {
	options := tr.UnitOptions()
	selectors := []struct {
		key   string
		label string
	}{
		{"distance", tr.DistanceUnit},
		{"fuel", tr.FuelUnit},
		{"efficiency", tr.EfficiencyUnit},
	}

	for _, s := range selectors {
		fmt.Fprintf(w, "%s:\n", s.label)
		for _, o := range options[s.key] {
			fmt.Fprintf(w, "  %-8s %s\n", o.Value, o.Label)
		}
	}
}
