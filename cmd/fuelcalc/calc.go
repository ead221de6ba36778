package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rubiojr/fuelcalc/internal/fuelcalc"
	"github.com/rubiojr/fuelcalc/internal/translations"
	"github.com/rubiojr/fuelcalc/pkg/fuel"
	"github.com/urfave/cli/v2"
)

func calcCommand() *cli.Command {
	return &cli.Command{
		Name:  "calc",
		Usage: "Calculate the efficiency and cost of a trip",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "distance",
				Aliases:  []string{"d"},
				Usage:    "Distance travelled",
				Required: false,
			},
			&cli.StringFlag{
				Name:     "gpx",
				Usage:    "Read the distance from a GPX track file",
				Required: false,
			},
			&cli.StringFlag{
				Name:     "fuel",
				Aliases:  []string{"f"},
				Usage:    "Fuel filled",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "price",
				Aliases:  []string{"p"},
				Usage:    "Price per unit of fuel",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "distance-unit",
				Usage:    "Distance unit (km, miles)",
				Required: false,
				Value:    string(fuel.Kilometers),
				EnvVars:  []string{"FUELCALC_DISTANCE_UNIT"},
			},
			&cli.StringFlag{
				Name:     "fuel-unit",
				Usage:    "Fuel unit (liters, gallons)",
				Required: false,
				Value:    string(fuel.Liters),
				EnvVars:  []string{"FUELCALC_FUEL_UNIT"},
			},
			&cli.StringFlag{
				Name:     "output-unit",
				Usage:    "Efficiency unit (L/100km, km/L, mpg)",
				Required: false,
				Value:    string(fuel.LitersPer100Km),
				EnvVars:  []string{"FUELCALC_OUTPUT_UNIT"},
			},
		},
		Action: calcAction,
	}
}

func calcAction(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}

	distance := c.String("distance")
	if path := c.String("gpx"); path != "" {
		q, err := fuelcalc.TrackDistance(path, engine.Units().Distance)
		if err != nil {
			return fmt.Errorf("error reading track %s: %w", path, err)
		}
		logger.Debug("distance read from track", "path", path, "distance", q)
		distance = strconv.FormatFloat(q.Value, 'f', -1, 64)
	}
	if distance == "" {
		return errors.New("distance or gpx track is required")
	}

	tr := translations.GetTranslations(translations.GetLanguage(c.String("lang")))
	res, err := engine.Calculate(fuel.Inputs{
		Distance:   distance,
		FuelFilled: c.String("fuel"),
		FuelCost:   c.String("price"),
	})
	if err != nil {
		if fuel.IsInvalidInput(err) {
			return fmt.Errorf("%s: %w", tr.InvalidNumbers, err)
		}
		return err
	}

	printResult(c.App.Writer, tr, res)
	return nil
}

// newEngine builds an Engine with the unit flags of c applied.
func newEngine(c *cli.Context) (*fuel.Engine, error) {
	engine := fuel.NewEngine(fuel.WithLogger(logger))
	if err := engine.SetDistanceUnit(fuel.Unit(c.String("distance-unit"))); err != nil {
		return nil, err
	}
	if err := engine.SetFuelUnit(fuel.Unit(c.String("fuel-unit"))); err != nil {
		return nil, err
	}
	if err := engine.SetEfficiencyUnit(fuel.EfficiencyUnit(c.String("output-unit"))); err != nil {
		return nil, err
	}
	return engine, nil
}

func printResult(w io.Writer, tr translations.Translations, res fuel.Result) {
	fmt.Fprintln(w, tr.ResultsTitle)
	fmt.Fprintf(w, "  %s: %s\n", tr.Distance, res.Record.Distance)
	fmt.Fprintf(w, "  %s: %s\n", tr.FuelFilled, res.Record.FuelFilled)
	fmt.Fprintf(w, "  %s: %s\n", tr.Efficiency, res.Record.Efficiency)
	fmt.Fprintf(w, "  %s: %s\n", tr.TotalCost, res.Record.TotalCost)
}
