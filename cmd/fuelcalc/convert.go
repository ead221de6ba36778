package main

import (
	"errors"
	"fmt"

	"github.com/rubiojr/fuelcalc/pkg/fuel"
	"github.com/urfave/cli/v2"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a distance or a fuel volume between units",
		ArgsUsage: "VALUE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "Unit to convert from (km, miles, liters, gallons)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Unit to convert to (km, miles, liters, gallons)",
				Required: true,
			},
		},
		Action: convertAction,
	}
}

func convertAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("exactly one value is required")
	}

	value, err := fuel.ParseValue("value", c.Args().First())
	if err != nil {
		return err
	}

	from := fuel.Unit(c.String("from"))
	to := fuel.Unit(c.String("to"))
	if from.Family() == "" || from.Family() != to.Family() {
		return fmt.Errorf("%w: cannot convert %q to %q", fuel.ErrInvalidUnit, from, to)
	}

	q := fuel.Quantity{Value: value, Unit: from}
	fmt.Fprintln(c.App.Writer, fuel.Quantity{Value: q.In(to), Unit: to})
	return nil
}
