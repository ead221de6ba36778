package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rubiojr/fuelcalc/internal/translations"
	"github.com/rubiojr/fuelcalc/pkg/fuel"
	"github.com/urfave/cli/v2"
)

const interactiveHelp = `Commands:
  calc DISTANCE FUEL PRICE     calculate with the selected units
  unit distance|fuel|efficiency UNIT
  units                        show the selected and available units
  last                         show the last result
  history                      list past calculations
  reset                        clear the last result
  clear-history                empty the history
  help
  quit`

func interactiveCommand() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Run a calculator session reading commands from stdin",
		Action:  interactiveAction,
	}
}

func interactiveAction(c *cli.Context) error {
	tr := translations.GetTranslations(translations.GetLanguage(c.String("lang")))
	engine := fuel.NewEngine(fuel.WithLogger(logger))
	return runInteractive(c.App.Reader, c.App.Writer, engine, tr)
}

// runInteractive reads one command per line from in until EOF or quit.
func runInteractive(in io.Reader, out io.Writer, engine *fuel.Engine, tr translations.Translations) error {
	fmt.Fprintln(out, tr.Title)
	fmt.Fprintln(out, `Type "help" for a list of commands.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if err := runCommand(out, engine, tr, cmd, args); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}

// runCommand executes a single interactive command. Only history store
// failures are returned; user mistakes are reported on out.
func runCommand(out io.Writer, engine *fuel.Engine, tr translations.Translations, cmd string, args []string) error {
	switch cmd {
	case "help":
		fmt.Fprintln(out, interactiveHelp)

	case "calc":
		if len(args) != 3 {
			fmt.Fprintln(out, "usage: calc DISTANCE FUEL PRICE")
			return nil
		}
		res, err := engine.Calculate(fuel.Inputs{Distance: args[0], FuelFilled: args[1], FuelCost: args[2]})
		if err != nil {
			if fuel.IsInvalidInput(err) {
				fmt.Fprintln(out, tr.InvalidNumbers)
				return nil
			}
			return err
		}
		printResult(out, tr, res)

	case "unit":
		if len(args) != 2 {
			fmt.Fprintln(out, "usage: unit distance|fuel|efficiency UNIT")
			return nil
		}
		if err := setUnit(engine, args[0], args[1]); err != nil {
			fmt.Fprintln(out, err)
			return nil
		}
		printSelection(out, tr, engine.Units())

	case "units":
		printSelection(out, tr, engine.Units())
		printUnits(out, tr)

	case "last":
		res, ok := engine.Last()
		if !ok {
			fmt.Fprintln(out, tr.NoResult)
			return nil
		}
		printResult(out, tr, res)

	case "history":
		return printHistory(out, engine, tr)

	case "reset":
		engine.Reset()
		fmt.Fprintln(out, tr.ResetDone)

	case "clear-history":
		if err := engine.ResetHistory(); err != nil {
			return err
		}
		fmt.Fprintln(out, tr.HistoryCleared)

	default:
		fmt.Fprintf(out, "unknown command %q, type \"help\" for a list of commands\n", cmd)
	}
	return nil
}

func setUnit(engine *fuel.Engine, selector, unit string) error {
	switch selector {
	case "distance":
		return engine.SetDistanceUnit(fuel.Unit(unit))
	case "fuel":
		return engine.SetFuelUnit(fuel.Unit(unit))
	case "efficiency":
		return engine.SetEfficiencyUnit(fuel.EfficiencyUnit(unit))
	default:
		return fmt.Errorf("unknown unit selector %q", selector)
	}
}

func printSelection(w io.Writer, tr translations.Translations, s fuel.Selection) {
	fmt.Fprintf(w, "%s: %s, %s: %s, %s: %s\n",
		tr.DistanceUnit, tr.Unit(string(s.Distance)),
		tr.FuelUnit, tr.Unit(string(s.Fuel)),
		tr.EfficiencyUnit, tr.Unit(string(s.Efficiency)))
}

func printHistory(w io.Writer, engine *fuel.Engine, tr translations.Translations) error {
	records, err := engine.ListHistory()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, tr.HistoryTitle)
	n := 0
	for r := range records {
		fmt.Fprintf(w, "  %d. %s | %s | %s | %s\n", r.Seq, r.Distance, r.FuelFilled, r.Efficiency, r.TotalCost)
		n++
	}
	if n == 0 {
		fmt.Fprintf(w, "  %s\n", tr.NoHistory)
	}
	return nil
}
