package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var logger = slog.New(slog.DiscardHandler)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "fuelcalc",
		Usage: "Calculate fuel efficiency and trip cost",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Log debug output to stderr",
				EnvVars: []string{"FUELCALC_VERBOSE"},
			},
			&cli.StringFlag{
				Name:     "lang",
				Usage:    "Language for labels and messages (en, es)",
				Required: false,
				Value:    "en",
				EnvVars:  []string{"FUELCALC_LANG"},
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
			return nil
		},
		Commands: []*cli.Command{
			calcCommand(),
			convertCommand(),
			unitsCommand(),
			interactiveCommand(),
			serveCommand(),
		},
	}
}
