package fuel

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
)

// Inputs are the raw text fields of a calculation as typed by the user.
type Inputs struct {
	Distance   string `json:"distance"`
	FuelFilled string `json:"fuel_filled"`
	FuelCost   string `json:"fuel_cost"`
}

// Result is what a successful calculation shows to the user.
type Result struct {
	Efficiency Efficiency `json:"efficiency"`
	TotalCost  float64    `json:"total_cost"`
	Record     Record     `json:"record"`
}

// Selection holds the three unit choices of an Engine.
type Selection struct {
	Distance   Unit           `json:"distance"`
	Fuel       Unit           `json:"fuel"`
	Efficiency EfficiencyUnit `json:"efficiency"`
}

// DefaultSelection is the selection of a new Engine.
var DefaultSelection = Selection{
	Distance:   Kilometers,
	Fuel:       Liters,
	Efficiency: LitersPer100Km,
}

// Engine owns the unit selection, the last shown result and the calculation
// history of one user session.
//
// An Engine is not safe for concurrent use. Callers sharing one between
// goroutines must serialize every call.
type Engine struct {
	units   Selection
	history *History
	last    *Result
	log     *slog.Logger
}

type Option func(*Engine)

// WithHistoryStore backs the engine history with store instead of memory.
func WithHistoryStore(store HistoryStore) Option {
	return func(e *Engine) {
		e.history = NewHistory(store)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		units:   DefaultSelection,
		history: NewHistory(nil),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Units() Selection {
	return e.units
}

func (e *Engine) SetDistanceUnit(u Unit) error {
	if u.Family() != FamilyDistance {
		return fmt.Errorf("%w: unknown distance unit %q", ErrInvalidUnit, u)
	}
	e.units.Distance = u
	return nil
}

func (e *Engine) SetFuelUnit(u Unit) error {
	if u.Family() != FamilyVolume {
		return fmt.Errorf("%w: unknown volume unit %q", ErrInvalidUnit, u)
	}
	e.units.Fuel = u
	return nil
}

func (e *Engine) SetEfficiencyUnit(u EfficiencyUnit) error {
	if !u.Valid() {
		return fmt.Errorf("%w: unknown efficiency unit %q", ErrInvalidUnit, u)
	}
	e.units.Efficiency = u
	return nil
}

// Calculate parses the raw inputs with the current unit selection, computes
// efficiency and cost, and records the calculation. On error nothing is
// recorded and the last result is kept.
func (e *Engine) Calculate(in Inputs) (Result, error) {
	res, err := e.calculate(in)
	if err != nil {
		e.log.Debug("calculation rejected", "error", err)
		return Result{}, err
	}
	e.last = &res
	e.log.Debug("calculation recorded", "seq", res.Record.Seq, "efficiency", res.Record.Efficiency, "total_cost", res.Record.TotalCost)
	return res, nil
}

func (e *Engine) calculate(in Inputs) (Result, error) {
	distance, err := ParseValue("distance", in.Distance)
	if err != nil {
		return Result{}, err
	}
	fuelFilled, err := ParseValue("fuel filled", in.FuelFilled)
	if err != nil {
		return Result{}, err
	}
	fuelCost, err := ParseValue("fuel cost", in.FuelCost)
	if err != nil {
		return Result{}, err
	}

	calc := CalculationInputs{
		Distance:   Quantity{Value: distance, Unit: e.units.Distance},
		FuelFilled: Quantity{Value: fuelFilled, Unit: e.units.Fuel},
		FuelCost:   fuelCost,
	}
	eff, err := ComputeEfficiency(calc.Distance, calc.FuelFilled, e.units.Efficiency)
	if err != nil {
		return Result{}, err
	}
	cost, err := ComputeCost(calc.FuelFilled.Value, calc.FuelCost)
	if err != nil {
		return Result{}, err
	}

	rec, err := e.history.Record(calc, eff, cost)
	if err != nil {
		return Result{}, err
	}
	return Result{Efficiency: eff, TotalCost: cost, Record: rec}, nil
}

// Last returns the result of the latest successful calculation since the
// last Reset.
func (e *Engine) Last() (Result, bool) {
	if e.last == nil {
		return Result{}, false
	}
	return *e.last, true
}

// Reset clears the last shown result. The history is kept.
func (e *Engine) Reset() {
	e.last = nil
}

// ResetHistory empties the history.
func (e *Engine) ResetHistory() error {
	if err := e.history.Clear(); err != nil {
		return fmt.Errorf("error clearing history: %w", err)
	}
	e.log.Debug("history cleared")
	return nil
}

// RecordCalculation appends an already computed calculation to the history.
func (e *Engine) RecordCalculation(in CalculationInputs, eff Efficiency, cost float64) (Record, error) {
	return e.history.Record(in, eff, cost)
}

func (e *Engine) ListHistory() (iter.Seq[Record], error) {
	return e.history.List()
}

func (e *Engine) HistoryLen() (int, error) {
	return e.history.Len()
}

// IsInvalidInput reports whether err was caused by the user input rather than
// by the history store.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
