package fuel

import (
	"fmt"
	"iter"
	"slices"
)

// Record is the formatted snapshot of one successful calculation. Records are
// never modified once appended to a history.
type Record struct {
	Seq        int    `json:"seq"`
	Distance   string `json:"distance"`
	FuelFilled string `json:"fuel_filled"`
	Efficiency string `json:"efficiency"`
	TotalCost  string `json:"total_cost"`
}

// CalculationInputs are the parsed inputs of a calculation.
type CalculationInputs struct {
	Distance   Quantity `json:"distance"`
	FuelFilled Quantity `json:"fuel_filled"`
	FuelCost   float64  `json:"fuel_cost"`
}

// HistoryStore is the append-only backing store of a History.
type HistoryStore interface {
	Append(r Record) error
	// Records returns a copy of the stored records in insertion order.
	Records() ([]Record, error)
	Len() (int, error)
	Clear() error
}

// MemoryHistory keeps records in a slice. It is the default store.
type MemoryHistory struct {
	records []Record
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (m *MemoryHistory) Append(r Record) error {
	m.records = append(m.records, r)
	return nil
}

func (m *MemoryHistory) Records() ([]Record, error) {
	return slices.Clone(m.records), nil
}

func (m *MemoryHistory) Len() (int, error) {
	return len(m.records), nil
}

func (m *MemoryHistory) Clear() error {
	m.records = nil
	return nil
}

// History formats calculations into records and appends them to a store.
type History struct {
	store HistoryStore
}

func NewHistory(store HistoryStore) *History {
	if store == nil {
		store = NewMemoryHistory()
	}
	return &History{store: store}
}

// Record appends the calculation to the history and returns the new record.
func (h *History) Record(in CalculationInputs, eff Efficiency, cost float64) (Record, error) {
	if err := validateRecord(in, eff, cost); err != nil {
		return Record{}, err
	}

	n, err := h.store.Len()
	if err != nil {
		return Record{}, fmt.Errorf("error reading history length: %w", err)
	}

	r := Record{
		Seq:        n + 1,
		Distance:   in.Distance.String(),
		FuelFilled: in.FuelFilled.String(),
		Efficiency: eff.String(),
		TotalCost:  FormatCost(cost),
	}
	if err := h.store.Append(r); err != nil {
		return Record{}, fmt.Errorf("error appending to history: %w", err)
	}
	return r, nil
}

// List returns the records in insertion order. The sequence is taken from a
// snapshot and can be ranged over any number of times.
func (h *History) List() (iter.Seq[Record], error) {
	records, err := h.store.Records()
	if err != nil {
		return nil, fmt.Errorf("error reading history: %w", err)
	}
	return slices.Values(records), nil
}

func (h *History) Len() (int, error) {
	return h.store.Len()
}

func (h *History) Clear() error {
	return h.store.Clear()
}

func validateRecord(in CalculationInputs, eff Efficiency, cost float64) error {
	checks := []struct {
		field string
		value float64
	}{
		{"distance", in.Distance.Value},
		{"fuel filled", in.FuelFilled.Value},
		{"fuel cost", in.FuelCost},
		{"efficiency", eff.Value},
		{"total cost", cost},
	}
	for _, c := range checks {
		if err := checkValue(c.field, c.value); err != nil {
			return err
		}
	}
	if in.Distance.Unit.Family() != FamilyDistance {
		return fmt.Errorf("%w: unknown distance unit %q", ErrInvalidUnit, in.Distance.Unit)
	}
	if in.FuelFilled.Unit.Family() != FamilyVolume {
		return fmt.Errorf("%w: unknown volume unit %q", ErrInvalidUnit, in.FuelFilled.Unit)
	}
	if !eff.Unit.Valid() {
		return fmt.Errorf("%w: unknown efficiency unit %q", ErrInvalidUnit, eff.Unit)
	}
	return nil
}
