package fuelcalc

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/rubiojr/fuelcalc/pkg/fuel"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	storage, err := NewStorage(context.Background(), MemoryDSN, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("NewStorage() failed: %v", err)
	}
	t.Cleanup(func() { storage.Close() })
	return storage
}

func TestStorageRecords(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	records := []fuel.Record{
		{Seq: 1, Distance: "100 km", FuelFilled: "8 liters", Efficiency: "8.00 L/100km", TotalCost: "12.00"},
		{Seq: 2, Distance: "62.1371 miles", FuelFilled: "8 liters", Efficiency: "29.40 mpg", TotalCost: "16.00"},
	}
	for _, r := range records {
		if err := storage.AppendRecord(ctx, "a", r); err != nil {
			t.Fatalf("AppendRecord() failed: %v", err)
		}
	}
	if err := storage.AppendRecord(ctx, "b", records[0]); err != nil {
		t.Fatalf("AppendRecord() failed: %v", err)
	}

	got, err := storage.Records(ctx, "a")
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}
	if !slices.Equal(got, records) {
		t.Errorf("Records() = %+v, expected %+v", got, records)
	}

	if n, err := storage.CountRecords(ctx, "b"); err != nil || n != 1 {
		t.Errorf("CountRecords(b) = %d, %v, expected 1", n, err)
	}

	st, err := storage.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{Sessions: 2, Calculations: 3}) {
		t.Errorf("Stats() = %+v, expected 2 sessions and 3 calculations", st)
	}

	deleted, err := storage.DeleteRecords(ctx, "a")
	if err != nil || deleted != 2 {
		t.Errorf("DeleteRecords(a) = %d, %v, expected 2", deleted, err)
	}
	if n, _ := storage.CountRecords(ctx, "a"); n != 0 {
		t.Errorf("CountRecords(a) = %d after delete, expected 0", n)
	}
	if n, _ := storage.CountRecords(ctx, "b"); n != 1 {
		t.Errorf("CountRecords(b) = %d after deleting a, expected 1", n)
	}
}

func TestStorageRejectsDuplicateSeq(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	r := fuel.Record{Seq: 1, Distance: "1 km", FuelFilled: "1 liters", Efficiency: "100.00 L/100km", TotalCost: "1.00"}
	if err := storage.AppendRecord(ctx, "a", r); err != nil {
		t.Fatalf("AppendRecord() failed: %v", err)
	}
	if err := storage.AppendRecord(ctx, "a", r); err == nil {
		t.Error("Expected an error appending the same sequence number twice")
	}
	if n, _ := storage.CountRecords(ctx, "a"); n != 1 {
		t.Errorf("CountRecords() = %d, expected 1", n)
	}
}

func TestSessionHistoryBacksEngine(t *testing.T) {
	storage := newTestStorage(t)
	e := fuel.NewEngine(fuel.WithHistoryStore(storage.SessionHistory("s1")))

	inputs := []fuel.Inputs{
		{Distance: "100", FuelFilled: "8", FuelCost: "1.5"},
		{Distance: "200", FuelFilled: "15", FuelCost: "1.5"},
		{Distance: "300", FuelFilled: "21", FuelCost: "1.5"},
	}
	for _, in := range inputs {
		if _, err := e.Calculate(in); err != nil {
			t.Fatalf("Calculate(%+v) failed: %v", in, err)
		}
	}
	if _, err := e.Calculate(fuel.Inputs{Distance: "100", FuelFilled: "abc", FuelCost: "1.5"}); !errors.Is(err, fuel.ErrInvalidInput) {
		t.Errorf("Calculate() error = %v, expected ErrInvalidInput", err)
	}

	seq, err := e.ListHistory()
	if err != nil {
		t.Fatalf("ListHistory() failed: %v", err)
	}
	records := slices.Collect(seq)
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	for i, r := range records {
		if r.Seq != i+1 {
			t.Errorf("Record %d has Seq %d", i, r.Seq)
		}
	}
	if records[2].Efficiency != "7.00 L/100km" {
		t.Errorf("Third record efficiency = %q, expected %q", records[2].Efficiency, "7.00 L/100km")
	}

	if err := e.ResetHistory(); err != nil {
		t.Fatalf("ResetHistory() failed: %v", err)
	}
	if n, _ := e.HistoryLen(); n != 0 {
		t.Errorf("HistoryLen() = %d after ResetHistory(), expected 0", n)
	}
}
