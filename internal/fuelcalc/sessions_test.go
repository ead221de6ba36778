package fuelcalc

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/rubiojr/fuelcalc/pkg/fuel"
)

func TestSessionsLifecycle(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)
	sessions := NewSessions(storage, time.Hour, slog.New(slog.DiscardHandler))

	a := sessions.Create()
	b := sessions.Create()
	if a.ID == b.ID {
		t.Fatalf("Expected distinct session ids, got %s twice", a.ID)
	}
	if sessions.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", sessions.Len())
	}

	got, ok := sessions.Get(a.ID)
	if !ok || got != a {
		t.Fatalf("Get(%s) = %v, %v", a.ID, got, ok)
	}

	err := a.Do(func(e *fuel.Engine) error {
		_, err := e.Calculate(fuel.Inputs{Distance: "100", FuelFilled: "8", FuelCost: "1.5"})
		return err
	})
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}
	if n, _ := storage.CountRecords(ctx, a.ID); n != 1 {
		t.Errorf("CountRecords() = %d, expected 1", n)
	}
	if n, _ := storage.CountRecords(ctx, b.ID); n != 0 {
		t.Errorf("Session b sees %d records of session a", n)
	}

	if !sessions.End(a.ID) {
		t.Error("End() returned false for a live session")
	}
	if sessions.End(a.ID) {
		t.Error("End() returned true for an ended session")
	}
	if _, ok := sessions.Get(a.ID); ok {
		t.Error("Expected ended session to be gone")
	}
	if n, _ := storage.CountRecords(ctx, a.ID); n != 0 {
		t.Errorf("CountRecords() = %d after End(), expected 0", n)
	}
}

func TestSessionsExpire(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)
	sessions := NewSessions(storage, 20*time.Millisecond, slog.New(slog.DiscardHandler))

	s := sessions.Create()
	err := s.Do(func(e *fuel.Engine) error {
		_, err := e.Calculate(fuel.Inputs{Distance: "100", FuelFilled: "8", FuelCost: "1.5"})
		return err
	})
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)
	sessions.Prune()

	if _, ok := sessions.Get(s.ID); ok {
		t.Error("Expected the session to expire")
	}
	if n, _ := storage.CountRecords(ctx, s.ID); n != 0 {
		t.Errorf("CountRecords() = %d after expiry, expected 0", n)
	}
}

func TestSessionDoSerializesCalls(t *testing.T) {
	storage := newTestStorage(t)
	sessions := NewSessions(storage, time.Hour, slog.New(slog.DiscardHandler))
	s := sessions.Create()

	const workers = 8
	const perWorker = 5
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				err := s.Do(func(e *fuel.Engine) error {
					_, err := e.Calculate(fuel.Inputs{Distance: "100", FuelFilled: "8", FuelCost: "1.5"})
					return err
				})
				if err != nil {
					t.Errorf("Calculate() failed: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	var records []fuel.Record
	err := s.Do(func(e *fuel.Engine) error {
		seq, err := e.ListHistory()
		if err != nil {
			return err
		}
		for r := range seq {
			records = append(records, r)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ListHistory() failed: %v", err)
	}
	if len(records) != workers*perWorker {
		t.Fatalf("Expected %d records, got %d", workers*perWorker, len(records))
	}
	for i, r := range records {
		if r.Seq != i+1 {
			t.Errorf("Record %d has Seq %d", i, r.Seq)
		}
	}
}
