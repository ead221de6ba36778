package fuelcalc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rubiojr/fuelcalc/pkg/fuel"
)

// Two points 0.01 degrees of longitude apart on the equator, about 1.11 km.
const equatorTrack = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="fuelcalc" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>equator</name>
    <trkseg>
      <trkpt lat="0" lon="0"></trkpt>
      <trkpt lat="0" lon="0.01"></trkpt>
    </trkseg>
  </trk>
</gpx>`

const emptyTrack = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="fuelcalc" xmlns="http://www.topografix.com/GPX/1/1">
</gpx>`

func TestParseTrack(t *testing.T) {
	q, err := ParseTrack([]byte(equatorTrack), fuel.Kilometers)
	if err != nil {
		t.Fatalf("ParseTrack() failed: %v", err)
	}
	if q.Unit != fuel.Kilometers {
		t.Errorf("Unit = %s, expected km", q.Unit)
	}
	if q.Value < 1.10 || q.Value > 1.12 {
		t.Errorf("Value = %f km, expected about 1.11", q.Value)
	}

	miles, err := ParseTrack([]byte(equatorTrack), fuel.Miles)
	if err != nil {
		t.Fatalf("ParseTrack() in miles failed: %v", err)
	}
	if miles.Value < 0.68 || miles.Value > 0.70 {
		t.Errorf("Value = %f miles, expected about 0.69", miles.Value)
	}
}

func TestParseTrackErrors(t *testing.T) {
	if _, err := ParseTrack([]byte(emptyTrack), fuel.Kilometers); !errors.Is(err, ErrEmptyTrack) {
		t.Errorf("ParseTrack(empty) error = %v, expected ErrEmptyTrack", err)
	}
	if _, err := ParseTrack([]byte(equatorTrack), fuel.Liters); !errors.Is(err, fuel.ErrInvalidUnit) {
		t.Errorf("ParseTrack() in liters error = %v, expected ErrInvalidUnit", err)
	}
	if _, err := ParseTrack([]byte("not xml"), fuel.Kilometers); err == nil {
		t.Error("Expected an error parsing garbage")
	}
}

func TestTrackDistance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.gpx")
	if err := os.WriteFile(path, []byte(equatorTrack), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	q, err := TrackDistance(path, fuel.Kilometers)
	if err != nil {
		t.Fatalf("TrackDistance() failed: %v", err)
	}
	if q.Value < 1.10 || q.Value > 1.12 {
		t.Errorf("Value = %f km, expected about 1.11", q.Value)
	}

	if _, err := TrackDistance(filepath.Join(t.TempDir(), "missing.gpx"), fuel.Kilometers); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
