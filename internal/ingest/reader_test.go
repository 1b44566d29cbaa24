package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venues.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadVenues(t *testing.T) {
	path := writeTemp(t, "venue,description\navexchange,Audio equipment\nmechmarket,Mechanical keyboards\n")

	venues, err := LoadVenues(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(venues) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(venues))
	}
	if venues[0].Name != "avexchange" || venues[0].Description != "Audio equipment" {
		t.Errorf("unexpected first venue: %+v", venues[0])
	}
}

func TestLoadVenues_SkipsInvalidNames(t *testing.T) {
	path := writeTemp(t, "venue,description\nbad name!,Nope\nav,TooShort\nphotomarket,Photography\n")

	venues, err := LoadVenues(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(venues) != 1 || venues[0].Name != "photomarket" {
		t.Errorf("expected only photomarket to survive validation, got %+v", venues)
	}
}

func TestLoadVenues_StripsBOM(t *testing.T) {
	path := writeTemp(t, "\uFEFFvenue,description\nhardwareswap,Computer hardware\n")

	venues, err := LoadVenues(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(venues) != 1 || venues[0].Name != "hardwareswap" {
		t.Errorf("expected hardwareswap, got %+v", venues)
	}
}

func TestLoadVenues_MissingFile(t *testing.T) {
	if _, err := LoadVenues(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
