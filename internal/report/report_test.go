package report

import (
	"strings"
	"testing"

	"github.com/ezouu/reddit-price-checker/internal/domain"
)

func listings(prices ...float64) []domain.Listing {
	var out []domain.Listing
	for i, p := range prices {
		out = append(out, domain.Listing{
			Venue:      "avexchange",
			Title:      "listing",
			Price:      p,
			CreatedUTC: float64(i),
		})
	}
	return out
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(listings(100, 200, 300, 400))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count != 4 {
		t.Errorf("count: expected 4, got %d", s.Count)
	}
	if s.Mean != 250.0 {
		t.Errorf("mean: expected 250, got %v", s.Mean)
	}
	if s.Median != 250.0 {
		t.Errorf("median: expected 250, got %v", s.Median)
	}
	if s.Min != 100.0 || s.Max != 400.0 {
		t.Errorf("range: expected 100-400, got %v-%v", s.Min, s.Max)
	}
}

func TestSummarize_OddCountMedian(t *testing.T) {
	s, err := Summarize(listings(100, 400, 200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Median != 200.0 {
		t.Errorf("median: expected 200, got %v", s.Median)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if _, err := Summarize(nil); err == nil {
		t.Error("expected error for empty listings")
	}
}

func TestRender_MostRecentFirst(t *testing.T) {
	input := []domain.Listing{
		{Title: "oldest", Date: "2026-08-01 10:00:00", Price: 100, CreatedUTC: 1},
		{Title: "newest", Date: "2026-08-20 10:00:00", Price: 300, CreatedUTC: 3},
		{Title: "middle", Date: "2026-08-10 10:00:00", Price: 200, CreatedUTC: 2},
	}

	var buf strings.Builder
	if err := Render(&buf, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	newest := strings.Index(out, "newest")
	middle := strings.Index(out, "middle")
	oldest := strings.Index(out, "oldest")
	if newest < 0 || middle < 0 || oldest < 0 {
		t.Fatalf("missing listings in output:\n%s", out)
	}
	if !(newest < middle && middle < oldest) {
		t.Errorf("expected most-recent-first ordering, got:\n%s", out)
	}

	if !strings.Contains(out, "Total listings found: 3") {
		t.Errorf("missing total in output:\n%s", out)
	}
	if !strings.Contains(out, "Average price: $200.00") {
		t.Errorf("missing average in output:\n%s", out)
	}

	// Render must not reorder the caller's slice.
	if input[0].Title != "oldest" {
		t.Error("Render mutated the input slice")
	}
}
