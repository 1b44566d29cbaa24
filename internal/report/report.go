// Package report turns priced listings into summary statistics and a
// printed analysis.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ezouu/reddit-price-checker/internal/domain"
	"github.com/montanaflynn/stats"
)

type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Summarize computes price statistics over the listings. Errors on an
// empty set.
func Summarize(listings []domain.Listing) (Summary, error) {
	if len(listings) == 0 {
		return Summary{}, fmt.Errorf("no listings to summarize")
	}

	prices := make([]float64, len(listings))
	for i, l := range listings {
		prices[i] = l.Price
	}

	mean, err := stats.Mean(prices)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(prices)
	if err != nil {
		return Summary{}, err
	}
	lo, err := stats.Min(prices)
	if err != nil {
		return Summary{}, err
	}
	hi, err := stats.Max(prices)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Count: len(listings), Mean: mean, Median: median, Min: lo, Max: hi}, nil
}

// Render prints the summary and a most-recent-first listing dump.
func Render(w io.Writer, listings []domain.Listing) error {
	s, err := Summarize(listings)
	if err != nil {
		return err
	}

	sorted := make([]domain.Listing, len(listings))
	copy(sorted, listings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedUTC > sorted[j].CreatedUTC
	})

	fmt.Fprintln(w, "\nPrice Analysis Results:")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "\nTotal listings found: %d\n", s.Count)
	fmt.Fprintf(w, "Average price: $%.2f\n", s.Mean)
	fmt.Fprintf(w, "Median price: $%.2f\n", s.Median)
	fmt.Fprintf(w, "Price range: $%.2f - $%.2f\n", s.Min, s.Max)

	fmt.Fprintln(w, "\nDetailed Listings (Most Recent First):")
	for _, l := range sorted {
		fmt.Fprintf(w, "\nDate: %s\n", l.Date)
		fmt.Fprintf(w, "Price: $%.2f\n", l.Price)
		fmt.Fprintf(w, "Venue: r/%s\n", l.Venue)
		fmt.Fprintf(w, "Seller: u/%s\n", l.Author)
		fmt.Fprintf(w, "URL: %s\n", l.URL)
		fmt.Fprintf(w, "Title: %s\n", l.Title)
	}
	return nil
}
