package ingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ezouu/reddit-price-checker/internal/domain"
)

// Regex for valid subreddit names
var venueNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,21}$`)

// DefaultVenues is used when no venue file is present.
var DefaultVenues = []domain.Venue{
	{Name: "avexchange", Description: "Audio equipment"},
	{Name: "photomarket", Description: "Photography equipment"},
	{Name: "hardwareswap", Description: "Computer hardware"},
	{Name: "mechmarket", Description: "Mechanical keyboards"},
	{Name: "Watchexchange", Description: "Watches"},
}

// LoadVenues reads a venue CSV (name,description with a header row).
// Rows that fail subreddit-name validation are skipped, not fatal.
func LoadVenues(path string) ([]domain.Venue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Wrap in BOM stripper
	r := csv.NewReader(stripBOM(f))
	r.FieldsPerRecord = -1

	var venues []domain.Venue
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		line++
		if line == 1 {
			continue // Skip header
		}
		if len(record) == 0 {
			continue
		}

		// Validation (Fail-Soft)
		name := strings.TrimSpace(record[0])
		if !venueNameRegex.MatchString(name) {
			continue
		}

		desc := ""
		if len(record) > 1 {
			desc = strings.TrimSpace(record[1])
		}

		venues = append(venues, domain.Venue{Name: name, Description: desc})
	}
	return venues, nil
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rdr != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
