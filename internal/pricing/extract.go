// Package pricing picks a seller's asking price out of free-form post
// text. It is pure string heuristics: no state, no I/O, safe for any
// number of concurrent callers.
package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Candidate is a price found in scanned text, tagged with the offset of
// its first character so it can be compared against item positions
// computed on the same string.
type Candidate struct {
	Amount   float64
	Position int
	Text     string
}

var (
	// $-marked amounts: comma-grouped or plain digits, optional
	// two-digit fraction. The grouped branch needs at least one comma
	// group or leftmost-first matching would cut "$1200" down to 120.
	dollarRe = regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})+|\d+)(\.\d{2})?`)

	// Keyword-anchored whole-dollar amounts ("asking 500", "for $1200").
	keywordRe = regexp.MustCompile(`(?i)(?:asking|price|selling for|for)\s*\$?\s*(\d{1,4})`)

	// Bundle titles list items separated by these.
	segmentRe = regexp.MustCompile(`[,/|+]`)
)

// DefaultVariantSuffixes are the letters that, immediately following a
// numeric-tailed model token, mark a named variant of it rather than the
// base model (HD800S, HD800i vs HD800).
const DefaultVariantSuffixes = "si"

// Heuristic holds the tunable parts of the extraction rules. The zero
// value uses DefaultVariantSuffixes.
type Heuristic struct {
	VariantSuffixes string
}

var defaultHeuristic Heuristic

// ExtractPrice runs the default heuristic. The bool is false when no
// price could be decided; malformed input never panics or errors.
func ExtractPrice(title, body, itemName string) (float64, bool) {
	return defaultHeuristic.Extract(title, body, itemName)
}

// FindPrices returns every candidate price in text, duplicates included.
// $-marked matches come first, then keyword-anchored matches, each
// family in appearance order.
func FindPrices(text string) []Candidate {
	var out []Candidate

	for _, m := range dollarRe.FindAllStringSubmatchIndex(text, -1) {
		num := strings.ReplaceAll(text[m[2]:m[3]], ",", "")
		if m[4] >= 0 {
			num += text[m[4]:m[5]]
		}
		amount, err := strconv.ParseFloat(num, 64)
		if err != nil {
			continue
		}
		out = append(out, Candidate{
			Amount:   amount,
			Position: m[0],
			Text:     text[m[0]:m[1]],
		})
	}

	for _, m := range keywordRe.FindAllStringSubmatchIndex(text, -1) {
		digits := text[m[2]:m[3]]
		amount, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			continue
		}
		out = append(out, Candidate{
			Amount:   amount,
			Position: m[0],
			Text:     "$" + digits,
		})
	}

	return out
}

// ItemPositions returns the offsets where itemName is judged to occur in
// text, case-insensitive. Multi-token names are matched on their model
// token (the last token) with care to keep a base model from matching
// its named variants, and vice versa.
func (h Heuristic) ItemPositions(text, itemName string) []int {
	text = strings.ToLower(text)
	itemName = strings.ToLower(itemName)

	parts := strings.Fields(itemName)
	var positions []int

	if len(parts) > 1 {
		model := parts[len(parts)-1]
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(model))
		baseModel := !letterTailed(model)

		for _, m := range re.FindAllStringIndex(text, -1) {
			next := text[m[1]:min(m[1]+2, len(text))]

			if baseModel {
				// HD800 must not count HD800S / HD800i sightings.
				if next == "" || !strings.ContainsRune(h.suffixes(), rune(next[0])) {
					positions = append(positions, m[0])
				}
			} else {
				// HD800S is already specific: reject any further
				// alphanumeric continuation.
				if next == "" || !alnumLead(next) {
					positions = append(positions, m[0])
				}
			}
		}
		return positions
	}

	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(itemName) + `\b`)
	for _, m := range re.FindAllStringIndex(text, -1) {
		positions = append(positions, m[0])
	}
	return positions
}

// Extract locates the asking price for itemName in a post's title and
// body. Resolution order: unambiguous title, bundle-split title segment,
// then nearest candidate in the full text with a preference for prices
// stated after the item name.
func (h Heuristic) Extract(title, body, itemName string) (float64, bool) {
	title = strings.ToLower(title)
	itemName = strings.ToLower(itemName)

	titlePrices := FindPrices(title)
	titlePositions := h.ItemPositions(title, itemName)

	// One item, one price in the title: done.
	if len(titlePositions) == 1 && len(titlePrices) == 1 {
		return titlePrices[0].Amount, true
	}

	// Bundle title like "Item A $100 / Item B $200": take the first
	// segment naming the item with exactly one price.
	if len(titlePositions) > 0 && len(titlePrices) > 0 {
		for _, part := range segmentRe.Split(title, -1) {
			if !strings.Contains(part, itemName) {
				continue
			}
			if pp := FindPrices(part); len(pp) == 1 {
				return pp[0].Amount, true
			}
		}
	}

	full := title + "\n" + strings.ToLower(body)
	prices := FindPrices(full)
	positions := h.ItemPositions(full, itemName)
	if len(prices) == 0 || len(positions) == 0 {
		return 0, false
	}

	// Nested scan keeps ties deterministic: ascending item offsets
	// outer, appearance-order candidates inner, first smallest wins.
	var best float64
	minDist := math.Inf(1)
	for _, pos := range positions {
		for _, c := range prices {
			dist := math.Abs(float64(c.Position - pos))
			if c.Position > pos {
				// Sellers state the item then the price.
				dist *= 0.5
			}
			if dist < minDist {
				minDist = dist
				best = c.Amount
			}
		}
	}
	return best, true
}

func (h Heuristic) suffixes() string {
	if h.VariantSuffixes == "" {
		return DefaultVariantSuffixes
	}
	return h.VariantSuffixes
}

// letterTailed reports whether the last two characters of a model token
// contain a letter. "HD800S" is letter-tailed, "HD800" is not.
func letterTailed(model string) bool {
	tail := model
	if len(model) > 2 {
		tail = model[len(model)-2:]
	}
	for _, r := range tail {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func alnumLead(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
