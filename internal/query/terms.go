// Package query builds Reddit search inputs: spelling variations of an
// item name, sale-tag queries, and coarse time filters.
package query

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// SaleTags restricts a search to selling posts by title convention.
const SaleTags = `(title:"[WTS]" OR title:"[S]")`

var (
	spaceRe       = regexp.MustCompile(`\s+`)
	letterDigitRe = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)
)

// Variations expands an item name into spelling variants (spacing, case,
// hyphenation) to widen search recall while keeping the model token
// intact. The collapsed original is always included. Returned sorted and
// deduplicated.
func Variations(itemName string) []string {
	base := strings.TrimSpace(spaceRe.ReplaceAllString(itemName, " "))

	set := map[string]struct{}{base: {}}
	add := func(s string) { set[s] = struct{}{} }

	parts := strings.Fields(base)
	if len(parts) > 1 {
		model := parts[len(parts)-1]
		brand := strings.Join(parts[:len(parts)-1], " ")

		add(brand + model)
		add(brand + "-" + model)
		add(model)

		add(strings.ToLower(base))
		add(strings.ToUpper(base))
		add(titleCase(base))

		// Model tokens like HD800: also try the letters and digits
		// split apart and rejoined.
		if m := letterDigitRe.FindStringSubmatch(model); m != nil {
			add(brand + " " + m[1] + " " + m[2])
			add(brand + " " + m[1] + m[2])
		}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ModelToken returns the last whitespace-separated part of an item name,
// the most distinguishing piece for broad fallback searches. Empty when
// the name has fewer than two parts.
func ModelToken(itemName string) string {
	parts := strings.Fields(itemName)
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

// Build returns a sale-tagged search query matching term in the title or
// body of a post.
func Build(term string) string {
	return fmt.Sprintf(`(title:"%s" OR selftext:"%s") AND %s`, term, term, SaleTags)
}

// BuildBroad returns the last-resort query matching term in titles only.
func BuildBroad(term string) string {
	return fmt.Sprintf(`title:"%s" AND %s`, term, SaleTags)
}

// TimeFilter maps a look-back window in days to Reddit's search buckets.
func TimeFilter(days int) string {
	switch {
	case days <= 1:
		return "day"
	case days <= 7:
		return "week"
	case days <= 31:
		return "month"
	case days <= 365:
		return "year"
	default:
		return "all"
	}
}

// titleCase upper-cases any letter that follows a non-letter and
// lower-cases the rest, so "sony a7iii" becomes "Sony A7Iii".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
