package query

import (
	"reflect"
	"sort"
	"testing"
)

func TestVariations_MultiToken(t *testing.T) {
	got := Variations("Sony A7III")

	want := []string{
		"Sony A7III",
		"SonyA7III",
		"Sony-A7III",
		"A7III",
		"sony a7iii",
		"SONY A7III",
		"Sony A7Iii",
	}
	sort.Strings(want)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variations(Sony A7III):\n got %v\nwant %v", got, want)
	}
}

func TestVariations_LetterDigitModel(t *testing.T) {
	got := Variations("Sennheiser HD800")

	for _, v := range []string{"Sennheiser HD 800", "Sennheiser HD800"} {
		if !contains(got, v) {
			t.Errorf("expected %q in variations, got %v", v, got)
		}
	}
}

func TestVariations_SingleToken(t *testing.T) {
	got := Variations("HD800")
	if !reflect.DeepEqual(got, []string{"HD800"}) {
		t.Errorf("single token should yield only itself, got %v", got)
	}
}

func TestVariations_CollapsesWhitespace(t *testing.T) {
	got := Variations("  Sony\t A7III ")
	if !contains(got, "Sony A7III") {
		t.Errorf("expected whitespace-collapsed original in %v", got)
	}

	// Idempotence: re-running on the collapsed base includes itself.
	again := Variations("Sony A7III")
	if !contains(again, "Sony A7III") {
		t.Errorf("expected base form in its own variations, got %v", again)
	}
}

func TestVariations_NeverEmpty(t *testing.T) {
	for _, name := range []string{"HD800", "Sony A7III", "x", "a b c"} {
		if len(Variations(name)) == 0 {
			t.Errorf("Variations(%q) returned an empty set", name)
		}
	}
}

func TestModelToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sony A7III", "A7III"},
		{"Audeze LCD 2", "2"},
		{"HD800", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ModelToken(tt.in); got != tt.want {
			t.Errorf("ModelToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	got := Build("HD800")
	want := `(title:"HD800" OR selftext:"HD800") AND (title:"[WTS]" OR title:"[S]")`
	if got != want {
		t.Errorf("Build:\n got %s\nwant %s", got, want)
	}
}

func TestBuildBroad(t *testing.T) {
	got := BuildBroad("A7III")
	want := `title:"A7III" AND (title:"[WTS]" OR title:"[S]")`
	if got != want {
		t.Errorf("BuildBroad:\n got %s\nwant %s", got, want)
	}
}

func TestTimeFilter(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{1, "day"},
		{2, "week"},
		{7, "week"},
		{8, "month"},
		{31, "month"},
		{32, "year"},
		{365, "year"},
		{366, "all"},
	}
	for _, tt := range tests {
		if got := TimeFilter(tt.days); got != tt.want {
			t.Errorf("TimeFilter(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
