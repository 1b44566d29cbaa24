package extractor

import (
	"context"
	"testing"
)

func TestRuleExtractor(t *testing.T) {
	e := NewRuleExtractor()

	price, ok, err := e.ExtractPrice(context.Background(), "Sony A7III for sale $800", "", "Sony A7III")
	if err != nil {
		t.Fatalf("rule extractor must not error: %v", err)
	}
	if !ok || price != 800.0 {
		t.Errorf("expected 800.0, got %v (ok=%v)", price, ok)
	}

	_, ok, err = e.ExtractPrice(context.Background(), "Random post", "No price here", "Sony A7III")
	if err != nil {
		t.Fatalf("rule extractor must not error: %v", err)
	}
	if ok {
		t.Error("expected no price")
	}
}

func TestParseReply(t *testing.T) {
	tests := []struct {
		reply string
		want  float64
		found bool
	}{
		{"500", 500.0, true},
		{"1200.50", 1200.50, true},
		{"$1,200.50", 1200.50, true},
		{" 750 \n", 750.0, true},
		{"None", 0, false},
		{"none", 0, false},
		{"no price found", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, found := ParseReply(tt.reply)
		if found != tt.found || got != tt.want {
			t.Errorf("ParseReply(%q) = (%v, %v), want (%v, %v)", tt.reply, got, found, tt.want, tt.found)
		}
	}
}
