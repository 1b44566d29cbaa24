package extractor

import (
	"context"

	"github.com/ezouu/reddit-price-checker/internal/pricing"
)

// RuleExtractor adapts the pure pricing heuristic to the PriceExtractor
// contract. It never errors.
type RuleExtractor struct {
	Heuristic pricing.Heuristic
}

func NewRuleExtractor() *RuleExtractor {
	return &RuleExtractor{}
}

func (e *RuleExtractor) ExtractPrice(ctx context.Context, title, body, itemName string) (float64, bool, error) {
	price, ok := e.Heuristic.Extract(title, body, itemName)
	return price, ok, nil
}
