// Package extractor provides the pluggable price extraction strategies:
// the deterministic rule heuristic and an OpenAI-backed alternative.
package extractor

import (
	"fmt"
	"os"

	"github.com/ezouu/reddit-price-checker/internal/domain"
)

// NewExtractor selects the implementation based on EXTRACTOR_MODE
func NewExtractor() (domain.PriceExtractor, error) {
	switch mode := os.Getenv("EXTRACTOR_MODE"); mode {
	case "", "rules":
		return NewRuleExtractor(), nil
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for openai mode")
		}
		return NewOpenAIExtractor(key, os.Getenv("OPENAI_MODEL")), nil
	default:
		return nil, fmt.Errorf("unknown EXTRACTOR_MODE: %s (use 'rules' or 'openai')", mode)
	}
}
