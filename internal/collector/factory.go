package collector

import (
	"fmt"
	"os"

	"github.com/ezouu/reddit-price-checker/internal/domain"
)

// NewCollector selects the correct implementation based on the MODE
func NewCollector() (domain.Collector, error) {
	mode := os.Getenv("COLLECTOR_MODE")
	userAgent := os.Getenv("REDDIT_USER_AGENT")
	if userAgent == "" {
		userAgent = "script:com.redditpricechecker:v1.0 (by /u/ezouu)"
	}

	switch mode {
	case "api", "":
		return NewAPIClient(
			os.Getenv("REDDIT_CLIENT_ID"),
			os.Getenv("REDDIT_CLIENT_SECRET"),
			os.Getenv("REDDIT_USERNAME"),
			os.Getenv("REDDIT_PASSWORD"),
			userAgent,
		)
	case "public":
		return NewPublicClient(userAgent)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'api', 'public', or 'mock')", mode)
	}
}
