// Package config holds the run parameters that the original interactive
// prompts used to collect, as one explicit structure.
package config

import (
	"fmt"
	"os"
)

// Config carries everything a scan needs. Built from flags and env in
// main, then passed down; nothing here is mutated mid-run.
type Config struct {
	Item     string
	MinPrice float64
	MaxPrice float64
	DaysBack int
	Venues   []string
	Limit    int
	DataFile string
	Port     string
	Serve    bool
}

// Default returns the values the original script assumed.
func Default() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return Config{
		DaysBack: 30,
		Limit:    100,
		DataFile: "data/listings.json",
		Port:     port,
		Venues:   []string{"avexchange", "photomarket"},
	}
}

func (c Config) Validate() error {
	if c.Item == "" {
		return fmt.Errorf("item name is required")
	}
	if c.MinPrice <= 0 {
		return fmt.Errorf("minimum price must be greater than zero")
	}
	if c.MaxPrice <= c.MinPrice {
		return fmt.Errorf("maximum price must be greater than minimum price")
	}
	if c.DaysBack <= 0 {
		return fmt.Errorf("days back must be positive")
	}
	if len(c.Venues) == 0 {
		return fmt.Errorf("at least one venue is required")
	}
	return nil
}

var redditCredentialVars = []string{
	"REDDIT_CLIENT_ID",
	"REDDIT_CLIENT_SECRET",
	"REDDIT_USERNAME",
	"REDDIT_PASSWORD",
}

// MissingCredentials lists the credential env vars the given collector
// mode needs but that are unset. Empty means ready to go.
func MissingCredentials(collectorMode string) []string {
	var missing []string
	switch collectorMode {
	case "", "api":
		for _, v := range redditCredentialVars {
			if os.Getenv(v) == "" {
				missing = append(missing, v)
			}
		}
	}
	if os.Getenv("EXTRACTOR_MODE") == "openai" && os.Getenv("OPENAI_API_KEY") == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	return missing
}
