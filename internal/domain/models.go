package domain

import "context"

// Venue is a marketplace subreddit to scan
type Venue struct {
	Name        string
	Description string
}

// Post is the raw search hit before price extraction
type Post struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Body         string  `json:"body"`
	Subreddit    string  `json:"subreddit"`
	Author       string  `json:"author"`
	URL          string  `json:"url"`
	Score        int     `json:"score"`
	CommentCount int     `json:"comment_count"`
	CreatedUTC   float64 `json:"created_utc"`
}

// Listing is a priced sale post kept after range and recency filtering
type Listing struct {
	Venue      string  `json:"venue"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Date       string  `json:"date"`
	Author     string  `json:"author"`
	Price      float64 `json:"price"`
	CreatedUTC float64 `json:"created_utc"`
}

// Collector defines the interface for searching sale posts
type Collector interface {
	SearchPosts(ctx context.Context, venue, query, timeFilter string, limit int) ([]Post, error)
}

// PriceExtractor decides a post's asking price. The bool reports whether
// a price was found; err is reserved for network-backed implementations.
type PriceExtractor interface {
	ExtractPrice(ctx context.Context, title, body, itemName string) (float64, bool, error)
}
