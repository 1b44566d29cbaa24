package collector

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"github.com/ezouu/reddit-price-checker/internal/domain"
)

// MockClient implements domain.Collector but returns fake sale posts
type MockClient struct{}

var quotedTermRe = regexp.MustCompile(`"([^"\[\]]+)"`)

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) SearchPosts(ctx context.Context, venue, query, timeFilter string, limit int) ([]domain.Post, error) {
	// Simulate network latency (nice for testing concurrency)
	time.Sleep(500 * time.Millisecond)

	// Echo the searched term back into the fake listings so the
	// extractor has something to find.
	term := "Mystery Item"
	if m := quotedTermRe.FindStringSubmatch(query); m != nil {
		term = m[1]
	}

	if limit > 5 {
		limit = 5
	}

	var posts []domain.Post
	for i := 0; i < limit; i++ {
		price := 300 + rand.Intn(700)
		posts = append(posts, domain.Post{
			ID:           fmt.Sprintf("mock_%s_%d", venue, i),
			Title:        fmt.Sprintf("[WTS] %s - $%d", term, price),
			Body:         fmt.Sprintf("Selling my %s, asking $%d shipped CONUS.", term, price),
			Subreddit:    "r/" + venue,
			Author:       "simulated_seller",
			URL:          "http://localhost/mock-url",
			Score:        rand.Intn(500),
			CommentCount: rand.Intn(50),
			CreatedUTC:   float64(time.Now().Unix()),
		})
	}
	return posts, nil
}
