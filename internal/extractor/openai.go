package extractor

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are a helpful assistant that extracts price information from Reddit posts. Only respond with the numeric price value or 'None'."

var nonNumericRe = regexp.MustCompile(`[^\d.]`)

// OpenAIExtractor asks a chat model for the asking price. It is the
// non-deterministic alternative to RuleExtractor; timeout and retry
// policy live here, at the network boundary.
type OpenAIExtractor struct {
	client  openai.Client
	model   string
	timeout time.Duration
	retries int
}

func NewOpenAIExtractor(apiKey, model string) *OpenAIExtractor {
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &OpenAIExtractor{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: 30 * time.Second,
		retries: 3,
	}
}

func (e *OpenAIExtractor) ExtractPrice(ctx context.Context, title, body, itemName string) (float64, bool, error) {
	prompt := fmt.Sprintf(`Extract the selling price for a %s from this Reddit post.
If multiple prices are mentioned, determine which one corresponds to the %s.
If a price range is given, use the lower price.
Only respond with the numeric price value (e.g., "500" or "1200.50").
If no clear price is found, respond with "None".

Post Title: %s
Post Content: %s`, itemName, itemName, title, body)

	var lastErr error
	for attempt := 0; attempt < e.retries; attempt++ {
		reply, err := e.complete(ctx, prompt, 10)
		if err != nil {
			lastErr = err
			continue
		}
		price, ok := ParseReply(reply)
		return price, ok, nil
	}
	return 0, false, fmt.Errorf("openai extraction failed after %d attempts: %w", e.retries, lastErr)
}

// Verify makes a minimal API call to confirm the key works, so bad
// credentials fail at startup instead of mid-scan.
func (e *OpenAIExtractor) Verify(ctx context.Context) error {
	reply, err := e.complete(ctx, "Respond with the word 'connected'", 5)
	if err != nil {
		return fmt.Errorf("openai connection test failed: %w", err)
	}
	if !strings.EqualFold(strings.TrimSpace(reply), "connected") {
		return fmt.Errorf("openai connection test: unexpected reply %q", reply)
	}
	return nil
}

func (e *OpenAIExtractor) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// ParseReply turns a model reply into a price. "None" and unparseable
// replies mean no price was found.
func ParseReply(reply string) (float64, bool) {
	reply = strings.TrimSpace(reply)
	if strings.EqualFold(reply, "none") {
		return 0, false
	}
	cleaned := nonNumericRe.ReplaceAllString(reply, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
