package dataflows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultSerperBaseURL = "https://google.serper.dev"

// SerperClient wraps the Serper.dev Google search API. It is the web-search
// capability handed to the analyst agent.
type SerperClient struct {
	client *resty.Client
	apiKey string
}

// NewSerperClient creates a new Serper search client.
func NewSerperClient(apiKey string) *SerperClient {
	client := resty.New()
	client.SetBaseURL(defaultSerperBaseURL)
	client.SetTimeout(30 * time.Second)

	return &SerperClient{
		client: client,
		apiKey: apiKey,
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (sc *SerperClient) SetBaseURL(url string) {
	sc.client.SetBaseURL(url)
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type serperResult struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
		Date    string `json:"date"`
	} `json:"organic"`
}

// Search runs one web search and flattens the organic results into a block
// of text the agent can read. maxResults caps how many hits are included.
func (sc *SerperClient) Search(ctx context.Context, query string, maxResults int) (string, error) {
	if sc.apiKey == "" {
		return "", fmt.Errorf("serper API key not configured")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("search query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	resp, err := sc.client.R().
		SetContext(ctx).
		SetHeader("X-API-KEY", sc.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(serperRequest{Query: query, Num: maxResults}).
		Post("/search")
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("search API error %d: %s", resp.StatusCode(), resp.String())
	}

	var result serperResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse search response: %w", err)
	}

	if len(result.Organic) == 0 {
		return "No results found.", nil
	}

	var b strings.Builder
	for i, hit := range result.Organic {
		if i >= maxResults {
			break
		}
		fmt.Fprintf(&b, "%d. %s", i+1, hit.Title)
		if hit.Date != "" {
			fmt.Fprintf(&b, " (%s)", hit.Date)
		}
		b.WriteString("\n")
		if hit.Snippet != "" {
			b.WriteString(hit.Snippet)
			b.WriteString("\n")
		}
		b.WriteString(hit.Link)
		b.WriteString("\n\n")
	}

	return strings.TrimSpace(b.String()), nil
}
