package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"usecase-gen/internal/model"
)

const googleEndpoint = "https://www.googleapis.com/customsearch/v1"

// The Custom Search JSON API rejects num values above 10.
const googleMaxNum = 10

// GoogleCSE calls the Google Custom Search JSON API. An API key and a custom
// search engine ID (cx) are required.
type GoogleCSE struct {
	APIKey string
	CX     string
	// Endpoint overrides the API base URL, mainly for tests.
	Endpoint string
	client   *http.Client
}

// NewGoogleCSE constructs a Google Custom Search client.
func NewGoogleCSE(apiKey, cx string) *GoogleCSE {
	return &GoogleCSE{APIKey: apiKey, CX: cx, client: &http.Client{Timeout: 10 * time.Second}}
}

// NewGoogleCSEWithClient constructs a client using the supplied HTTP client.
// This is useful for overriding the default timeout.
func NewGoogleCSEWithClient(apiKey, cx string, client *http.Client) *GoogleCSE {
	return &GoogleCSE{APIKey: apiKey, CX: cx, client: client}
}

// Search executes one query and returns at most maxResults items.
func (g *GoogleCSE) Search(ctx context.Context, query string, maxResults int) ([]model.SearchResultItem, error) {
	if strings.TrimSpace(g.APIKey) == "" || strings.TrimSpace(g.CX) == "" {
		return nil, &SearchError{Query: query, Err: errors.New("google cse: API key or cx is missing")}
	}
	if maxResults <= 0 {
		maxResults = 5
	}
	if maxResults > googleMaxNum {
		maxResults = googleMaxNum
	}

	endpoint := g.Endpoint
	if endpoint == "" {
		endpoint = googleEndpoint
	}
	params := url.Values{}
	params.Set("key", g.APIKey)
	params.Set("cx", g.CX)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &SearchError{Query: query, Err: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &SearchError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SearchError{Query: query, Err: fmt.Errorf("google cse http %d", resp.StatusCode)}
	}

	var response struct {
		Items []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &SearchError{Query: query, Err: err}
	}

	results := make([]model.SearchResultItem, 0, len(response.Items))
	for _, item := range response.Items {
		results = append(results, model.SearchResultItem{Title: item.Title, Snippet: item.Snippet, Link: item.Link})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}
