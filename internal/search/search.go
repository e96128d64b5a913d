package search

import (
	"context"
	"fmt"

	"usecase-gen/internal/model"
)

// Client executes a text query and returns a bounded list of results.
// Implementations are stateless apart from connection pooling and safe to
// reuse across pipeline runs.
type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.SearchResultItem, error)
}

// SearchError wraps a failed search API call with the query that caused it.
// Agents catch it and degrade to zero results for that query.
type SearchError struct {
	Query string
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %q: %v", e.Query, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }
