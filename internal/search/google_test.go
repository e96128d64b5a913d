package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemsJSON = `{
  "items": [
    {"title": "Result one", "snippet": "first", "link": "https://example.com/1"},
    {"title": "Result two", "snippet": "second", "link": "https://example.com/2"},
    {"title": "Result three", "snippet": "third", "link": "https://example.com/3"}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *GoogleCSE {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	g := NewGoogleCSE("test-key", "test-cx")
	g.Endpoint = srv.URL
	return g
}

func TestGoogleCSESearch(t *testing.T) {
	var gotQuery, gotNum, gotKey, gotCX string
	g := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotNum = r.URL.Query().Get("num")
		gotKey = r.URL.Query().Get("key")
		gotCX = r.URL.Query().Get("cx")
		w.Write([]byte(itemsJSON))
	})

	results, err := g.Search(context.Background(), "Acme Bank industry sector", 2)
	require.NoError(t, err)
	assert.Equal(t, "Acme Bank industry sector", gotQuery)
	assert.Equal(t, "2", gotNum)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "test-cx", gotCX)

	// The response is capped at maxResults.
	require.Len(t, results, 2)
	assert.Equal(t, "Result one", results[0].Title)
	assert.Equal(t, "first", results[0].Snippet)
	assert.Equal(t, "https://example.com/1", results[0].Link)
}

func TestGoogleCSENumCappedAtAPIMax(t *testing.T) {
	var gotNum string
	g := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotNum = r.URL.Query().Get("num")
		w.Write([]byte(`{}`))
	})

	results, err := g.Search(context.Background(), "q", 50)
	require.NoError(t, err)
	assert.Equal(t, "10", gotNum)
	assert.Empty(t, results)
}

func TestGoogleCSEHTTPError(t *testing.T) {
	g := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})

	_, err := g.Search(context.Background(), "q", 5)
	require.Error(t, err)

	var searchErr *SearchError
	require.True(t, errors.As(err, &searchErr))
	assert.Equal(t, "q", searchErr.Query)
}

func TestGoogleCSEMissingCredentials(t *testing.T) {
	g := NewGoogleCSE("", "")
	_, err := g.Search(context.Background(), "q", 5)

	var searchErr *SearchError
	require.True(t, errors.As(err, &searchErr))
}

func TestGoogleCSENoItems(t *testing.T) {
	g := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"searchInformation": {"totalResults": "0"}}`))
	})

	results, err := g.Search(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
