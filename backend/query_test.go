package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/backend"
	"github.com/dmitrymomot/searchkit/resultcache"
)

const searchResponse = `{
	"took": 7,
	"hits": {
		"total": {"value": 2, "relation": "eq"},
		"max_score": 1.5,
		"hits": [
			{"_id": "doc-1", "_score": 1.5, "_source": {"title": "first"}},
			{"_id": "doc-2", "_score": 0.8, "_source": {"title": "second"}}
		]
	}
}`

func searchRequestBody(t *testing.T, h *recordingHandler) map[string]any {
	t.Helper()
	req := h.last(t)
	assert.Equal(t, "/testapp_content/_search", req.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	return body
}

func TestSearch(t *testing.T) {
	t.Run("full text query", func(t *testing.T) {
		h := &recordingHandler{response: searchResponse}
		b := newTestBackend(t, h)

		result, err := b.Search(context.Background(), backend.Request{
			Index:  "content",
			Query:  "opensearch",
			Fields: []string{"title", "body"},
		})
		require.NoError(t, err)

		assert.EqualValues(t, 2, result.Total)
		assert.Equal(t, 1.5, result.MaxScore)
		assert.Equal(t, 7*time.Millisecond, result.Took)
		require.Len(t, result.Hits, 2)
		assert.Equal(t, "doc-1", result.Hits[0].ID)
		assert.JSONEq(t, `{"title": "first"}`, string(result.Hits[0].Source))

		body := searchRequestBody(t, h)
		match := body["query"].(map[string]any)["multi_match"].(map[string]any)
		assert.Equal(t, "opensearch", match["query"])
		assert.Equal(t, []any{"title", "body"}, match["fields"])
		assert.Equal(t, "AUTO", match["fuzziness"], "backend default applies")
		assert.EqualValues(t, 0, body["from"])
		assert.EqualValues(t, backend.DefaultPageSize, body["size"])
	})

	t.Run("empty query matches all", func(t *testing.T) {
		h := &recordingHandler{response: searchResponse}
		b := newTestBackend(t, h)

		_, err := b.Search(context.Background(), backend.Request{Index: "content"})
		require.NoError(t, err)

		body := searchRequestBody(t, h)
		assert.Contains(t, body["query"].(map[string]any), "match_all")
	})

	t.Run("request fuzziness overrides default", func(t *testing.T) {
		h := &recordingHandler{response: searchResponse}
		b := newTestBackend(t, h)

		_, err := b.Search(context.Background(), backend.Request{
			Index:     "content",
			Query:     "opensearch",
			Fuzziness: "1",
		})
		require.NoError(t, err)

		match := searchRequestBody(t, h)["query"].(map[string]any)["multi_match"].(map[string]any)
		assert.Equal(t, "1", match["fuzziness"])
	})

	t.Run("filters wrap the clause in bool", func(t *testing.T) {
		h := &recordingHandler{response: searchResponse}
		b := newTestBackend(t, h)

		_, err := b.Search(context.Background(), backend.Request{
			Index:   "content",
			Query:   "opensearch",
			Filters: map[string]any{"status": "published"},
		})
		require.NoError(t, err)

		boolQuery := searchRequestBody(t, h)["query"].(map[string]any)["bool"].(map[string]any)
		assert.Contains(t, boolQuery["must"].(map[string]any), "multi_match")

		filters := boolQuery["filter"].([]any)
		require.Len(t, filters, 1)
		term := filters[0].(map[string]any)["term"].(map[string]any)
		assert.Equal(t, "published", term["status"])
	})

	t.Run("paging and sort", func(t *testing.T) {
		h := &recordingHandler{response: searchResponse}
		b := newTestBackend(t, h)

		_, err := b.Search(context.Background(), backend.Request{
			Index:  "content",
			Offset: 20,
			Limit:  5,
			Sort: []backend.Sort{
				{Field: "published_at", Desc: true},
				{Field: "title"},
			},
		})
		require.NoError(t, err)

		body := searchRequestBody(t, h)
		assert.EqualValues(t, 20, body["from"])
		assert.EqualValues(t, 5, body["size"])

		sorts := body["sort"].([]any)
		require.Len(t, sorts, 2)
		first := sorts[0].(map[string]any)["published_at"].(map[string]any)
		assert.Equal(t, "desc", first["order"])
		second := sorts[1].(map[string]any)["title"].(map[string]any)
		assert.Equal(t, "asc", second["order"])
	})

	t.Run("missing index", func(t *testing.T) {
		h := &recordingHandler{status: http.StatusNotFound, response: `{"error":{"type":"index_not_found_exception"}}`}
		b := newTestBackend(t, h)

		_, err := b.Search(context.Background(), backend.Request{Index: "content", Query: "x"})
		assert.ErrorIs(t, err, backend.ErrIndexNotFound)
	})
}

func TestSearchResultCache(t *testing.T) {
	h := &recordingHandler{response: searchResponse}
	b := newTestBackend(t, h, backend.WithResultCache(resultcache.NewMemoryStore(16)))

	req := backend.Request{Index: "content", Query: "opensearch"}

	first, err := b.Search(context.Background(), req)
	require.NoError(t, err)
	second, err := b.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	h.mu.Lock()
	hits := len(h.requests)
	h.mu.Unlock()
	assert.Equal(t, 1, hits, "identical query within the TTL is served from cache")

	// A different request misses the cache and goes to the cluster.
	_, err = b.Search(context.Background(), backend.Request{Index: "content", Query: "other"})
	require.NoError(t, err)

	h.mu.Lock()
	hits = len(h.requests)
	h.mu.Unlock()
	assert.Equal(t, 2, hits)
}
