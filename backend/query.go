package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/searchkit/resultcache"
)

// DefaultPageSize bounds result pages when the request does not set a limit.
const DefaultPageSize = 10

// Sort orders results by a field.
type Sort struct {
	Field string
	Desc  bool
}

// Request describes one search against a logical index.
type Request struct {
	// Index is the logical index id; the backend applies its prefix.
	Index string
	// Query is the full-text query string. Empty matches all documents,
	// which combined with Filters gives pure filter queries.
	Query string
	// Fields restricts full-text matching to the given fields. Empty
	// searches all fields.
	Fields []string
	// Filters are exact term constraints, field name to value.
	Filters map[string]any
	// Fuzziness overrides the backend default for this request:
	// "AUTO" or "0".."2".
	Fuzziness string
	// Offset and Limit page through results. Limit 0 means DefaultPageSize.
	Offset int
	Limit  int
	// Sort orders results; empty sorts by relevance.
	Sort []Sort
}

// Hit is one matched document.
type Hit struct {
	ID     string          `json:"id"`
	Score  float64         `json:"score"`
	Source json.RawMessage `json:"source"`
}

// Result is a page of search hits.
type Result struct {
	Total    int64         `json:"total"`
	MaxScore float64       `json:"max_score"`
	Took     time.Duration `json:"took"`
	Hits     []Hit         `json:"hits"`
}

type searchResponse struct {
	Took int64 `json:"took"`
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		MaxScore *float64 `json:"max_score"`
		Hits     []struct {
			ID     string          `json:"_id"`
			Score  float64         `json:"_score"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// searchBody translates a Request into the OpenSearch query DSL.
func (b *Backend) searchBody(req Request) map[string]any {
	var clause map[string]any
	if req.Query == "" {
		clause = map[string]any{"match_all": map[string]any{}}
	} else {
		match := map[string]any{"query": req.Query}
		if len(req.Fields) > 0 {
			match["fields"] = req.Fields
		}
		fuzziness := req.Fuzziness
		if fuzziness == "" {
			fuzziness = b.cfg.Fuzziness
		}
		if fuzziness != "" {
			match["fuzziness"] = fuzziness
		}
		clause = map[string]any{"multi_match": match}
	}

	query := clause
	if len(req.Filters) > 0 {
		filters := make([]map[string]any, 0, len(req.Filters))
		for field, value := range req.Filters {
			filters = append(filters, map[string]any{
				"term": map[string]any{field: value},
			})
		}
		query = map[string]any{
			"bool": map[string]any{
				"must":   clause,
				"filter": filters,
			},
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	body := map[string]any{
		"query": query,
		"from":  req.Offset,
		"size":  limit,
	}

	if len(req.Sort) > 0 {
		sorts := make([]map[string]any, 0, len(req.Sort))
		for _, s := range req.Sort {
			order := "asc"
			if s.Desc {
				order = "desc"
			}
			sorts = append(sorts, map[string]any{s.Field: map[string]any{"order": order}})
		}
		body["sort"] = sorts
	}

	return body
}

// Search runs the query and returns a page of hits. When a result cache is
// wired in, identical queries within the TTL are served from it.
func (b *Backend) Search(ctx context.Context, req Request) (*Result, error) {
	name := b.IndexName(req.Index)

	payload, err := json.Marshal(b.searchBody(req))
	if err != nil {
		return nil, err
	}

	var cacheKey string
	if b.cache != nil {
		cacheKey = resultcache.Key(name, payload)
		if cached, err := b.cache.Get(ctx, cacheKey); err == nil {
			var result Result
			if err := json.Unmarshal(cached, &result); err == nil {
				return &result, nil
			}
			// Undecodable entries are dropped and the query re-runs.
			_ = b.cache.Delete(ctx, cacheKey)
		}
	}

	ctx, cancel := b.opCtx(ctx)
	defer cancel()

	res, err := b.client.Search(
		b.client.Search.WithContext(ctx),
		b.client.Search.WithIndex(name),
		b.client.Search.WithBody(bytes.NewReader(payload)),
		b.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", name, err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return nil, errors.Join(ErrIndexNotFound, errors.New(name))
	}
	if res.IsError() {
		return nil, errors.Join(ErrRequestFailed, fmt.Errorf("search %s: %s", name, res.Status()))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("search %s: decode response: %w", name, err)
	}

	result := &Result{
		Total: parsed.Hits.Total.Value,
		Took:  time.Duration(parsed.Took) * time.Millisecond,
		Hits:  make([]Hit, 0, len(parsed.Hits.Hits)),
	}
	if parsed.Hits.MaxScore != nil {
		result.MaxScore = *parsed.Hits.MaxScore
	}
	for _, hit := range parsed.Hits.Hits {
		result.Hits = append(result.Hits, Hit{ID: hit.ID, Score: hit.Score, Source: hit.Source})
	}

	if b.cache != nil {
		if encoded, err := json.Marshal(result); err == nil {
			if err := b.cache.Set(ctx, cacheKey, encoded, b.cfg.ResultCacheTTL); err != nil {
				b.log.DebugContext(ctx, "result cache write failed", "error", err)
			}
		}
	}

	return result, nil
}
