package backend

import (
	"errors"
	"fmt"
)

// Analyzer and filter names are namespaced to avoid clashing with analyzers
// already present on shared clusters.
const (
	indexAnalyzer   = "searchkit_index_text"
	queryAnalyzer   = "searchkit_query_text"
	edgeNGramFilter = "searchkit_edge_ngram"
	synonymFilter   = "searchkit_synonyms"
)

// analysisSettings builds the index analysis block: an edge n-gram filter for
// prefix matching bounded by the configured gram sizes, plus an optional
// synonym filter. The query-time analyzer omits the n-gram expansion so terms
// match against the indexed grams instead of being expanded twice.
func (b *Backend) analysisSettings() map[string]any {
	filters := map[string]any{
		edgeNGramFilter: map[string]any{
			"type":     "edge_ngram",
			"min_gram": b.cfg.MinNGram,
			"max_gram": b.cfg.MaxNGram,
		},
	}

	indexChain := []string{"lowercase"}
	queryChain := []string{"lowercase"}

	if len(b.synonyms) > 0 {
		filters[synonymFilter] = map[string]any{
			"type":     "synonym",
			"synonyms": synonymRules(b.synonyms),
		}
		indexChain = append(indexChain, synonymFilter)
		queryChain = append(queryChain, synonymFilter)
	}
	indexChain = append(indexChain, edgeNGramFilter)

	return map[string]any{
		"filter": filters,
		"analyzer": map[string]any{
			indexAnalyzer: map[string]any{
				"type":      "custom",
				"tokenizer": "standard",
				"filter":    indexChain,
			},
			queryAnalyzer: map[string]any{
				"type":      "custom",
				"tokenizer": "standard",
				"filter":    queryChain,
			},
		},
	}
}

// indexBody assembles the full create-index body: settings (shards, replicas,
// analysis) and mappings. Text fields without an explicit analyzer get the
// backend's analyzers attached. Fails with ErrUnsupportedFieldType when a
// property declares a type nothing supports.
func (b *Backend) indexBody(properties map[string]any) (map[string]any, error) {
	mapped := make(map[string]any, len(properties))
	for name, prop := range properties {
		def, ok := prop.(map[string]any)
		if !ok {
			return nil, errors.Join(ErrUnsupportedFieldType,
				fmt.Errorf("field %q: mapping must be an object", name))
		}

		fieldType, _ := def["type"].(string)
		if fieldType != "" && !b.SupportsFieldType(fieldType) {
			return nil, errors.Join(ErrUnsupportedFieldType,
				fmt.Errorf("field %q: type %q", name, fieldType))
		}

		if fieldType == "text" {
			def = cloneMap(def)
			if _, set := def["analyzer"]; !set {
				def["analyzer"] = indexAnalyzer
				def["search_analyzer"] = queryAnalyzer
			}
		}
		mapped[name] = def
	}

	return map[string]any{
		"settings": map[string]any{
			"number_of_shards":   b.cfg.Shards,
			"number_of_replicas": b.cfg.Replicas,
			"analysis":           b.analysisSettings(),
		},
		"mappings": map[string]any{
			"properties": mapped,
		},
	}, nil
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
