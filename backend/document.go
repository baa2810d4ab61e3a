package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Document is one unit of indexable content. A missing ID gets a generated
// UUID during indexing.
type Document struct {
	ID     string
	Fields map[string]any
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		ID     string `json:"_id"`
		Status int    `json:"status"`
		Error  *struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

// IndexDocuments adds or replaces documents in the index via one bulk request
// and returns the document ids in input order, including generated ones.
// Individual rejections surface as ErrPartialBulkFailure naming the ids.
func (b *Backend) IndexDocuments(ctx context.Context, id string, docs ...Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	name := b.IndexName(id)
	ids := make([]string, len(docs))

	var body strings.Builder
	for i, doc := range docs {
		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}
		ids[i] = doc.ID

		meta, err := json.Marshal(map[string]any{"index": map[string]any{"_index": name, "_id": doc.ID}})
		if err != nil {
			return nil, err
		}
		source, err := json.Marshal(doc.Fields)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", doc.ID, err)
		}

		body.Write(meta)
		body.WriteByte('\n')
		body.Write(source)
		body.WriteByte('\n')
	}

	if err := b.bulk(ctx, name, body.String()); err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteDocuments removes documents by id via one bulk request. Missing
// documents are ignored; OpenSearch reports them as not_found, not as errors.
func (b *Backend) DeleteDocuments(ctx context.Context, id string, docIDs ...string) error {
	if len(docIDs) == 0 {
		return nil
	}

	name := b.IndexName(id)

	var body strings.Builder
	for _, docID := range docIDs {
		meta, err := json.Marshal(map[string]any{"delete": map[string]any{"_index": name, "_id": docID}})
		if err != nil {
			return err
		}
		body.Write(meta)
		body.WriteByte('\n')
	}

	return b.bulk(ctx, name, body.String())
}

func (b *Backend) bulk(ctx context.Context, name, body string) error {
	ctx, cancel := b.opCtx(ctx)
	defer cancel()

	res, err := b.client.Bulk(
		strings.NewReader(body),
		b.client.Bulk.WithIndex(name),
		b.client.Bulk.WithContext(ctx),
		b.client.Bulk.WithRefresh("wait_for"),
	)
	if err != nil {
		return fmt.Errorf("bulk %s: %w", name, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.Join(ErrRequestFailed, fmt.Errorf("bulk %s: %s", name, res.Status()))
	}

	var parsed bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("bulk %s: decode response: %w", name, err)
	}
	if !parsed.Errors {
		return nil
	}

	var failed []string
	for _, item := range parsed.Items {
		for op, result := range item {
			// Deletes of absent documents come back as 404 without an error
			// object; that is expected and not a failure.
			if result.Error == nil {
				continue
			}
			failed = append(failed, fmt.Sprintf("%s %s: %s", op, result.ID, result.Error.Reason))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return errors.Join(ErrPartialBulkFailure, errors.New(strings.Join(failed, "; ")))
}

// Clear removes every document from the index while keeping its settings and
// mappings intact.
func (b *Backend) Clear(ctx context.Context, id string) error {
	ctx, cancel := b.opCtx(ctx)
	defer cancel()

	name := b.IndexName(id)
	res, err := b.client.DeleteByQuery(
		[]string{name},
		strings.NewReader(`{"query":{"match_all":{}}}`),
		b.client.DeleteByQuery.WithContext(ctx),
		b.client.DeleteByQuery.WithRefresh(true),
	)
	if err != nil {
		return fmt.Errorf("clear index %s: %w", name, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.Join(ErrRequestFailed, fmt.Errorf("clear index %s: %s", name, res.Status()))
	}

	b.log.InfoContext(ctx, "index cleared", "index", name)
	return nil
}
