package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// IndexName returns the physical index name for a logical index id, applying
// the configured prefix. Names are lowercased since OpenSearch rejects
// uppercase index names.
func (b *Backend) IndexName(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if b.cfg.IndexPrefix == "" {
		return id
	}
	return strings.ToLower(b.cfg.IndexPrefix) + "_" + id
}

// CreateIndex creates the index for the given logical id with the backend's
// settings (shards, replicas, analysis) and the supplied mapping properties.
func (b *Backend) CreateIndex(ctx context.Context, id string, properties map[string]any) error {
	body, err := b.indexBody(properties)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	ctx, cancel := b.opCtx(ctx)
	defer cancel()

	name := b.IndexName(id)
	res, err := b.client.Indices.Create(
		name,
		b.client.Indices.Create.WithBody(bytes.NewReader(payload)),
		b.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("create index %s: %w", name, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.Join(ErrRequestFailed, fmt.Errorf("create index %s: %s", name, res.Status()))
	}

	b.log.InfoContext(ctx, "index created", "index", name)
	return nil
}

// DeleteIndex removes the index. Deleting an index that does not exist is not
// an error, so teardown stays idempotent.
func (b *Backend) DeleteIndex(ctx context.Context, id string) error {
	ctx, cancel := b.opCtx(ctx)
	defer cancel()

	name := b.IndexName(id)
	res, err := b.client.Indices.Delete(
		[]string{name},
		b.client.Indices.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete index %s: %w", name, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		return errors.Join(ErrRequestFailed, fmt.Errorf("delete index %s: %s", name, res.Status()))
	}

	b.log.InfoContext(ctx, "index deleted", "index", name)
	return nil
}

// IndexExists reports whether the index for the given logical id exists.
func (b *Backend) IndexExists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := b.opCtx(ctx)
	defer cancel()

	name := b.IndexName(id)
	res, err := b.client.Indices.Exists(
		[]string{name},
		b.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, fmt.Errorf("check index %s: %w", name, err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	}
	return false, errors.Join(ErrRequestFailed, fmt.Errorf("check index %s: %s", name, res.Status()))
}

// UpdateIndex applies the supplied mapping properties to an existing index.
// New fields can be added freely; changing the type of an existing field
// requires reindexing, which OpenSearch reports as a request error here.
func (b *Backend) UpdateIndex(ctx context.Context, id string, properties map[string]any) error {
	body, err := b.indexBody(properties)
	if err != nil {
		return err
	}
	mappings, _ := body["mappings"].(map[string]any)
	payload, err := json.Marshal(mappings)
	if err != nil {
		return err
	}

	ctx, cancel := b.opCtx(ctx)
	defer cancel()

	name := b.IndexName(id)
	res, err := b.client.Indices.PutMapping(
		bytes.NewReader(payload),
		b.client.Indices.PutMapping.WithIndex(name),
		b.client.Indices.PutMapping.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("update index %s: %w", name, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return errors.Join(ErrIndexNotFound, errors.New(name))
	}
	if res.IsError() {
		return errors.Join(ErrRequestFailed, fmt.Errorf("update index %s: %s", name, res.Status()))
	}

	b.log.InfoContext(ctx, "index mapping updated", "index", name)
	return nil
}
