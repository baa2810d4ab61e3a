package configstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrymomot/searchkit/connector"
)

// Profile is a named, persisted connection configuration. The ConnectorID
// selects the registry entry that interprets Config; disabled profiles stay
// stored but must not be used to build clients.
type Profile struct {
	Name        string           `json:"name"`
	ConnectorID string           `json:"connector_id"`
	Config      connector.Config `json:"config"`
	Enabled     bool             `json:"enabled"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Validate checks the fields a store cannot persist without. Connector
// config validation belongs to the registry, not here.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Join(ErrInvalidProfile, errors.New("name is required"))
	}
	if strings.TrimSpace(p.ConnectorID) == "" {
		return errors.Join(ErrInvalidProfile, errors.New("connector_id is required"))
	}
	return nil
}

// Store persists connection profiles. Save is an upsert keyed by profile
// name; Get and Delete report ErrProfileNotFound for unknown names.
type Store interface {
	Save(ctx context.Context, profile Profile) (Profile, error)
	Get(ctx context.Context, name string) (Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Delete(ctx context.Context, name string) error
}
