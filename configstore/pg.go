package configstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/searchkit/connector"
)

// PGStore persists profiles in PostgreSQL. Safe for concurrent use; the
// pgxpool handles connection management.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore wraps an established connection pool. Run Migrate before first
// use so the search_profiles table exists.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Save(ctx context.Context, profile Profile) (Profile, error) {
	if err := profile.Validate(); err != nil {
		return Profile{}, err
	}

	raw, err := json.Marshal(profile.Config)
	if err != nil {
		return Profile{}, fmt.Errorf("encode profile config: %w", err)
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO search_profiles (name, connector_id, config, enabled)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			connector_id = EXCLUDED.connector_id,
			config = EXCLUDED.config,
			enabled = EXCLUDED.enabled,
			updated_at = now()
		RETURNING created_at, updated_at`,
		profile.Name, profile.ConnectorID, raw, profile.Enabled,
	)
	if err := row.Scan(&profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return Profile{}, fmt.Errorf("save profile %s: %w", profile.Name, err)
	}
	return profile, nil
}

func (s *PGStore) Get(ctx context.Context, name string) (Profile, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT name, connector_id, config, enabled, created_at, updated_at
		FROM search_profiles
		WHERE name = $1`,
		name,
	)

	profile, err := scanProfile(row)
	if err != nil {
		if isNotFound(err) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, fmt.Errorf("get profile %s: %w", name, err)
	}
	return profile, nil
}

func (s *PGStore) List(ctx context.Context) ([]Profile, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, connector_id, config, enabled, created_at, updated_at
		FROM search_profiles
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("list profiles: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (s *PGStore) Delete(ctx context.Context, name string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM search_profiles WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var (
		profile Profile
		raw     []byte
	)
	if err := row.Scan(&profile.Name, &profile.ConnectorID, &raw,
		&profile.Enabled, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return Profile{}, err
	}

	profile.Config = connector.Config{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &profile.Config); err != nil {
			return Profile{}, fmt.Errorf("decode profile config: %w", err)
		}
	}
	return profile, nil
}
