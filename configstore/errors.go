package configstore

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	ErrFailedToOpenDBConnection = errors.New("configstore: failed to open db connection")
	ErrFailedToParseDBConfig    = errors.New("configstore: failed to parse db config")
	ErrFailedToApplyMigrations  = errors.New("configstore: failed to apply migrations")
	ErrMigrationsDirNotFound    = errors.New("configstore: migrations directory not found")
	ErrHealthcheckFailed        = errors.New("configstore: healthcheck failed, connection is not available")

	ErrProfileNotFound = errors.New("configstore: profile not found")
	ErrInvalidProfile  = errors.New("configstore: invalid profile")
)

// isNotFound detects pgx.ErrNoRows so queries report ErrProfileNotFound
// consistently.
func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
