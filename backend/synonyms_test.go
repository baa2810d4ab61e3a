package backend_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/backend"
)

func writeSynonymsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "synonyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSynonyms(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeSynonymsFile(t, `
groups:
  - terms: [laptop, notebook]
  - terms: [tv, television, telly]
`)
		groups, err := backend.LoadSynonyms(path)
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, []string{"laptop", "notebook"}, groups[0].Terms)
		assert.Equal(t, []string{"tv", "television", "telly"}, groups[1].Terms)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := backend.LoadSynonyms(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, backend.ErrInvalidSynonyms)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeSynonymsFile(t, "groups: [")
		_, err := backend.LoadSynonyms(path)
		assert.ErrorIs(t, err, backend.ErrInvalidSynonyms)
	})

	t.Run("single-term group", func(t *testing.T) {
		path := writeSynonymsFile(t, `
groups:
  - terms: [lonely]
`)
		_, err := backend.LoadSynonyms(path)
		require.ErrorIs(t, err, backend.ErrInvalidSynonyms)
		assert.Contains(t, err.Error(), "at least two terms")
	})
}
