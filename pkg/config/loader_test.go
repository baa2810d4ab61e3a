package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/pkg/config"
)

type searchConfig struct {
	IndexPrefix string `env:"TEST_SEARCH_INDEX_PREFIX,required"`
	Fuzziness   string `env:"TEST_SEARCH_FUZZINESS" envDefault:"AUTO"`
	Shards      int    `env:"TEST_SEARCH_SHARDS" envDefault:"1"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env with defaults", func(t *testing.T) {
		t.Setenv("TEST_SEARCH_INDEX_PREFIX", "myapp")

		var cfg searchConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "myapp", cfg.IndexPrefix)
		assert.Equal(t, "AUTO", cfg.Fuzziness)
		assert.Equal(t, 1, cfg.Shards)
	})

	t.Run("explicit values override defaults", func(t *testing.T) {
		t.Setenv("TEST_SEARCH_INDEX_PREFIX", "myapp")
		t.Setenv("TEST_SEARCH_FUZZINESS", "2")
		t.Setenv("TEST_SEARCH_SHARDS", "3")

		var cfg searchConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "2", cfg.Fuzziness)
		assert.Equal(t, 3, cfg.Shards)
	})

	t.Run("missing required variable", func(t *testing.T) {
		t.Setenv("TEST_SEARCH_INDEX_PREFIX", "")
		os.Unsetenv("TEST_SEARCH_INDEX_PREFIX")

		var cfg searchConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *searchConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("named file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_SEARCH_INDEX_PREFIX=fromfile\n"), 0o600))

		t.Setenv("TEST_SEARCH_INDEX_PREFIX", "")
		os.Unsetenv("TEST_SEARCH_INDEX_PREFIX")

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "fromfile", os.Getenv("TEST_SEARCH_INDEX_PREFIX"))
	})

	t.Run("missing named file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("missing default file is fine", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
