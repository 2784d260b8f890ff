package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/from/env")
		got, err := ResolveConfigDir("/from/flag")
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", got)
	})

	t.Run("env when no flag", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/from/env")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/from/env", got)
	})
}

func TestResolveDSNPrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDSN, "env.db")
		got, err := ResolveDSN("flag.db", "config.db")
		require.NoError(t, err)
		assert.Equal(t, "flag.db", got)
	})

	t.Run("config beats env", func(t *testing.T) {
		t.Setenv(EnvDSN, "env.db")
		got, err := ResolveDSN("", "config.db")
		require.NoError(t, err)
		assert.Equal(t, "config.db", got)
	})

	t.Run("env beats default", func(t *testing.T) {
		t.Setenv(EnvDSN, "env.db")
		got, err := ResolveDSN("", "")
		require.NoError(t, err)
		assert.Equal(t, "env.db", got)
	})

	t.Run("cwd fallback", func(t *testing.T) {
		t.Setenv(EnvDSN, "")
		got, err := ResolveDSN("", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultDatabaseName, filepath.Base(got))
	})
}
