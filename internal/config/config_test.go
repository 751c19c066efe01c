package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_TOKEN_ID", "token")
	t.Setenv("SECRET_USER_ID", "user")
	t.Setenv("SECRET_PASSWORD_ID", "password")
}

func TestLoad_Defaults(t *testing.T) {
	setSecrets(t)
	t.Setenv("STORE_DRIVER", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "transaction-automation-k6-test", cfg.StoreCollection)
	assert.Zero(t, cfg.RateRPS, "rate limiting is opt-in")
	assert.Equal(t, "token", cfg.SecretTokenID)
	assert.Equal(t, "user", cfg.SecretUserID)
	assert.Equal(t, "password", cfg.SecretPasswordID)
}

func TestLoad_MissingSecret(t *testing.T) {
	setSecrets(t)
	t.Setenv("SECRET_PASSWORD_ID", "")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SecretPasswordID")
}

func TestLoad_PostgresNeedsDatabaseURL(t *testing.T) {
	setSecrets(t)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load(t.TempDir())
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/txn")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.StoreDriver)
}

func TestLoad_UnknownDriver(t *testing.T) {
	setSecrets(t)
	t.Setenv("STORE_DRIVER", "firestore")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	for _, k := range []string{"SECRET_TOKEN_ID", "SECRET_USER_ID", "SECRET_PASSWORD_ID", "HTTP_PORT"} {
		unsetEnv(t, k)
	}
	dir := t.TempDir()
	content := "SECRET_TOKEN_ID=a\nSECRET_USER_ID=b\nSECRET_PASSWORD_ID=c\nHTTP_PORT=9090\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "a", cfg.SecretTokenID)
	assert.Equal(t, "c", cfg.SecretPasswordID)
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}
