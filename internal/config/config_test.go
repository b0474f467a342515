package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera-joshi/student-registry/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, `
env: prod
storage:
  driver: postgres
  postgres_dsn: "host=localhost dbname=students sslmode=disable"
http_server:
  address: "0.0.0.0:8082"
`)
	t.Setenv("CONFIG_PATH", path)

	cfg := config.MustLoad()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "host=localhost dbname=students sslmode=disable", cfg.Storage.PostgresDSN)
	assert.Equal(t, "0.0.0.0:8082", cfg.HTTPServer.Addr)
}

func TestMustLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
http_server:
  address: "localhost:8082"
`)
	t.Setenv("CONFIG_PATH", path)

	cfg := config.MustLoad()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "storage/students.db", cfg.Storage.SQLitePath)
}

func TestMustLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
env: dev
http_server:
  address: "localhost:8082"
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_SERVER_ADDR", "localhost:9000")

	cfg := config.MustLoad()

	assert.Equal(t, "localhost:9000", cfg.HTTPServer.Addr)
}
