package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
}

func TestLoad_LeeEnteroDesdeEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

// Una env var numérica malformada hace fallar la carga en vez de degradar a 0.
func TestLoad_EnteroMalformado_Falla(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_BackendInvalido_Falla(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")

	_, err := Load()
	require.Error(t, err)
}

func TestDBConfig_DSNEscapaCredenciales(t *testing.T) {
	c := DBConfig{
		Host: "localhost", Port: 5432,
		User: "app", Password: "p@ss:word/",
		DBName: "ledger", SSLMode: "disable",
	}
	dsn := c.DSN()
	assert.Contains(t, dsn, "postgres://app:")
	assert.Contains(t, dsn, "@localhost:5432/ledger?sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:word/")
}

func TestDBConfig_DatabaseURLTienePrioridad(t *testing.T) {
	c := DBConfig{DatabaseURL: "postgres://x:y@db:5432/z", Host: "localhost"}
	assert.Equal(t, "postgres://x:y@db:5432/z", c.ConnectionString())
}
