package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"youact-backend/internal/config"
)

var configEnv = []string{
	"JWT_SECRET", "SUPABASE_URL", "SUPABASE_SERVICE_KEY", "SUPABASE_STORAGE_BUCKET",
	"DATABASE_URL", "PORT", "ENVIRONMENT", "BASE_URL", "FRONTEND_URL", "LOG_LEVEL",
	"MAX_IMAGE_BYTES", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "annotation-images", cfg.SupabaseStorageBucket)
	assert.Equal(t, int64(5<<20), cfg.MaxImageBytes)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.False(t, cfg.StorageEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
jwt_secret = "from-file"
port = "9000"
environment = "production"
supabase_url = "https://example.supabase.co"
supabase_service_key = "service"
rate_limit_rps = 2.5
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	t.Setenv("PORT", "9100")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.StorageEnabled())
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MAX_IMAGE_BYTES", "lots")

	_, err := config.Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.LogLevel = "chatty"
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.JWTSecret = "secret"
	cfg.RateLimitBurst = 0
	assert.Error(t, cfg.Validate())
}
