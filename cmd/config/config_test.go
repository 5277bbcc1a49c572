package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videoshare/cmd/config"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_NAME", "videodb")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("S3_BUCKET", "videos-bucket")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, 3600*time.Second, cfg.PresignTTL)
	assert.Equal(t, int64(2*1024*1024*1024), cfg.MaxUploadLen)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("S3_BUCKET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestDatabaseURI(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.example.com port=5432 user=postgres password=pw dbname=videodb sslmode=disable",
		cfg.DatabaseURI())
}
