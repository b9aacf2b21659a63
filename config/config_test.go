package config_test

import (
	"estate/config"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("SERVER_ENV", "")
	os.Unsetenv("SERVER_ENV")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "09:00", cfg.Scheduling.SlotStart)
	assert.Equal(t, "18:00", cfg.Scheduling.SlotEnd)
	assert.Equal(t, 30, cfg.Scheduling.SlotMinutes)
	assert.Equal(t, 7, cfg.Scheduling.DueSoonDays)
	assert.Equal(t, "redis", cfg.Notification.Driver)
	assert.Equal(t, "5432", cfg.DB.Postgres.Write.Port)
}

func TestLoadReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SCHEDULING_SLOT_MINUTES=45\nKAFKA_BROKERS=k1:9092,k2:9092\n"), 0o600))

	t.Setenv("SCHEDULING_SLOT_MINUTES", "")
	os.Unsetenv("SCHEDULING_SLOT_MINUTES")
	t.Setenv("KAFKA_BROKERS", "")
	os.Unsetenv("KAFKA_BROKERS")
	t.Setenv("APP_NAME", "estate-test")

	cfg, err := config.Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, 45, cfg.Scheduling.SlotMinutes)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "estate-test", cfg.App.Name)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("SCHEDULING_SLOT_MINUTES", "half-hour")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "processing environment")
}

func TestPostgresNodeURL(t *testing.T) {
	node := config.PostgresNode{
		Host:     "db.internal",
		Port:     "5432",
		Username: "estate",
		Password: "p@ss/word?",
		Name:     "scheduling",
		SSLMode:  "require",
	}

	u, err := url.Parse(node.URL("test_", url.Values{"x-migrations-table": {"schema_migrations"}}))
	require.NoError(t, err)

	password, _ := u.User.Password()

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "p@ss/word?", password)
	assert.Equal(t, "db.internal:5432", u.Host)
	assert.Equal(t, "/test_scheduling", u.Path)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Equal(t, "schema_migrations", u.Query().Get("x-migrations-table"))
}
