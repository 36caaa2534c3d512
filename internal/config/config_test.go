package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 30, cfg.Slots.GranularityMinutes)
	assert.Equal(t, "instant", cfg.Slots.OverlapMode)
	assert.Equal(t, 14, cfg.Booking.MaxAdvanceDays)
	assert.Equal(t, time.Minute, cfg.Worker.Interval)
	assert.Equal(t, 15*time.Minute, cfg.Reminder.ClaimTTL)
	assert.Equal(t, 9.0, cfg.Reminder.LeadMinMinutes)
	assert.Equal(t, "Africa/Johannesburg", cfg.Timezone.Default)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BARBERQ_SERVER_PORT", "9090")
	t.Setenv("BARBERQ_SLOTS_OVERLAP_MODE", "interval")
	t.Setenv("BARBERQ_KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("BARBERQ_WORKER_INTERVAL", "30s")
	t.Setenv("BARBERQ_CORS_ALLOWED_ORIGINS", "https://kingcuts.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "interval", cfg.Slots.OverlapMode)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, cfg.Worker.Interval)
	assert.Equal(t, []string{"https://kingcuts.example"}, cfg.CORS.AllowedOrigins)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", "c", " "}))
	assert.Nil(t, splitList(nil))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
