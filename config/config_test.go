package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "Asia/Seoul", cfg.Server.ReviewTimezone)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAIModel)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 720*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Grading.Verify)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Events.KafkaBrokers)
}

func TestNewConfig_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("GRADING_VERIFY", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAIModel)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.Grading.Verify)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.KafkaBrokers)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a"}, splitList(" a "))
	assert.Equal(t, []string{"a", "b"}, splitList("a,,b"))
}
