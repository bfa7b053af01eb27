package nbfx

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetConfig_Defaults(t *testing.T) {
	saved := GetConfig()
	defer OverrideConfig(saved)

	OverrideConfig(defaultConfig())
	cfg := GetConfig()
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, 4096, cfg.ReadBufferSize)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestOverrideConfig(t *testing.T) {
	saved := GetConfig()
	defer OverrideConfig(saved)

	OverrideConfig(Config{MaxDepth: 7, ReadBufferSize: 1024, LogLevel: zerolog.DebugLevel})
	cfg := GetConfig()
	assert.Equal(t, 7, cfg.MaxDepth)
	assert.Equal(t, 1024, cfg.ReadBufferSize)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewStream_NonDefaultReadBufferSizeBypassesPool(t *testing.T) {
	saved := GetConfig()
	defer OverrideConfig(saved)

	cfg := saved
	cfg.ReadBufferSize = 9000
	OverrideConfig(cfg)

	s := newStream(bytes.NewReader([]byte{0x01}))
	defer s.release()
	assert.False(t, s.pooled)
}

func TestNewParser_UsesConfiguredMaxDepth(t *testing.T) {
	saved := GetConfig()
	defer OverrideConfig(saved)

	cfg := saved
	cfg.MaxDepth = 3
	OverrideConfig(cfg)

	p := NewParser()
	assert.Equal(t, 3, p.MaxDepth)
}

func TestIntFromEnvDefault_MalformedFallsBackToDefault(t *testing.T) {
	t.Setenv("NBFX_TEST_INT", "not-a-number")
	assert.Equal(t, 42, intFromEnvDefault("NBFX_TEST_INT", 42))
}

func TestLevelFromEnvDefault_ParsesKnownLevel(t *testing.T) {
	t.Setenv("NBFX_TEST_LEVEL", "warn")
	assert.Equal(t, zerolog.WarnLevel, levelFromEnvDefault("NBFX_TEST_LEVEL", zerolog.InfoLevel))
}
