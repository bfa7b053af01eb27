package nbfx

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultReadBufferSize is the bufio.Reader size newStream uses when the
// configured ReadBufferSize hasn't been overridden away from it; readerPool
// only recycles readers of this size.
const defaultReadBufferSize = 4096

// Config holds the handful of process-wide knobs this codec exposes, read
// from the environment as a small set of NBFX_-prefixed variables with
// typed defaults.
type Config struct {
	// MaxDepth overrides DefaultMaxDepth for every Parser built via
	// NewParser after GetConfig/OverrideConfig establishes it.
	MaxDepth int
	// ReadBufferSize sizes the bufio.Reader a stream wraps.
	ReadBufferSize int
	// LogLevel is applied to zerolog's global level on GetConfig/OverrideConfig.
	LogLevel zerolog.Level
}

var currentConfig = defaultConfig()

func defaultConfig() Config {
	return Config{
		MaxDepth:       DefaultMaxDepth,
		ReadBufferSize: defaultReadBufferSize,
		LogLevel:       zerolog.InfoLevel,
	}
}

// GetConfig returns the process-wide Config, populated from the environment
// when the package is initialized:
//
//	NBFX_MAX_DEPTH         int    (default 1024)
//	NBFX_READ_BUFFER_SIZE  int    (default 4096)
//	NBFX_LOG_LEVEL         string (default "info"; zerolog level name)
func GetConfig() Config {
	return currentConfig
}

// OverrideConfig replaces the process-wide Config outright (tests typically
// call this with a value derived from GetConfig()), applying its LogLevel
// to zerolog's global level immediately.
func OverrideConfig(cfg Config) {
	currentConfig = cfg
	zerolog.SetGlobalLevel(cfg.LogLevel)
}

func init() {
	cfg := defaultConfig()
	cfg.MaxDepth = intFromEnvDefault("NBFX_MAX_DEPTH", cfg.MaxDepth)
	cfg.ReadBufferSize = intFromEnvDefault("NBFX_READ_BUFFER_SIZE", cfg.ReadBufferSize)
	cfg.LogLevel = levelFromEnvDefault("NBFX_LOG_LEVEL", cfg.LogLevel)
	OverrideConfig(cfg)
}

func intFromEnvDefault(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("nbfx: ignoring malformed int env var")
		return def
	}
	return n
}

func levelFromEnvDefault(key string, def zerolog.Level) zerolog.Level {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(v))
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("nbfx: ignoring malformed log level env var")
		return def
	}
	return lvl
}
