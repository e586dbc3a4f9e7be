package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/orchestrators/combat"
)

// Config keys. Environment variables use the RPG_ABILITIES prefix with dots
// replaced by underscores, e.g. RPG_ABILITIES_REDIS_ADDR.
const (
	keyGRPCPort         = "grpc.port"
	keyRedisAddr        = "redis.addr"
	keyRedisEmbedded    = "redis.embedded"
	keyRedisTTL         = "redis.loadout_ttl"
	keyCatalogPath      = "catalog.path"
	keyLogLevel         = "log.level"
	keyDefaultMaxEnergy = "combat.default_max_energy"
)

const envPrefix = "RPG_ABILITIES"

var cfgFile string

// Config is the resolved server configuration
type Config struct {
	GRPCPort         int
	RedisAddr        string
	RedisEmbedded    bool
	RedisTTLSeconds  int
	CatalogPath      string
	LogLevel         string
	DefaultMaxEnergy int32
}

// Validate checks the resolved values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Field(keyGRPCPort, "must be between 1 and 65535")
	}
	if c.RedisAddr == "" && !c.RedisEmbedded {
		vb.Field(keyRedisAddr, "is required unless redis.embedded is set")
	}
	if c.RedisTTLSeconds < 0 {
		vb.Field(keyRedisTTL, "must not be negative")
	}
	if c.CatalogPath == "" {
		vb.RequiredField(keyCatalogPath)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Field(keyLogLevel, "must be one of debug, info, warn, error")
	}
	if c.DefaultMaxEnergy < 0 {
		vb.Field(keyDefaultMaxEnergy, "must not be negative")
	}
	return vb.Build()
}

func init() {
	viper.SetDefault(keyGRPCPort, 50051)
	viper.SetDefault(keyRedisAddr, "localhost:6379")
	viper.SetDefault(keyRedisEmbedded, false)
	viper.SetDefault(keyRedisTTL, 0)
	viper.SetDefault(keyCatalogPath, "config/catalog.yaml")
	viper.SetDefault(keyLogLevel, "info")
	viper.SetDefault(keyDefaultMaxEnergy, combat.DefaultMaxEnergy)
}

// initConfig reads the config file and environment, then installs the
// default logger. It runs before every command.
func initConfig(_ *cobra.Command, _ []string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", cfgFile)
		}
	}

	level, ok := parseLevel(viper.GetString(keyLogLevel))
	if !ok {
		return errors.InvalidArgumentf("unknown log level %q", viper.GetString(keyLogLevel))
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}

// loadConfig resolves the server configuration from viper
func loadConfig() (*Config, error) {
	cfg := &Config{
		GRPCPort:         viper.GetInt(keyGRPCPort),
		RedisAddr:        viper.GetString(keyRedisAddr),
		RedisEmbedded:    viper.GetBool(keyRedisEmbedded),
		RedisTTLSeconds:  viper.GetInt(keyRedisTTL),
		CatalogPath:      viper.GetString(keyCatalogPath),
		LogLevel:         viper.GetString(keyLogLevel),
		DefaultMaxEnergy: viper.GetInt32(keyDefaultMaxEnergy),
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
