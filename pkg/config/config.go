package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
)

type Config struct {
	Port     string
	LogLevel string

	StoreDriver string
	DataDir     string

	RedisAddr string

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	RoomTypes    []string
	SeedDemoData bool

	RequestTimeout  time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		StoreDriver: getEnvStr(EnvStoreDriver, DefaultStoreDriver),
		DataDir:     getEnvStr(EnvDataDir, DefaultDataDir),

		RedisAddr: getEnvStr(EnvRedisAddr, DefaultRedisAddr),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		RoomTypes:    getEnvList(EnvRoomTypes, DefaultRoomTypes),
		SeedDemoData: getEnvBool(EnvSeedDemoData, DefaultSeedDemoData),

		RequestTimeout:  getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:   getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:  logger.JSON,
			Service: serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	switch cfg.StoreDriver {
	case "file", "redis", "mongo", "memory":
	default:
		problems = append(problems, fmt.Sprintf("StoreDriver must be one of file/redis/mongo/memory, got: %s", cfg.StoreDriver))
	}

	if cfg.StoreDriver == "file" && cfg.DataDir == "" {
		problems = append(problems, "DataDir must be set when StoreDriver is file")
	}

	if len(cfg.RoomTypes) == 0 {
		problems = append(problems, "RoomTypes must name at least one room category")
	}
	for _, rt := range cfg.RoomTypes {
		if strings.TrimSpace(rt) == "" {
			problems = append(problems, "RoomTypes must not contain empty entries")
			break
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"store_driver", cfg.StoreDriver,
		"data_dir", cfg.DataDir,
		"room_types", cfg.RoomTypes,
		"seed_demo_data", cfg.SeedDemoData,
		"request_timeout", cfg.RequestTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func getEnvStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
