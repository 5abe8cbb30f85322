package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Server   ServerConfig
	Events   EventsConfig
	Sentry   SentryConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ServerConfig struct {
	Port     string
	Env      string
	CSRFKey  string // hex encoded, 32 bytes
	Timezone string
}

// EventsBackend selects where change events are published.
type EventsBackend string

const (
	EventsBackendMemory EventsBackend = "memory"
	EventsBackendRedis  EventsBackend = "redis"
	EventsBackendKafka  EventsBackend = "kafka"
)

type EventsConfig struct {
	Backend      EventsBackend
	BufferSize   int
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroup   string
}

type SentryConfig struct {
	DSN     string
	Release string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Server:   GetServerConfig(),
		Events:   GetEventsConfig(),
		Sentry:   GetSentryConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "5433"), // test DB listens on 5433
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		MaxConns: 25,
	}

	testRedisConfig := RedisConfig{
		Host:     getEnv("TEST_REDIS_HOST", "localhost"),
		Port:     getEnv("TEST_REDIS_PORT", "6380"), // test Redis listens on 6380
		Password: "",
		DB:       1,
	}

	return &Config{
		Database: *testConfig,
		Redis:    testRedisConfig,
		Server: ServerConfig{
			Port:     "8080",
			Env:      "test",
			Timezone: "UTC",
		},
		Events: EventsConfig{
			Backend:    EventsBackendMemory,
			BufferSize: 100,
		},
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "fitness_club"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(getEnvInt("DB_MAX_CONNS", 25)),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("APP_ENV", "development"),
		CSRFKey:  getEnv("CSRF_KEY", ""),
		Timezone: getEnv("TIMEZONE", "Local"),
	}
}

func GetEventsConfig() EventsConfig {
	return EventsConfig{
		Backend:      EventsBackend(strings.ToLower(getEnv("EVENTS_BACKEND", string(EventsBackendMemory)))),
		BufferSize:   getEnvInt("EVENTS_BUFFER_SIZE", 256),
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "fitness-club.changes"),
		KafkaGroup:   getEnv("KAFKA_GROUP", "activity-workers"),
	}
}

func GetSentryConfig() SentryConfig {
	return SentryConfig{
		DSN:     getEnv("SENTRY_DSN", ""),
		Release: "fitness-club@" + getEnv("APP_VERSION", "dev"),
	}
}

// IsProduction reports whether the server runs with production safeguards.
func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		panic(err)
	}
	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
