package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig describes the PostgreSQL connection and pool.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings. Outfit photos and avatars live in separate buckets.
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	OutfitBucket  string
	AvatarBucket  string
	UseSSL        bool
	PublicBaseURL string
}

// RedisConfig holds the leaderboard cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr              string
	Password          string
	DB                int
	LeaderboardTTLSec int
}

// KafkaConfig holds event publishing settings. No brokers means events are dropped.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	TokenTTLMin int
	AdminKey    string
}

// GameConfig holds gameplay constants.
type GameConfig struct {
	ChallengeSeconds int
	LeaderboardSize  int
}

// AppConfig is everything the api binary reads from its environment.
type AppConfig struct {
	AppHost  string
	Port     string
	LogLevel string
	Timezone string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Game     GameConfig
}

// Load never fails; missing values fall back to defaults and required ones are
// checked where they are used. cmd/api pulls in godotenv/autoload so a local .env
// is picked up, but exported variables win.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			OutfitBucket:  getEnv("MINIO_OUTFIT_BUCKET", "outfit-images"),
			AvatarBucket:  getEnv("MINIO_AVATAR_BUCKET", "avatars"),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL: getEnv("MINIO_PUBLIC_BASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:              getEnv("REDIS_ADDR", ""),
			Password:          getEnv("REDIS_PASSWORD", ""),
			DB:                getEnvInt("REDIS_DB", 0),
			LeaderboardTTLSec: getEnvInt("LEADERBOARD_CACHE_TTL_SEC", 30),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "stylist.events"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			JWTIssuer:   getEnv("JWT_ISSUER", "brilliant-stylist"),
			TokenTTLMin: getEnvInt("JWT_TTL_MIN", 60*24),
			AdminKey:    getEnv("ADMIN_API_KEY", ""),
		},
		Game: GameConfig{
			ChallengeSeconds: getEnvInt("CHALLENGE_SECONDS", 180),
			LeaderboardSize:  getEnvInt("LEADERBOARD_SIZE", 20),
		},
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TokenTTL is the lifetime of issued access tokens.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMin) * time.Minute
}

// LeaderboardTTL is how long a cached leaderboard stays valid.
func (r RedisConfig) LeaderboardTTL() time.Duration {
	return time.Duration(r.LeaderboardTTLSec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma-separated value, dropping empty entries.
func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
