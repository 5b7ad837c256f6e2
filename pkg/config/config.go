package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Admin     AdminConfig
	Catalog   CatalogConfig
	Schedules SchedulesConfig
	Ratings   RatingsConfig
	Export    ExportConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AdminConfig secures catalog refresh endpoints.
type AdminConfig struct {
	JWTSecret string
}

// CatalogConfig points the scraper at the public class schedule pages.
type CatalogConfig struct {
	BaseURL        string
	SubjectCodes   []string
	FetchTimeout   time.Duration
	RefreshWorkers int
}

// SchedulesConfig tunes the combination engine surface.
type SchedulesConfig struct {
	ResultTTL       time.Duration
	PatternPageSize int
	MaxCombinations int
}

// ExportConfig controls the on-disk archive of rendered schedule PDFs.
// An empty ArchiveDir disables archiving.
type ExportConfig struct {
	ArchiveDir string
	ArchiveTTL time.Duration
}

// RatingsConfig governs instructor rating annotations.
type RatingsConfig struct {
	Enabled  bool
	BaseURL  string
	CacheTTL time.Duration
	Timeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		Enabled:  v.GetBool("REDIS_ENABLED"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Admin = AdminConfig{JWTSecret: v.GetString("ADMIN_JWT_SECRET")}

	subjects := splitAndTrim(v.GetString("CATALOG_SUBJECT_CODES"))
	if len(subjects) == 0 {
		subjects = DefaultSubjectCodes
	}
	cfg.Catalog = CatalogConfig{
		BaseURL:        v.GetString("CATALOG_BASE_URL"),
		SubjectCodes:   subjects,
		FetchTimeout:   parseDuration(v.GetString("CATALOG_FETCH_TIMEOUT"), 15*time.Second),
		RefreshWorkers: v.GetInt("CATALOG_REFRESH_WORKERS"),
	}

	cfg.Schedules = SchedulesConfig{
		ResultTTL:       parseDuration(v.GetString("SCHEDULES_RESULT_TTL"), time.Hour),
		PatternPageSize: v.GetInt("SCHEDULES_PATTERN_PAGE_SIZE"),
		MaxCombinations: v.GetInt("SCHEDULES_MAX_COMBINATIONS"),
	}

	cfg.Ratings = RatingsConfig{
		Enabled:  v.GetBool("ENABLE_RATINGS"),
		BaseURL:  v.GetString("RATINGS_BASE_URL"),
		CacheTTL: parseDuration(v.GetString("RATINGS_CACHE_TTL"), 24*time.Hour),
		Timeout:  parseDuration(v.GetString("RATINGS_TIMEOUT"), 5*time.Second),
	}

	cfg.Export = ExportConfig{
		ArchiveDir: v.GetString("EXPORT_ARCHIVE_DIR"),
		ArchiveTTL: parseDuration(v.GetString("EXPORT_ARCHIVE_TTL"), 7*24*time.Hour),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "schedule_builder")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_ENABLED", true)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ADMIN_JWT_SECRET", "dev_secret")

	v.SetDefault("CATALOG_BASE_URL", "http://web.csulb.edu/depts/enrollment/registration/class_schedule")
	v.SetDefault("CATALOG_SUBJECT_CODES", "")
	v.SetDefault("CATALOG_FETCH_TIMEOUT", "15s")
	v.SetDefault("CATALOG_REFRESH_WORKERS", 4)

	v.SetDefault("SCHEDULES_RESULT_TTL", "1h")
	v.SetDefault("SCHEDULES_PATTERN_PAGE_SIZE", 20)
	v.SetDefault("SCHEDULES_MAX_COMBINATIONS", 250000)

	v.SetDefault("EXPORT_ARCHIVE_DIR", "")
	v.SetDefault("EXPORT_ARCHIVE_TTL", "168h")

	v.SetDefault("ENABLE_RATINGS", false)
	v.SetDefault("RATINGS_BASE_URL", "")
	v.SetDefault("RATINGS_CACHE_TTL", "24h")
	v.SetDefault("RATINGS_TIMEOUT", "5s")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
