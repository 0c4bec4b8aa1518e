package app

import (
	"strings"
	"time"

	"github.com/yungbote/visualenglish-backend/internal/data/db"
	"github.com/yungbote/visualenglish-backend/internal/observability"
	"github.com/yungbote/visualenglish-backend/internal/platform/envutil"
)

// DriverNone runs the server without a database; edits stay client-side.
const DriverNone = "none"

type Config struct {
	Port    string
	LogMode string

	DB db.Config

	RedisAddr    string
	EditCacheTTL time.Duration

	JWTSecretKey string
	CORSOrigins  []string

	MappingWatchDir  string
	MappingDebounce  time.Duration
	QAExceptionsFile string

	ShutdownTimeout time.Duration

	Otel observability.OtelConfig
}

func (c Config) DBEnabled() bool {
	return c.DB.Driver != "" && c.DB.Driver != DriverNone
}

func LoadConfig() Config {
	return Config{
		Port:    envutil.String("PORT", "8080"),
		LogMode: envutil.String("LOG_MODE", "development"),
		DB: db.Config{
			Driver:           strings.ToLower(envutil.String("DB_DRIVER", db.DriverPostgres)),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "visualenglish"),
			PostgresSSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
			SQLitePath:       envutil.String("SQLITE_PATH", "data/visualenglish.db"),
		},
		RedisAddr:        envutil.String("REDIS_ADDR", ""),
		EditCacheTTL:     envutil.Duration("EDIT_CACHE_TTL", 5*time.Minute),
		JWTSecretKey:     envutil.String("JWT_SECRET_KEY", ""),
		CORSOrigins:      splitList(envutil.String("CORS_ORIGINS", "")),
		MappingWatchDir:  envutil.String("MAPPING_WATCH_DIR", ""),
		MappingDebounce:  envutil.Duration("MAPPING_WATCH_DEBOUNCE", 250*time.Millisecond),
		QAExceptionsFile: envutil.String("QA_EXCEPTIONS_FILE", ""),
		ShutdownTimeout:  envutil.Duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "visualenglish-backend"),
			Environment: envutil.String("APP_ENV", "development"),
			Version:     envutil.String("APP_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     envutil.String("OTEL_EXPORTER_OTLP_HEADERS", ""),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: float64(envutil.Int("OTEL_SAMPLER_PERCENT", 10)) / 100,
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
