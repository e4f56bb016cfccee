package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Worker     WorkerConfig
	Reconciler ReconcilerConfig
	Sequence   SequenceConfig
	Policy     PolicyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"America/Santo_Domingo"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Santo_Domingo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-14400"` // -4*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Development defaults point at a worker on the loopback interface.
// 127.0.0.1 rather than localhost avoids IPv6 resolution surprises.
type WorkerConfig struct {
	BaseURL             string        `envconfig:"PY_WORKER_URL" default:"http://127.0.0.1:8000"`
	Token               string        `envconfig:"PY_WORKER_TOKEN" default:"dev-token"`
	DispatchTimeout     time.Duration `envconfig:"WORKER_DISPATCH_TIMEOUT" default:"10s"`
	DispatchConcurrency int           `envconfig:"WORKER_DISPATCH_CONCURRENCY" default:"8"`
	FailureNotifyRole   string        `envconfig:"WORKER_FAILURE_NOTIFY_ROLE" default:"ADMIN"`
}

type ReconcilerConfig struct {
	Enabled    bool          `envconfig:"JOB_RECONCILE_ENABLED" default:"true"`
	Schedule   string        `envconfig:"JOB_RECONCILE_SCHEDULE" default:"@every 1m"`
	StaleAfter time.Duration `envconfig:"JOB_RECONCILE_STALE_AFTER" default:"2m"`
	Batch      int           `envconfig:"JOB_RECONCILE_BATCH" default:"100"`
}

type SequenceConfig struct {
	MaxRetries int    `envconfig:"SEQUENCE_MAX_RETRIES" default:"5"`
	TimeZone   string `envconfig:"SEQUENCE_TIMEZONE" default:"America/Santo_Domingo"`
}

type PolicyConfig struct {
	MaxAutoApproveAmount float64  `envconfig:"POLICY_MAX_AUTO_APPROVE_AMOUNT" default:"15000"`
	MaxDiscountPercent   float64  `envconfig:"POLICY_MAX_DISCOUNT_PERCENT" default:"10"`
	CriticalKeywords     []string `envconfig:"POLICY_CRITICAL_KEYWORDS" default:"compresor,motor"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the zone database lacks the configured name.
func (c *SequenceConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Worker: WorkerConfig{
			BaseURL:             "http://127.0.0.1:8000",
			Token:               "dev-token",
			DispatchTimeout:     2 * time.Second,
			DispatchConcurrency: 4,
			FailureNotifyRole:   "ADMIN",
		},
		Reconciler: ReconcilerConfig{
			Enabled:    false,
			Schedule:   "@every 1m",
			StaleAfter: 2 * time.Minute,
			Batch:      100,
		},
		Sequence: SequenceConfig{
			MaxRetries: 5,
			TimeZone:   "UTC",
		},
		Policy: PolicyConfig{
			MaxAutoApproveAmount: 15000,
			MaxDiscountPercent:   10,
			CriticalKeywords:     []string{"compresor", "motor"},
		},
	}
}
