package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, operator identity)
// - default: Values common across all environments (business hours, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Operator    OperatorConfig
	Channel     ChannelConfig
	Schedule    ScheduleConfig
	Reservation ReservationConfig
	Persistence PersistenceConfig
	Retention   RetentionConfig
	Catalog     CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"salon"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"salon"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Moscow"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"4"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Channel-Key,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

// The single designated operator. PasswordHash is a bcrypt hash.
type OperatorConfig struct {
	ID           string `envconfig:"OPERATOR_ID" required:"true"`
	PasswordHash string `envconfig:"OPERATOR_PASSWORD_HASH" required:"true"`
}

// Shared secret presented by chat front ends in the X-Channel-Key header.
type ChannelConfig struct {
	APIKey string `envconfig:"CHANNEL_API_KEY" required:"true"`
}

type ScheduleConfig struct {
	Open               string        `envconfig:"SCHEDULE_OPEN" default:"10:00"`
	Close              string        `envconfig:"SCHEDULE_CLOSE" default:"20:00"`
	Cadence            time.Duration `envconfig:"SCHEDULE_CADENCE" default:"60m"`
	Granularity        time.Duration `envconfig:"SCHEDULE_GRANULARITY" default:"30m"`
	TimeZone           string        `envconfig:"SCHEDULE_TIMEZONE" default:"Europe/Moscow"`
	BookingHorizonDays int           `envconfig:"SCHEDULE_BOOKING_HORIZON_DAYS" default:"7"`
}

type ReservationConfig struct {
	HoldTTL       time.Duration `envconfig:"RESERVATION_HOLD_TTL" default:"20m"`
	SweepInterval time.Duration `envconfig:"RESERVATION_SWEEP_INTERVAL" default:"1m"`
}

const (
	PersistenceDriverFile     = "file"
	PersistenceDriverPostgres = "postgres"
)

type PersistenceConfig struct {
	Driver          string        `envconfig:"PERSISTENCE_DRIVER" default:"file"`
	DataDir         string        `envconfig:"PERSISTENCE_DATA_DIR" default:"data"`
	FlushInterval   time.Duration `envconfig:"PERSISTENCE_FLUSH_INTERVAL" default:"5m"`
	ShutdownTimeout time.Duration `envconfig:"PERSISTENCE_SHUTDOWN_TIMEOUT" default:"10s"`
}

type RetentionConfig struct {
	PurgeAfterDays int `envconfig:"RETENTION_PURGE_AFTER_DAYS" default:"30"`
}

// Path to a .toml, .yaml or .yml service list. Empty means the built-in catalog.
type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	// .env is a local convenience; deployments pass real environment variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	switch cfg.Persistence.Driver {
	case PersistenceDriverFile, PersistenceDriverPostgres:
	default:
		return Config{}, fmt.Errorf("unsupported PERSISTENCE_DRIVER %q", cfg.Persistence.Driver)
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
			TimeZone: "Europe/Moscow",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Moscow",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-signing-tokens",
			Duration: "1h",
		},
		Operator: OperatorConfig{
			ID: "operator",
			// tests that log in set a hash produced by password.HashPassword
			PasswordHash: "",
		},
		Channel: ChannelConfig{
			APIKey: "test-channel-key",
		},
		Schedule: ScheduleConfig{
			Open:               "10:00",
			Close:              "20:00",
			Cadence:            60 * time.Minute,
			Granularity:        30 * time.Minute,
			TimeZone:           "Europe/Moscow",
			BookingHorizonDays: 7,
		},
		Reservation: ReservationConfig{
			HoldTTL:       20 * time.Minute,
			SweepInterval: time.Minute,
		},
		Persistence: PersistenceConfig{
			Driver:          PersistenceDriverFile,
			DataDir:         "data",
			FlushInterval:   5 * time.Minute,
			ShutdownTimeout: 5 * time.Second,
		},
		Retention: RetentionConfig{
			PurgeAfterDays: 30,
		},
	}
}
