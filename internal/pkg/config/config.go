package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, rates), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Pricing   PricingConfig
	Lifecycle LifecycleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"parkmate"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"parkmate"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Tokens are issued by the external auth provider; this service only validates them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// An empty Addr disables the location cache.
type RedisConfig struct {
	Addr             string        `envconfig:"REDIS_ADDR" default:""`
	Password         string        `envconfig:"REDIS_PASSWORD" default:""`
	DB               int           `envconfig:"REDIS_DB" default:"0"`
	LocationCacheTTL time.Duration `envconfig:"LOCATION_CACHE_TTL" default:"30s"`
}

// Without brokers the outbox relay logs events instead of publishing them.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"parkmate.reservations"`
}

type PricingConfig struct {
	TimeZone               string  `envconfig:"PRICING_TIMEZONE" default:"UTC"`
	DayStartHour           int     `envconfig:"PRICING_DAY_START_HOUR" default:"7"`
	DayEndHour             int     `envconfig:"PRICING_DAY_END_HOUR" default:"21"`
	DayMinimumCharge       float64 `envconfig:"PRICING_DAY_MINIMUM" default:"10"`
	DayFirstTwoHoursFlat   float64 `envconfig:"PRICING_DAY_FIRST_TWO_HOURS" default:"20"`
	DayPerHourAfterTwo     float64 `envconfig:"PRICING_DAY_PER_HOUR_AFTER_TWO" default:"7"`
	NightMinimumCharge     float64 `envconfig:"PRICING_NIGHT_MINIMUM" default:"12"`
	NightFirstTwoHoursFlat float64 `envconfig:"PRICING_NIGHT_FIRST_TWO_HOURS" default:"24"`
	NightPerHourAfterTwo   float64 `envconfig:"PRICING_NIGHT_PER_HOUR_AFTER_TWO" default:"8.4"`
	RateTableFile          string  `envconfig:"RATE_TABLE_FILE" default:""`
}

type LifecycleConfig struct {
	GatewayTimeout      time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"5s"`
	ExpirySweepInterval time.Duration `envconfig:"EXPIRY_SWEEP_INTERVAL" default:"1m"`
	ExpiryBatchSize     int           `envconfig:"EXPIRY_BATCH_SIZE" default:"100"`
	OutboxPollInterval  time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"5s"`
	OutboxBatchSize     int           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	switch cfg.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Kafka: KafkaConfig{
			Topic: "parkmate.reservations",
		},
		Pricing: PricingConfig{
			TimeZone:               "UTC",
			DayStartHour:           7,
			DayEndHour:             21,
			DayMinimumCharge:       10,
			DayFirstTwoHoursFlat:   20,
			DayPerHourAfterTwo:     7,
			NightMinimumCharge:     12,
			NightFirstTwoHoursFlat: 24,
			NightPerHourAfterTwo:   8.4,
		},
		Lifecycle: LifecycleConfig{
			GatewayTimeout:      2 * time.Second,
			ExpirySweepInterval: time.Minute,
			ExpiryBatchSize:     100,
			OutboxPollInterval:  time.Second,
			OutboxBatchSize:     50,
		},
	}
}
