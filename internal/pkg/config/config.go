package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Secrets and values that differ between environments. The Razorpay
//   key pair is required so the process refuses to start serving payment
//   traffic without gateway credentials.
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Razorpay RazorpayConfig
	SMTP     SMTPConfig
	Payment  PaymentConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// AdminConfig is the single back-office account allowed to list bookings and
// override booking status. The password is stored as a bcrypt hash.
type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type RazorpayConfig struct {
	KeyID         string        `envconfig:"RAZORPAY_KEY_ID" required:"true"`
	KeySecret     string        `envconfig:"RAZORPAY_KEY_SECRET" required:"true"`
	WebhookSecret string        `envconfig:"RAZORPAY_WEBHOOK_SECRET"`
	BaseURL       string        `envconfig:"RAZORPAY_BASE_URL" default:"https://api.razorpay.com/v1"`
	Timeout       time.Duration `envconfig:"RAZORPAY_TIMEOUT" default:"15s"`
}

type SMTPConfig struct {
	Host       string        `envconfig:"SMTP_HOST" default:"smtp.zoho.com"`
	Port       int           `envconfig:"SMTP_PORT" default:"587"`
	Secure     bool          `envconfig:"SMTP_SECURE" default:"false"` // true for 465, false for 587
	User       string        `envconfig:"SMTP_USER" default:""`
	Password   string        `envconfig:"SMTP_PASSWORD" default:""`
	From       string        `envconfig:"SMTP_FROM" default:"sales@oasistourandtravels.com"`
	SalesEmail string        `envconfig:"SALES_EMAIL" default:"sales@oasistourandtravels.com"`
	Timeout    time.Duration `envconfig:"SMTP_TIMEOUT" default:"15s"`
}

// PaymentConfig bounds are in major currency units; the gateway is always
// addressed in minor units (paise for INR).
type PaymentConfig struct {
	MinAmount int64  `envconfig:"PAYMENT_MIN_AMOUNT" default:"1000"`
	MaxAmount int64  `envconfig:"PAYMENT_MAX_AMOUNT" default:"1000000"`
	Currency  string `envconfig:"PAYMENT_CURRENCY" default:"INR"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// KafkaConfig is optional: with no brokers configured the service runs
// without the booking event stream.
type KafkaConfig struct {
	Brokers      []string `envconfig:"KAFKA_BROKERS"`
	BookingTopic string   `envconfig:"KAFKA_BOOKING_TOPIC" default:"booking-events"`
}

type CatalogConfig struct {
	PackagesFile string `envconfig:"PACKAGES_FILE" default:"packages-data.json"`
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
			TimeZone: "Asia/Kolkata",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "1h",
		},
		Razorpay: RazorpayConfig{
			KeyID:         "rzp_test_key",
			KeySecret:     "test_key_secret",
			WebhookSecret: "test_webhook_secret",
			BaseURL:       "https://api.razorpay.com/v1",
			Timeout:       time.Second,
		},
		SMTP: SMTPConfig{
			Host:       "localhost",
			Port:       2525,
			From:       "sales@example.com",
			SalesEmail: "sales@example.com",
			Timeout:    time.Second,
		},
		Payment: PaymentConfig{
			MinAmount: 1000,
			MaxAmount: 1000000,
			Currency:  "INR",
		},
	}
}
