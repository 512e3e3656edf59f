package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, Mongo URI, etc.), security settings
// - default: Values common across all environments (timeouts, labels, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Midtrans MidtransConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type MongoConfig struct {
	URI            string        `envconfig:"MONGO_URI" required:"true"`
	Database       string        `envconfig:"MONGO_DATABASE" default:"nailbook"`
	ConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
	QueryTimeout   time.Duration `envconfig:"MONGO_QUERY_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// MidtransConfig selects the Snap/Core API credentials and how webhook
// notifications are authenticated (local digest or a status call back to
// Midtrans).
type MidtransConfig struct {
	ServerKey   string        `envconfig:"MIDTRANS_SERVER_KEY" required:"true"`
	ClientKey   string        `envconfig:"MIDTRANS_CLIENT_KEY" default:""`
	Environment string        `envconfig:"MIDTRANS_ENVIRONMENT" default:"sandbox"`
	VerifyMode  string        `envconfig:"MIDTRANS_VERIFY_MODE" default:"local"`
	Timeout     time.Duration `envconfig:"MIDTRANS_TIMEOUT" default:"10s"`
}

type UploadConfig struct {
	Dir       string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxImages int    `envconfig:"UPLOAD_MAX_IMAGES" default:"5"`
}

func LoadConfig() (Config, error) {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

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
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "nailbook_test",
			ConnectTimeout: 10 * time.Second,
			QueryTimeout:   5 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key",
			Duration: "24h",
		},
		Midtrans: MidtransConfig{
			ServerKey:   "SB-Mid-server-test",
			Environment: "sandbox",
			VerifyMode:  "local",
			Timeout:     10 * time.Second,
		},
		Upload: UploadConfig{
			Dir:       "uploads",
			MaxImages: 5,
		},
	}
}
