package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
}

type AuthConfig struct {
	AccessSecret string
	AccessTTL    time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

type StorageConfig struct {
	S3Bucket      string
	S3Region      string
	S3Endpoint    string
	PublicBaseURL string
	LocalDir      string
}

type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	DropdownTTL time.Duration
}

type SecretsConfig struct {
	AWSSecretName string
	AWSRegion     string
}

type Config struct {
	Environment  string
	HTTP         HTTPConfig
	DB           DBConfig
	Auth         AuthConfig
	Log          LogConfig
	Upload       UploadConfig
	Storage      StorageConfig
	Redis        RedisConfig
	Secrets      SecretsConfig
	LimitPerPage int
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()
	// legacy names used by earlier deployments
	_ = v.BindEnv("HTTP_PORT", "HTTP_PORT", "EXPRESS_PORT")
	_ = v.BindEnv("JWT_ACCESS_SECRET", "JWT_ACCESS_SECRET", "SECRET_KEY")

	setDefaults(v)

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetDuration("DB_CONN_MAX_IDLE_TIME"),
			ConnectTimeout:  v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
			AccessTTL:    v.GetDuration("JWT_ACCESS_TTL"),
		},
		Log: LogConfig{
			Level:      v.GetString("LOG_LEVEL"),
			File:       v.GetString("LOG_FILE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Upload: UploadConfig{
			Dir:      v.GetString("UPLOAD_DIR"),
			MaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),
		},
		Storage: StorageConfig{
			S3Bucket:      v.GetString("STORAGE_S3_BUCKET"),
			S3Region:      v.GetString("STORAGE_S3_REGION"),
			S3Endpoint:    v.GetString("STORAGE_S3_ENDPOINT"),
			PublicBaseURL: v.GetString("STORAGE_PUBLIC_BASE_URL"),
			LocalDir:      v.GetString("STORAGE_LOCAL_DIR"),
		},
		Redis: RedisConfig{
			Addr:        v.GetString("REDIS_ADDR"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DB:          v.GetInt("REDIS_DB"),
			DropdownTTL: v.GetDuration("CACHE_DROPDOWN_TTL"),
		},
		Secrets: SecretsConfig{
			AWSSecretName: v.GetString("AWS_SECRETS_NAME"),
			AWSRegion:     v.GetString("AWS_SECRETS_REGION"),
		},
		LimitPerPage: v.GetInt("PAGINATION_LIMIT_PER_PAGE"),
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 30*time.Second)
	v.SetDefault("DB_CONNECT_TIMEOUT", 2*time.Second)
	v.SetDefault("JWT_ACCESS_TTL", 4*time.Hour)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_MAX_SIZE_MB", 50)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("UPLOAD_DIR", "./tmp/uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", 1000000)
	v.SetDefault("STORAGE_LOCAL_DIR", "./public")
	v.SetDefault("CACHE_DROPDOWN_TTL", 10*time.Minute)
	v.SetDefault("PAGINATION_LIMIT_PER_PAGE", 10)
}

// Validate is called after secret overlays have been applied.
func (c *Config) Validate() error {
	if c.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if c.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if c.LimitPerPage <= 0 {
		return fmt.Errorf("PAGINATION_LIMIT_PER_PAGE must be positive")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
