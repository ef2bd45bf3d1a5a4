package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Upload   UploadConfig
	Seed     SeedConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	LogQueries  bool
}

type JWTConfig struct {
	Secret       string
	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool
}

// StorageConfig configura o bucket S3 (ou compatível, ex.: R2/MinIO)
type StorageConfig struct {
	Bucket          string
	Region          string
	Endpoint        string // vazio para AWS padrão
	UsePathStyle    bool
	AccessKeyID     string
	SecretAccessKey string
	SignedURLTTL    time.Duration
	UploadURLTTL    time.Duration
}

type UploadConfig struct {
	MaxBytes int64
}

type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// ErrMissingJWTSecret impede subir em produção com o segredo padrão
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required in production")

const devJWTSecret = "dev-secret"

// Load carrega as configurações do ambiente. O arquivo .env é opcional.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			LogQueries:  v.GetBool("DB_LOG_QUERIES"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			SessionTTL:   v.GetDuration("JWT_SESSION_TTL"),
			CookieName:   v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
		},
		Storage: StorageConfig{
			Bucket:          v.GetString("S3_BUCKET_NAME"),
			Region:          v.GetString("AWS_REGION"),
			Endpoint:        v.GetString("AWS_ENDPOINT_URL_S3"),
			UsePathStyle:    v.GetBool("S3_FORCE_PATH_STYLE"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			SignedURLTTL:    v.GetDuration("S3_SIGNED_URL_TTL"),
			UploadURLTTL:    v.GetDuration("S3_UPLOAD_URL_TTL"),
		},
		Upload: UploadConfig{
			MaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),
		},
		Seed: SeedConfig{
			AdminEmail:    v.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "docrepo")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)

	v.SetDefault("JWT_SESSION_TTL", "720h")
	v.SetDefault("SESSION_COOKIE_NAME", "docrepo_session")

	v.SetDefault("AWS_REGION", "auto")
	v.SetDefault("S3_SIGNED_URL_TTL", "1h")
	v.SetDefault("S3_UPLOAD_URL_TTL", "15m")

	v.SetDefault("UPLOAD_MAX_BYTES", 50<<20)

	v.SetDefault("SEED_ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("SEED_ADMIN_PASSWORD", "ChangeMe123!")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		if c.IsProduction() {
			return ErrMissingJWTSecret
		}
		c.JWT.Secret = devJWTSecret
	}
	if c.IsProduction() {
		c.JWT.CookieSecure = true
	}
	return nil
}

// IsProduction indica se o ambiente é produção
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
