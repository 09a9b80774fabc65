// Package config предоставляет структуры и функции для парсинга и загрузки конфига
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// PlaceholderSecret — секрет из примера конфигурации, запуск с ним запрещен.
const PlaceholderSecret = "your-secret-key"

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env:"APP_ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	GRPCHealthAddress       string `yaml:"grpc_health_address" env:"GRPC_HEALTH_ADDRESS"`
	SentryDSN               string `yaml:"sentry_dsn" env:"SENTRY_DSN"`
	HTTPServer              `yaml:"http_server"`
	RedisConnection         `yaml:"redis_connection"`
	RabbitMQ                `yaml:"rabbitmq"`
	JWTToken                `yaml:"jwttoken"`
	Admin                   `yaml:"admin"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кэш.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
	CacheTTL     time.Duration `yaml:"cache_ttl" env-default:"5m"`
}

// RabbitMQ структура для подключения к брокеру событий.
// Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL      string `yaml:"url" env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env-default:"blog.events"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string `yaml:"jwt_secret_key" env:"JWT_SECRET"`
}

// Admin учетные данные администратора, создаваемого при старте
type Admin struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME"`
	Email    string `yaml:"email" env:"ADMIN_EMAIL"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

// Enabled сообщает, заданы ли все поля администратора.
func (a Admin) Enabled() bool {
	return a.Username != "" && a.Email != "" && a.Password != ""
}

// Load читает конфиг из файла и переменных окружения и проверяет его.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad функция для загрузки конфига по пути из CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Validate проверяет обязательные параметры.
func (c *Config) Validate() error {
	var errs []error
	secret := strings.TrimSpace(c.JWTSecretKey)
	if secret == "" {
		errs = append(errs, errors.New("jwt secret is not set"))
	} else if secret == PlaceholderSecret {
		errs = append(errs, errors.New("jwt secret is the placeholder value"))
	}
	if strings.TrimSpace(c.StorageConnectionString) == "" {
		errs = append(errs, errors.New("storage connection string is not set"))
	}
	return errors.Join(errs...)
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageConnectionString: %s\n"+
			"MigrationsPath: %s\n"+
			"GRPCHealthAddress: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"  CacheTTL: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"RabbitMQ:\n"+
			"  Enabled: %t\n"+
			"  Exchange: %s\n"+
			"JWTToken:\n"+
			"  JWTSecretKey: %s\n"+
			"Admin:\n"+
			"  Username: %s\n",
		c.Env,
		mask(c.StorageConnectionString),
		c.MigrationsPath,
		c.GRPCHealthAddress,
		c.AddressRedis,
		c.DB,
		c.CacheTTL,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.RabbitMQ.URL != "",
		c.Exchange,
		mask(c.JWTSecretKey),
		c.Admin.Username,
	)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
