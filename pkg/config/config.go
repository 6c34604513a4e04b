package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported store drivers
const (
	DriverDynamoDB = "dynamodb"
	DriverMongoDB  = "mongodb"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// AppConfig holds the complete configuration for the application.
// It is built once at startup and never mutated afterwards.
type AppConfig struct {
	Environment string         `mapstructure:"environment"`
	LogLevel    string         `mapstructure:"log_level"`
	ServiceName string         `mapstructure:"service_name"`
	Store       StoreConfig    `mapstructure:"store"`
	MongoDB     MongoConfig    `mapstructure:"mongodb"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Postgres    PostgresConfig `mapstructure:"postgres"`
	Server      ServerConfig   `mapstructure:"server"`
}

// StoreConfig selects the progression store backend and the table it reads.
type StoreConfig struct {
	Driver    string `mapstructure:"driver"`
	TableName string `mapstructure:"table_name"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type PostgresConfig struct {
	URI      string `mapstructure:"uri"`
	MaxConns int    `mapstructure:"max_conns"`
	MinConns int    `mapstructure:"min_conns"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load loads configuration from file and environment variables
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("service_name", "playerprogression")
	v.SetDefault("store.driver", DriverDynamoDB)
	v.SetDefault("mongodb.connect_timeout", 10*time.Second)
	v.SetDefault("redis.key_prefix", "playerprogress:")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("server.addr", ":8080")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Table and region keep the names the deployment templates already export.
	v.BindEnv("service_name", "SERVICE_NAME")
	v.BindEnv("environment", "ENVIRONMENT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.table_name", "PLAYER_PROGRESS_TABLE_NAME")
	v.BindEnv("store.region", "REGION", "AWS_REGION")
	v.BindEnv("store.endpoint", "STORE_ENDPOINT")
	v.BindEnv("mongodb.uri", "MONGODB_URI")
	v.BindEnv("mongodb.database", "MONGODB_DATABASE")
	v.BindEnv("mongodb.connect_timeout", "MONGODB_CONNECT_TIMEOUT")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.key_prefix", "REDIS_KEY_PREFIX")
	v.BindEnv("postgres.uri", "POSTGRES_URI")
	v.BindEnv("postgres.max_conns", "POSTGRES_MAX_CONNS")
	v.BindEnv("postgres.min_conns", "POSTGRES_MIN_CONNS")
	v.BindEnv("server.addr", "SERVER_ADDR")

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid for the selected driver
func (c *AppConfig) Validate() error {
	if c.ServiceName == "" {
		return errors.New("service_name is required")
	}
	if c.Store.TableName == "" {
		return errors.New("store.table_name is required")
	}

	switch c.Store.Driver {
	case DriverDynamoDB:
		if c.Store.Region == "" {
			return errors.New("store.region is required for dynamodb")
		}
	case DriverMongoDB:
		if c.MongoDB.URI == "" {
			return errors.New("mongodb.uri is required")
		}
		if c.MongoDB.Database == "" {
			return errors.New("mongodb.database is required")
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required")
		}
	case DriverPostgres:
		if c.Postgres.URI == "" {
			return errors.New("postgres.uri is required")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	return nil
}
