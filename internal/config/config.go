package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv string
	Port   string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string

	JWTSecret     string
	RBACModelPath string

	// Ledger
	DueSoonDays        int
	ReportCacheTTL     time.Duration
	OutboxPollInterval time.Duration
	ConsumerGroupID    string
	ShutdownTimeout    time.Duration

	ConnectRetries int
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("app_env", "development")
	v.SetDefault("port", "3000")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "feeledger")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("kafka_broker", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("rbac_model_path", "")
	v.SetDefault("due_soon_days", 7)
	v.SetDefault("report_cache_ttl", 5*time.Minute)
	v.SetDefault("outbox_poll_interval", 3*time.Second)
	v.SetDefault("consumer_group_id", "go-feeledger-receipts")
	v.SetDefault("connect_retries", 5)
	v.SetDefault("shutdown_timeout", 15*time.Second)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using environment")
	}
	return fromViper(newViper())
}

func fromViper(v *viper.Viper) Config {
	return Config{
		AppEnv:             v.GetString("app_env"),
		Port:               v.GetString("port"),
		DBHost:             v.GetString("db_host"),
		DBUser:             v.GetString("db_user"),
		DBPassword:         v.GetString("db_password"),
		DBName:             v.GetString("db_name"),
		DBPort:             v.GetString("db_port"),
		DBSSLMode:          v.GetString("db_sslmode"),
		RedisAddr:          v.GetString("redis_addr"),
		KafkaBroker:        v.GetString("kafka_broker"),
		JWTSecret:          v.GetString("jwt_secret"),
		RBACModelPath:      v.GetString("rbac_model_path"),
		DueSoonDays:        v.GetInt("due_soon_days"),
		ReportCacheTTL:     v.GetDuration("report_cache_ttl"),
		OutboxPollInterval: v.GetDuration("outbox_poll_interval"),
		ConsumerGroupID:    v.GetString("consumer_group_id"),
		ConnectRetries:     v.GetInt("connect_retries"),
		ShutdownTimeout:    v.GetDuration("shutdown_timeout"),
	}
}
