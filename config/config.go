package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置（config.yaml + FEEDLINE_* 环境变量覆盖）
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Media    MediaConfig
	Sentry   SentryConfig
	Tracing  TracingConfig
	Login    LoginConfig
}

type ServerConfig struct {
	Addr string
	Mode string // gin mode: debug / release / test
}

type DatabaseConfig struct {
	Driver string // sqlite / postgres
	DSN    string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	// IndexTTL 首页渲染缓存的过期时间
	IndexTTL time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type MediaConfig struct {
	Dir string
}

type SentryConfig struct {
	DSN string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

type LoginConfig struct {
	// 登录接口按来源 IP 限速
	RatePerSecond float64
	Burst         int
}

// Load 读取配置；缺省值保证零配置可启动
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("FEEDLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "feedline.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.index_ttl", "20s")
	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl", "72h")
	v.SetDefault("media.dir", "./media")
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4318")
	v.SetDefault("login.rate_per_second", 1.0)
	v.SetDefault("login.burst", 5)

	if err := v.ReadInConfig(); err != nil {
		// 配置文件缺失时仅用缺省值
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
			Mode: v.GetString("server.mode"),
		},
		Database: DatabaseConfig{
			Driver: v.GetString("database.driver"),
			DSN:    v.GetString("database.dsn"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			IndexTTL: v.GetDuration("cache.index_ttl"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			TokenTTL:  v.GetDuration("auth.token_ttl"),
		},
		Media: MediaConfig{
			Dir: v.GetString("media.dir"),
		},
		Sentry: SentryConfig{
			DSN: v.GetString("sentry.dsn"),
		},
		Tracing: TracingConfig{
			Enabled:  v.GetBool("tracing.enabled"),
			Endpoint: v.GetString("tracing.endpoint"),
		},
		Login: LoginConfig{
			RatePerSecond: v.GetFloat64("login.rate_per_second"),
			Burst:         v.GetInt("login.burst"),
		},
	}
	return cfg, nil
}
