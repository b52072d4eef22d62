// Package config はダッシュボードサービスの設定の読み込みを提供します。
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config はダッシュボードサービスの全設定を保持します。
// 値はconfig.yamlと環境変数（例: TRADER_API_BASE_URL）から読み込まれます。
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	TraderAPI TraderAPIConfig `mapstructure:"trader_api"`
	DB        DBConfig        `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// TraderAPIConfig は上流トレーダーサービスへの接続設定です。
type TraderAPIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DBConfig はPostgreSQLへの接続設定です。
type DBConfig struct {
	Host          string `mapstructure:"host"`
	Port          string `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Name          string `mapstructure:"name"`
	SSLMode       string `mapstructure:"sslmode"`
	RunMigrations bool   `mapstructure:"run_migrations"`
}

// RedisConfig はRedisへの接続設定です。
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
}

// AuthConfig は認証まわりの設定です。
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	CookieMaxAge  int           `mapstructure:"cookie_max_age"`
	SecureCookie  bool          `mapstructure:"secure_cookie"`
	AdminUserID   string        `mapstructure:"admin_user_id"`
	AdminPassword string        `mapstructure:"admin_password"`
}

// CacheConfig はチャートデータキャッシュの設定です。
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// setDefaults はローカル開発でそのまま動く既定値を登録します。
// シークレット類に既定値はありません。
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("trader_api.base_url", "http://localhost:8081")
	v.SetDefault("trader_api.timeout", 10*time.Second)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "dashboard")
	v.SetDefault("db.name", "dashboard")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.run_migrations", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("auth.session_ttl", 7*24*time.Hour)
	v.SetDefault("auth.cookie_max_age", 7*24*60*60)
	v.SetDefault("auth.secure_cookie", false)
	v.SetDefault("cache.ttl", time.Minute)
}

// Load はconfig.yaml（任意）と環境変数から設定を読み込みます。
// 環境変数はキーのドットをアンダースコアに置き換えた大文字名で上書きできます。
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// 設定ファイルは任意。環境変数だけでも起動できる
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret is required")
	}

	return &cfg, nil
}
