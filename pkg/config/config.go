package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
)

// Config はアプリケーション全体の設定を定義します
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Time     TimeConfig
	Security SecurityConfig
}

// ServerConfig はサーバー設定を定義します
type ServerConfig struct {
	Port  int  `env:"SERVER_PORT,default=8080"`
	Debug bool `env:"DEBUG,default=false"`
}

// LogConfig はロガー設定を定義します
type LogConfig struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=json"`
	Output string `env:"LOG_OUTPUT,default=stdout"`
}

// TimeConfig は時刻解決に関する設定を定義します
type TimeConfig struct {
	// DefaultZone は tz 未指定時に使うタイムゾーンです。空ならプロセスのローカルゾーン
	DefaultZone string `env:"DEFAULT_TIME_ZONE,default="`
	// ZoneInfo はタイムゾーンDBの探索で最優先されるディレクトリまたはzipです
	ZoneInfo string `env:"ZONEINFO,default="`
	// HealthIntervalSeconds はタイムゾーンDB監視ジョブの実行間隔(秒)です
	HealthIntervalSeconds int `env:"TZ_HEALTH_INTERVAL_SECONDS,default=300"`
}

// SecurityConfig はセキュリティ設定を定義します
type SecurityConfig struct {
	CORSOrigins string `env:"CORS_ORIGINS,default=*"`
	EnableHSTS  bool   `env:"ENABLE_HSTS,default=false"`
}

// HealthInterval は監視間隔をtime.Durationで返します
func (c TimeConfig) HealthInterval() time.Duration {
	return time.Duration(c.HealthIntervalSeconds) * time.Second
}

// AllowOrigins はCORS許可オリジンをスライスで返します
func (c SecurityConfig) AllowOrigins() []string {
	return parseCORSOrigins(c.CORSOrigins)
}

// Load は環境変数から設定を読み込みます
func Load() (*Config, error) {
	cfg := &Config{}

	// go-env はネストした構造体を辿らないため個別に読み込む
	targets := []struct {
		name string
		v    any
	}{
		{"server", &cfg.Server},
		{"log", &cfg.Log},
		{"time", &cfg.Time},
		{"security", &cfg.Security},
	}
	for _, target := range targets {
		if _, err := env.UnmarshalFromEnviron(target.v); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", target.name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate は設定値の整合性を検証します
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}
	if c.Time.HealthIntervalSeconds <= 0 {
		return fmt.Errorf("invalid TZ_HEALTH_INTERVAL_SECONDS: %d", c.Time.HealthIntervalSeconds)
	}
	return nil
}

// parseCORSOrigins はカンマ区切りのオリジン文字列をスライスに変換します
func parseCORSOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
