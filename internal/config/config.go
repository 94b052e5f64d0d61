// Package config はプロセス起動時に一度だけ構築される設定を提供する。
// .envファイルを読み込んだ後、環境変数から値を取得する。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultSecretKey はSECRET_KEYが未設定の場合の共有シークレット。
const DefaultSecretKey = "your-secret-key"

// Config はサーバーの設定。
type Config struct {
	// DatabaseURL はデータベースの接続URL。
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	// SecretKey はAuthorizationヘッダーで照合する共有シークレット。
	SecretKey string `env:"SECRET_KEY" envDefault:"your-secret-key"`
	// Port はサーバーのリッスンポート。
	Port string `env:"PORT" envDefault:"8000"`
	// AllowedOrigins はCORSで許可するオリジン。"*" で全て許可する。
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	// ShutdownTimeout はグレースフルシャットダウンの待ち時間。
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load はenvFile（存在する場合）を読み込んでから環境変数を解析する。
// 既に設定されている環境変数は.envファイルの値で上書きしない。
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s の読み込みに失敗: %w", envFile, err)
		}
	}
	return Parse()
}

// Parse は環境変数のみから設定を構築する。
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("環境変数の解析に失敗: %w", err)
	}
	return &cfg, nil
}

// Addr はリッスンアドレスを返す。
func (c *Config) Addr() string {
	return ":" + c.Port
}
