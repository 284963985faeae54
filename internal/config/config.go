// Package config は環境変数から設定を読み込み、アプリケーション全体で使用する設定を提供します。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// devFallbackSecret は開発環境で秘密鍵が未設定の場合に使用する固定値です。
// release モードでは Validate が環境変数からの注入を強制します。
const devFallbackSecret = "fingerprint_customer"

// Config はアプリケーションの設定を保持する構造体です。
type Config struct {
	// 認証設定
	SessionSecret string // セッションクッキー署名用の秘密鍵
	TokenSecret   string // アクセストークン（JWT）署名用の秘密鍵
	TokenTTL      int    // アクセストークンの有効期間（秒）

	// サーバー設定
	Port    string // APIサーバーのポート番号
	GinMode string // Ginの実行モード (debug, release, test)

	// CORS設定
	CORSAllowedOrigins string // CORS許可オリジン（カンマ区切り）
}

// Load は環境変数から設定を読み込みます。
// .env.local ファイルが存在する場合はそこから読み込みます。
func Load() (*Config, error) {
	// .env.local ファイルを読み込む（存在しない場合はスキップ）
	loadEnvFile()

	config := &Config{
		// 認証設定
		SessionSecret: getEnv("SESSION_SECRET", devFallbackSecret),
		TokenSecret:   getEnv("TOKEN_SECRET", devFallbackSecret),
		TokenTTL:      getEnvAsInt("TOKEN_TTL_SECONDS", 3600),

		// サーバー設定
		Port:    getEnv("PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "debug"),

		// CORS設定
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	// 必須設定のバリデーション
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	if err := godotenv.Load(".env.local"); err == nil {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	parent := filepath.Dir(cwd)
	if parent == "" || parent == cwd {
		return
	}

	_ = godotenv.Load(filepath.Join(parent, ".env.local"))
}

// Validate は設定の妥当性を検証します。
func (c *Config) Validate() error {
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL_SECONDS must be positive")
	}

	// ローカル開発では秘密鍵は固定値でも動作させる
	// 本番環境では環境変数からの注入を必須とする
	if c.GinMode == "release" {
		if c.SessionSecret == "" || c.SessionSecret == devFallbackSecret {
			return fmt.Errorf("SESSION_SECRET is required in release mode")
		}
		if c.TokenSecret == "" || c.TokenSecret == devFallbackSecret {
			return fmt.Errorf("TOKEN_SECRET is required in release mode")
		}
	}

	return nil
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します。
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt は環境変数を整数として取得します。
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
