// Package auth は認証・認可機能を提供します。
package auth

import (
	"github.com/yourusername/book-reviews/internal/config"
)

const (
	// SessionCookieName はセッションIDを運ぶクッキーの名前です。
	SessionCookieName = "br_session"

	sessionKeyAccessToken = "access_token"
)

// ContextUserKey は、ハンドラー間でログイン済みユーザー名を共有するためのキーです。
const ContextUserKey = "auth.user"

// Manager は認証処理と依存コンポーネントをまとめた構造体です。
type Manager struct {
	cfg    *config.Config
	users  *CredentialStore
	tokens *TokenService
}

// NewManager は認証マネージャーを作成します。
func NewManager(cfg *config.Config, users *CredentialStore, tokens *TokenService) *Manager {
	return &Manager{
		cfg:    cfg,
		users:  users,
		tokens: tokens,
	}
}

// SessionMaxAgeSeconds はセッションクッキーの MaxAge に利用する秒数を返します。
// セッションはトークンと同じ期間だけ生かします。
func SessionMaxAgeSeconds(cfg *config.Config) int {
	return cfg.TokenTTL
}
