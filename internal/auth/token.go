package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired は有効期限切れのトークンに対して返されます。
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenMalformed は構造的に不正なトークンに対して返されます。
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenSignatureInvalid は署名検証に失敗したトークンに対して返されます。
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
)

// Claims はアクセストークンに埋め込むクレームです。
// data フィールドにユーザー名を保持します。
type Claims struct {
	Data string `json:"data"`
	jwt.RegisteredClaims
}

// TokenService はアクセストークン（JWT, HS256）の発行と検証を行います。
// 秘密鍵とトークンのみに依存する純粋な処理で、内部状態は持ちません。
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService は TokenService を作成します。
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue は指定したユーザー名を data クレームに持つ署名付きトークンを発行します。
// 有効期限は発行時刻 + TTL です。
func (t *TokenService) Issue(identity string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Data: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return token.SignedString(t.secret)
}

// Verify はトークンを検証し、埋め込まれたユーザー名を返します。
// 構造・署名の検証を先に行い、その後で有効期限を判定します。
// 両方に問題がある場合は署名側の失敗が優先されます。
func (t *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenUnverifiable):
		return "", ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	default:
		return "", err
	}

	if !token.Valid {
		return "", ErrTokenSignatureInvalid
	}
	return claims.Data, nil
}
