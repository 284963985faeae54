package auth

import (
	"github.com/gin-contrib/sessions"
)

// AttachToken はセッションにアクセストークンを保存します。
// 既存のトークンがある場合は置き換えられます（セッションあたり最大1つ）。
// 保存の確定は呼び出し側の session.Save() で行います。
func AttachToken(session sessions.Session, token string) {
	session.Set(sessionKeyAccessToken, token)
}

// ExtractToken はセッションに保存されたアクセストークンを返します。
// セッションにトークンが紐づいていない場合は ok=false を返します。
func ExtractToken(session sessions.Session) (token string, ok bool) {
	value := session.Get(sessionKeyAccessToken)
	if value == nil {
		return "", false
	}
	token, ok = value.(string)
	return token, ok
}
