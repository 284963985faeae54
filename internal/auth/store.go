package auth

import (
	"errors"
	"regexp"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// usernamePattern はユーザー名の形式（英数字3〜20文字）を定義します。
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,20}$`)

const minPasswordLength = 6

var (
	// ErrInvalidUsername はユーザー名が形式要件を満たさない場合に返されます。
	ErrInvalidUsername = errors.New("username must be 3-20 alphanumeric characters")
	// ErrInvalidPassword はパスワードが長さ要件を満たさない場合に返されます。
	ErrInvalidPassword = errors.New("password must be at least 6 characters")
	// ErrDuplicateUsername は既に登録済みのユーザー名で登録しようとした場合に返されます。
	ErrDuplicateUsername = errors.New("username already exists")
)

// CredentialStore は登録済みユーザーの認証情報をプロセス内に保持します。
// ユーザーは登録後に変更・削除されることはありません。
type CredentialStore struct {
	mu    sync.Mutex
	users map[string]string // ユーザー名 -> bcryptハッシュ
}

// NewCredentialStore は空の CredentialStore を作成します。
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		users: make(map[string]string),
	}
}

// Register は新しいユーザーを登録します。
// ユーザー名の一意性チェックと登録は1つの排他区間で行い、
// 同名ユーザーの同時登録が重複を生まないようにします。
func (s *CredentialStore) Register(username, password string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	if len(password) < minPasswordLength {
		return ErrInvalidPassword
	}

	// ハッシュ化はコストが高いためロックの外で行う
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[username]; exists {
		return ErrDuplicateUsername
	}
	s.users[username] = string(hash)
	return nil
}

// Authenticate は登録時とまったく同じユーザー名・パスワードの組が
// 提示された場合にのみ true を返します。
func (s *CredentialStore) Authenticate(username, password string) bool {
	s.mu.Lock()
	hash, exists := s.users[username]
	s.mu.Unlock()
	if !exists {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
