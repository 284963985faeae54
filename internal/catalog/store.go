package catalog

import (
	"sort"
	"strings"
	"sync"
)

// Store は蔵書とレビューをプロセス内に保持します。
// 参照系は読み取りロック、レビューの更新・削除と登録は書き込みロックで
// 直列化します。呼び出し側へはコピーを返し、内部状態を共有しません。
type Store struct {
	mu    sync.RWMutex
	books map[string]*Book
}

// NewStore は初期データ付きの Store を作成します。
func NewStore(seed []Book) *Store {
	s := &Store{
		books: make(map[string]*Book, len(seed)),
	}
	for _, b := range seed {
		book := b
		if book.Reviews == nil {
			book.Reviews = make(map[string]string)
		}
		s.books[book.ISBN] = &book
	}
	return s
}

// All はカタログ全体をISBNをキーとするマップで返します。
func (s *Store) All() map[string]Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Book, len(s.books))
	for isbn, book := range s.books {
		out[isbn] = cloneBook(book)
	}
	return out
}

// ByISBN はISBNで書籍を検索します。
func (s *Store) ByISBN(isbn string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[isbn]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return cloneBook(book), nil
}

// ByAuthor は著者名の完全一致（大文字小文字は区別しない）で書籍を検索します。
func (s *Store) ByAuthor(author string) []Book {
	return s.filter(func(b *Book) bool {
		return strings.EqualFold(b.Author, author)
	})
}

// ByTitle はタイトルの完全一致（大文字小文字は区別しない）で書籍を検索します。
func (s *Store) ByTitle(title string) []Book {
	return s.filter(func(b *Book) bool {
		return strings.EqualFold(b.Title, title)
	})
}

// Reviews は指定書籍のレビューマップを返します（0件の場合は空マップ）。
func (s *Store) Reviews(isbn string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	out := make(map[string]string, len(book.Reviews))
	for user, text := range book.Reviews {
		out[user] = text
	}
	return out, nil
}

// UpsertReview は指定ユーザーのレビューを追加または上書きします。
// 同じ本文の再送信は結果として何も変えません（冪等）。
func (s *Store) UpsertReview(isbn, username, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return ErrBookNotFound
	}
	review := strings.TrimSpace(text)
	if review == "" {
		return ErrEmptyReview
	}
	book.Reviews[username] = review
	return nil
}

// DeleteReview は指定ユーザーのレビューを1件だけ削除します。
func (s *Store) DeleteReview(isbn, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return ErrBookNotFound
	}
	if len(book.Reviews) == 0 {
		return ErrNoReviews
	}
	if _, ok := book.Reviews[username]; !ok {
		return ErrReviewNotFound
	}
	delete(book.Reviews, username)
	return nil
}

func (s *Store) filter(match func(*Book) bool) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Book
	for _, book := range s.books {
		if match(book) {
			out = append(out, cloneBook(book))
		}
	}
	// マップの走査順に依存しないよう結果を安定させる
	sort.Slice(out, func(i, j int) bool {
		return out[i].ISBN < out[j].ISBN
	})
	return out
}

func cloneBook(b *Book) Book {
	out := *b
	out.Reviews = make(map[string]string, len(b.Reviews))
	for user, text := range b.Reviews {
		out.Reviews[user] = text
	}
	return out
}
