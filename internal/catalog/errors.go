package catalog

import "fmt"

// Error はカタログ操作の失敗を表すエラー型です。
// Code はHTTP境界でステータスコードに対応づけられます。
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

var (
	// ErrBookNotFound は指定されたISBNの書籍が存在しない場合に返されます。
	ErrBookNotFound = newError("BOOK_NOT_FOUND", "Book not found", nil)
	// ErrNoReviews はレビューが1件もない書籍からの削除要求に対して返されます。
	ErrNoReviews = newError("NO_REVIEWS", "No reviews found for this book", nil)
	// ErrReviewNotFound は指定ユーザーのレビューが存在しない場合に返されます。
	ErrReviewNotFound = newError("REVIEW_NOT_FOUND", "Review not found", nil)
	// ErrEmptyReview は空白のみのレビュー本文に対して返されます。
	ErrEmptyReview = newError("EMPTY_REVIEW", "Review is required", nil)
)
