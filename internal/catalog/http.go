package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/book-reviews/internal/auth"
)

// CatalogReader は公開カタログの参照を提供します。
type CatalogReader interface {
	All() map[string]Book
	ByISBN(isbn string) (Book, error)
	ByAuthor(author string) []Book
	ByTitle(title string) []Book
	Reviews(isbn string) (map[string]string, error)
}

// ReviewWriter はレビュー台帳への書き込みを提供します。
type ReviewWriter interface {
	UpsertReview(isbn, username, text string) error
	DeleteReview(isbn, username string) error
}

// ListHandler は GET / のハンドラーを返します。
func ListHandler(store CatalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.All())
	}
}

// ISBNHandler は GET /isbn/:isbn のハンドラーを返します。
func ISBNHandler(store CatalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		book, err := store.ByISBN(c.Param("isbn"))
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, book)
	}
}

// AuthorHandler は GET /author/:author のハンドラーを返します。
func AuthorHandler(store CatalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		books := store.ByAuthor(c.Param("author"))
		if len(books) == 0 {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    "BOOK_NOT_FOUND",
				"message": "No books found by this author",
			})
			return
		}
		c.JSON(http.StatusOK, books)
	}
}

// TitleHandler は GET /title/:title のハンドラーを返します。
func TitleHandler(store CatalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		books := store.ByTitle(c.Param("title"))
		if len(books) == 0 {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    "BOOK_NOT_FOUND",
				"message": "No books found with this title",
			})
			return
		}
		c.JSON(http.StatusOK, books)
	}
}

// ReviewsHandler は GET /review/:isbn のハンドラーを返します。
// レビューの参照は認証なしで許可されます。
func ReviewsHandler(store CatalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := store.Reviews(c.Param("isbn"))
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// UpsertReviewHandler は PUT /customer/auth/review/:isbn のハンドラーを返します。
// レビュー本文は review クエリパラメータで受け取り、対象ユーザーは
// 認証ミドルウェアがコンテキストに載せたユーザー名に限定されます。
func UpsertReviewHandler(store ReviewWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUser(c)
		if !ok {
			return
		}

		if err := store.UpsertReview(c.Param("isbn"), username, c.Query("review")); err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Review added/updated successfully",
		})
	}
}

// DeleteReviewHandler は DELETE /customer/auth/review/:isbn のハンドラーを返します。
// 削除できるのは呼び出したユーザー自身のレビューのみです。
func DeleteReviewHandler(store ReviewWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUser(c)
		if !ok {
			return
		}

		if err := store.DeleteReview(c.Param("isbn"), username); err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Review deleted successfully",
		})
	}
}

func currentUser(c *gin.Context) (string, bool) {
	username := c.GetString(auth.ContextUserKey)
	if username == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code":    "UNAUTHORIZED",
			"message": "Please login to access this resource",
		})
		return "", false
	}
	return username, true
}

func respondWithError(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(statusForCode(apiErr.Code), gin.H{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "INTERNAL_ERROR",
		"message": "Internal server error",
	})
}

func statusForCode(code string) int {
	switch code {
	case "BOOK_NOT_FOUND", "NO_REVIEWS", "REVIEW_NOT_FOUND":
		return http.StatusNotFound
	case "EMPTY_REVIEW", "INVALID_INPUT":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
