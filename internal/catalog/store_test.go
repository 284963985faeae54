package catalog

import (
	"errors"
	"sync"
	"testing"
)

func newTestStore() *Store {
	return NewStore([]Book{
		{ISBN: "1", Author: "Chinua Achebe", Title: "Things Fall Apart"},
		{ISBN: "8", Author: "Jane Austen", Title: "Pride and Prejudice"},
		{ISBN: "4", Author: "Unknown", Title: "The Epic Of Gilgamesh"},
		{ISBN: "5", Author: "Unknown", Title: "The Book Of Job"},
	})
}

func TestByISBN(t *testing.T) {
	store := newTestStore()

	book, err := store.ByISBN("8")
	if err != nil {
		t.Fatalf("ByISBN returned error: %v", err)
	}
	if book.Title != "Pride and Prejudice" {
		t.Fatalf("unexpected title: %q", book.Title)
	}
	if book.Reviews == nil {
		t.Fatal("expected an initialized reviews map")
	}

	if _, err := store.ByISBN("999"); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("ByISBN(999) = %v, want ErrBookNotFound", err)
	}
}

func TestByAuthorCaseInsensitive(t *testing.T) {
	store := newTestStore()

	books := store.ByAuthor("jane austen")
	if len(books) != 1 || books[0].ISBN != "8" {
		t.Fatalf("unexpected result: %#v", books)
	}

	books = store.ByAuthor("UNKNOWN")
	if len(books) != 2 {
		t.Fatalf("expected 2 books by Unknown, got %d", len(books))
	}
	// 結果はISBN順で安定している
	if books[0].ISBN != "4" || books[1].ISBN != "5" {
		t.Fatalf("unexpected order: %#v", books)
	}

	if books := store.ByAuthor("Nobody"); len(books) != 0 {
		t.Fatalf("expected no matches, got %#v", books)
	}
}

func TestByTitleCaseInsensitive(t *testing.T) {
	store := newTestStore()

	books := store.ByTitle("things fall apart")
	if len(books) != 1 || books[0].ISBN != "1" {
		t.Fatalf("unexpected result: %#v", books)
	}

	// 部分一致はしない
	if books := store.ByTitle("Things"); len(books) != 0 {
		t.Fatalf("expected no matches for partial title, got %#v", books)
	}
}

func TestUpsertReviewIdempotent(t *testing.T) {
	store := newTestStore()

	if err := store.UpsertReview("1", "alice", "great"); err != nil {
		t.Fatalf("UpsertReview returned error: %v", err)
	}
	if err := store.UpsertReview("1", "alice", "great"); err != nil {
		t.Fatalf("second UpsertReview returned error: %v", err)
	}

	reviews, err := store.Reviews("1")
	if err != nil {
		t.Fatalf("Reviews returned error: %v", err)
	}
	if len(reviews) != 1 || reviews["alice"] != "great" {
		t.Fatalf("unexpected reviews: %#v", reviews)
	}
}

func TestUpsertReviewOverwrites(t *testing.T) {
	store := newTestStore()

	if err := store.UpsertReview("1", "alice", "good"); err != nil {
		t.Fatalf("UpsertReview returned error: %v", err)
	}
	if err := store.UpsertReview("1", "alice", "excellent"); err != nil {
		t.Fatalf("UpsertReview returned error: %v", err)
	}

	reviews, _ := store.Reviews("1")
	if len(reviews) != 1 || reviews["alice"] != "excellent" {
		t.Fatalf("unexpected reviews: %#v", reviews)
	}
}

func TestUpsertReviewValidation(t *testing.T) {
	store := newTestStore()

	if err := store.UpsertReview("999", "alice", "great"); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("UpsertReview on unknown book = %v, want ErrBookNotFound", err)
	}
	if err := store.UpsertReview("1", "alice", "   "); !errors.Is(err, ErrEmptyReview) {
		t.Fatalf("UpsertReview with blank text = %v, want ErrEmptyReview", err)
	}
}

func TestUpsertReviewTrimsText(t *testing.T) {
	store := newTestStore()

	if err := store.UpsertReview("1", "alice", "  great  "); err != nil {
		t.Fatalf("UpsertReview returned error: %v", err)
	}
	reviews, _ := store.Reviews("1")
	if reviews["alice"] != "great" {
		t.Fatalf("expected trimmed review, got %q", reviews["alice"])
	}
}

func TestDeleteReview(t *testing.T) {
	store := newTestStore()

	if err := store.DeleteReview("999", "alice"); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("DeleteReview on unknown book = %v, want ErrBookNotFound", err)
	}
	if err := store.DeleteReview("1", "alice"); !errors.Is(err, ErrNoReviews) {
		t.Fatalf("DeleteReview with no reviews = %v, want ErrNoReviews", err)
	}

	if err := store.UpsertReview("1", "bob", "fine"); err != nil {
		t.Fatalf("UpsertReview returned error: %v", err)
	}
	if err := store.DeleteReview("1", "alice"); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("DeleteReview for other user = %v, want ErrReviewNotFound", err)
	}

	if err := store.DeleteReview("1", "bob"); err != nil {
		t.Fatalf("DeleteReview returned error: %v", err)
	}
	reviews, _ := store.Reviews("1")
	if len(reviews) != 0 {
		t.Fatalf("expected empty reviews after delete, got %#v", reviews)
	}
}

func TestReviewsReturnsCopy(t *testing.T) {
	store := newTestStore()

	if err := store.UpsertReview("1", "alice", "great"); err != nil {
		t.Fatalf("UpsertReview returned error: %v", err)
	}

	reviews, _ := store.Reviews("1")
	reviews["mallory"] = "tampered"

	fresh, _ := store.Reviews("1")
	if _, ok := fresh["mallory"]; ok {
		t.Fatal("mutating the returned map leaked into the store")
	}
}

func TestConcurrentReviewWrites(t *testing.T) {
	store := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.UpsertReview("1", "alice", "great"); err != nil {
				t.Errorf("UpsertReview returned error: %v", err)
			}
			_, _ = store.Reviews("1")
		}()
	}
	wg.Wait()

	reviews, _ := store.Reviews("1")
	if len(reviews) != 1 || reviews["alice"] != "great" {
		t.Fatalf("unexpected reviews after concurrent writes: %#v", reviews)
	}
}
