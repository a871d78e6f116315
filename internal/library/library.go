// Package library manages the book reading log: book records, their
// append-only reading sessions, and cached cover images.
package library

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wird-app/wird/internal/covers"
	"github.com/wird-app/wird/internal/logger"
	"github.com/wird-app/wird/internal/models"
	"github.com/wird-app/wird/internal/storage"
	"github.com/wird-app/wird/internal/validation"
)

type Service struct {
	store  storage.Provider
	covers *covers.Cache

	now func() time.Time
}

// NewService builds a library service. The cover cache may be nil, in which
// case covers are never fetched or evicted.
func NewService(store storage.Provider, coverCache *covers.Cache) *Service {
	return &Service{store: store, covers: coverCache, now: time.Now}
}

// AddBook validates and stores a new book. When the book carries a cover URL
// and a cache is configured, the cover is downloaded best-effort: a failed
// fetch logs a warning and leaves CoverPath empty.
func (s *Service) AddBook(book models.Book) (models.Book, error) {
	if err := validation.ValidateBook(book); err != nil {
		return models.Book{}, err
	}

	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if book.StartDate.IsZero() {
		book.StartDate = s.now()
	}

	if book.CoverURL != "" && s.covers != nil {
		path, err := s.covers.Fetch(book.CoverURL, book.ID)
		if err != nil {
			logger.Warn("Failed to cache book cover", "book", book.Title, "error", err)
		} else {
			book.CoverPath = path
		}
	}

	if err := s.store.AddBook(book); err != nil {
		return models.Book{}, fmt.Errorf("failed to save book: %w", err)
	}
	return book, nil
}

func (s *Service) GetBook(id string) (models.Book, error) {
	return s.store.GetBook(id)
}

func (s *Service) ListBooks() ([]models.Book, error) {
	return s.store.GetAllBooks()
}

// EditBook updates a book's descriptive fields. Progress fields and sessions
// are owned by UpdateProgress and pass through unchanged.
func (s *Service) EditBook(id string, title, author string, totalPages int) (models.Book, error) {
	book, err := s.store.GetBook(id)
	if err != nil {
		return models.Book{}, err
	}

	if title != "" {
		book.Title = title
	}
	if author != "" {
		book.Author = author
	}
	if totalPages > 0 {
		book.TotalPages = totalPages
	}
	if err := validation.ValidateBook(book); err != nil {
		return models.Book{}, err
	}

	if err := s.store.UpdateBook(book); err != nil {
		return models.Book{}, fmt.Errorf("failed to update book: %w", err)
	}
	return book, nil
}

// UpdateProgress moves a book's current page to newPage. A strict increase
// appends exactly one reading session for the difference, stamps
// LastReadDate, and marks the book completed when the last page is reached.
// A non-increasing newPage rewrites the current page only: no session is
// recorded and a completed book stays completed.
func (s *Service) UpdateProgress(id string, newPage int) (models.Book, error) {
	book, err := s.store.GetBook(id)
	if err != nil {
		return models.Book{}, err
	}
	if newPage < 0 || newPage > book.TotalPages {
		return models.Book{}, fmt.Errorf("page %d out of range for %q (0-%d)", newPage, book.Title, book.TotalPages)
	}

	if newPage > book.CurrentPage {
		now := s.now()
		book.ReadingSessions = append(book.ReadingSessions, models.ReadingSession{
			Date:      now,
			PagesRead: newPage - book.CurrentPage,
		})
		book.LastReadDate = &now
		if newPage >= book.TotalPages && book.CompletedDate == nil {
			book.CompletedDate = &now
		}
	}
	book.CurrentPage = newPage

	if err := s.store.UpdateBook(book); err != nil {
		return models.Book{}, fmt.Errorf("failed to update book: %w", err)
	}
	return book, nil
}

// DeleteBook removes a book and evicts its cached cover, if any.
func (s *Service) DeleteBook(id string) error {
	book, err := s.store.GetBook(id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteBook(id); err != nil {
		return err
	}

	if book.CoverPath != "" && s.covers != nil {
		if err := s.covers.Evict(book.CoverPath); err != nil {
			logger.Warn("Failed to remove cached cover", "book", book.Title, "error", err)
		}
	}
	return nil
}
