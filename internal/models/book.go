package models

import "time"

// ReadingSession records one increase of a book's current page. Sessions are
// append-only: nothing ever rewrites or removes a recorded session.
type ReadingSession struct {
	Date      time.Time `json:"date"`
	PagesRead int       `json:"pages_read"`
}

type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
	// CoverURL is the remote cover reference; CoverPath is the cached local
	// copy, if a download succeeded.
	CoverURL        string           `json:"cover_url,omitempty"`
	CoverPath       string           `json:"cover_path,omitempty"`
	StartDate       time.Time        `json:"start_date"`
	LastReadDate    *time.Time       `json:"last_read_date,omitempty"`
	CompletedDate   *time.Time       `json:"completed_date,omitempty"`
	ReadingSessions []ReadingSession `json:"reading_sessions"`
}

// Completed reports whether the book has been finished.
func (b Book) Completed() bool {
	return b.CompletedDate != nil
}
