package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
)

const bookColumns = "id, title, author, total_pages, current_page, cover_url, cover_path, start_date, last_read_date, completed_date"

func (s *Store) AddBook(book models.Book) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if err := insertBook(tx, book); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, session := range book.ReadingSessions {
		if err := insertSession(tx, book.ID, session); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func insertBook(tx *sql.Tx, book models.Book) error {
	var lastRead, completed sql.NullString
	if book.LastReadDate != nil {
		lastRead = sql.NullString{String: book.LastReadDate.Format(time.RFC3339), Valid: true}
	}
	if book.CompletedDate != nil {
		completed = sql.NullString{String: book.CompletedDate.Format(time.RFC3339), Valid: true}
	}

	_, err := tx.Exec(`
		INSERT INTO books (id, title, author, total_pages, current_page, cover_url, cover_path, start_date, last_read_date, completed_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		book.ID, book.Title, book.Author, book.TotalPages, book.CurrentPage,
		book.CoverURL, book.CoverPath, book.StartDate.Format(time.RFC3339), lastRead, completed)
	return err
}

func insertSession(tx *sql.Tx, bookID string, session models.ReadingSession) error {
	_, err := tx.Exec(`
		INSERT INTO reading_sessions (book_id, date, pages_read)
		VALUES (?, ?, ?)`,
		bookID, session.Date.Format(time.RFC3339), session.PagesRead)
	return err
}

func scanBook(scan func(dest ...any) error) (models.Book, error) {
	var b models.Book
	var startDate string
	var lastRead, completed sql.NullString

	if err := scan(&b.ID, &b.Title, &b.Author, &b.TotalPages, &b.CurrentPage, &b.CoverURL, &b.CoverPath, &startDate, &lastRead, &completed); err != nil {
		return models.Book{}, err
	}

	var err error
	b.StartDate, err = time.Parse(time.RFC3339, startDate)
	if err != nil {
		return models.Book{}, fmt.Errorf("failed to parse start_date for book %s: %w", b.ID, err)
	}
	if lastRead.Valid {
		t, err := time.Parse(time.RFC3339, lastRead.String)
		if err != nil {
			return models.Book{}, fmt.Errorf("failed to parse last_read_date for book %s: %w", b.ID, err)
		}
		b.LastReadDate = &t
	}
	if completed.Valid {
		t, err := time.Parse(time.RFC3339, completed.String)
		if err != nil {
			return models.Book{}, fmt.Errorf("failed to parse completed_date for book %s: %w", b.ID, err)
		}
		b.CompletedDate = &t
	}

	return b, nil
}

func (s *Store) loadSessions(bookID string) ([]models.ReadingSession, error) {
	rows, err := s.db.Query(`
		SELECT date, pages_read FROM reading_sessions
		WHERE book_id = ? ORDER BY id`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.ReadingSession
	for rows.Next() {
		var dateStr string
		var session models.ReadingSession
		if err := rows.Scan(&dateStr, &session.PagesRead); err != nil {
			return nil, err
		}
		session.Date, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse session date for book %s: %w", bookID, err)
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func (s *Store) GetBook(id string) (models.Book, error) {
	row := s.db.QueryRow("SELECT "+bookColumns+" FROM books WHERE id = ?", id)
	b, err := scanBook(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, fmt.Errorf("%w: %s", apperrors.ErrBookNotFound, id)
		}
		return models.Book{}, err
	}

	b.ReadingSessions, err = s.loadSessions(id)
	if err != nil {
		return models.Book{}, err
	}
	return b, nil
}

func (s *Store) GetAllBooks() ([]models.Book, error) {
	rows, err := s.db.Query("SELECT " + bookColumns + " FROM books ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		b, err := scanBook(rows.Scan)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range books {
		books[i].ReadingSessions, err = s.loadSessions(books[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return books, nil
}

// UpdateBook rewrites the book row and replaces its session rows with the
// book's session list. The session list only ever grows, so the replacement
// is equivalent to appending the new tail.
func (s *Store) UpdateBook(book models.Book) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var lastRead, completed sql.NullString
	if book.LastReadDate != nil {
		lastRead = sql.NullString{String: book.LastReadDate.Format(time.RFC3339), Valid: true}
	}
	if book.CompletedDate != nil {
		completed = sql.NullString{String: book.CompletedDate.Format(time.RFC3339), Valid: true}
	}

	result, err := tx.Exec(`
		UPDATE books
		SET title = ?, author = ?, total_pages = ?, current_page = ?, cover_url = ?, cover_path = ?, last_read_date = ?, completed_date = ?
		WHERE id = ?`,
		book.Title, book.Author, book.TotalPages, book.CurrentPage,
		book.CoverURL, book.CoverPath, lastRead, completed, book.ID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if rows == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s", apperrors.ErrBookNotFound, book.ID)
	}

	if _, err := tx.Exec("DELETE FROM reading_sessions WHERE book_id = ?", book.ID); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, session := range book.ReadingSessions {
		if err := insertSession(tx, book.ID, session); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) DeleteBook(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM reading_sessions WHERE book_id = ?", id); err != nil {
		_ = tx.Rollback()
		return err
	}

	result, err := tx.Exec("DELETE FROM books WHERE id = ?", id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if rows == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s", apperrors.ErrBookNotFound, id)
	}

	return tx.Commit()
}
