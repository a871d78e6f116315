package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
)

const pageColumns = "id, is_read, is_memorized, is_revised, last_read, last_memorized, last_revised"

func scanPage(scan func(dest ...any) error) (models.QuranPage, error) {
	var p models.QuranPage
	var lastRead, lastMemorized, lastRevised sql.NullString

	if err := scan(&p.ID, &p.IsRead, &p.IsMemorized, &p.IsRevised, &lastRead, &lastMemorized, &lastRevised); err != nil {
		return models.QuranPage{}, err
	}

	parse := func(v sql.NullString, field string) (*time.Time, error) {
		if !v.Valid {
			return nil, nil
		}
		t, err := time.Parse(time.RFC3339, v.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for page %d: %w", field, p.ID, err)
		}
		return &t, nil
	}

	var err error
	if p.LastRead, err = parse(lastRead, "last_read"); err != nil {
		return models.QuranPage{}, err
	}
	if p.LastMemorized, err = parse(lastMemorized, "last_memorized"); err != nil {
		return models.QuranPage{}, err
	}
	if p.LastRevised, err = parse(lastRevised, "last_revised"); err != nil {
		return models.QuranPage{}, err
	}

	return p, nil
}

func (s *Store) GetQuranPage(id int) (models.QuranPage, error) {
	row := s.db.QueryRow("SELECT "+pageColumns+" FROM quran_pages WHERE id = ?", id)
	p, err := scanPage(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuranPage{}, fmt.Errorf("%w: %d", apperrors.ErrPageOutOfRange, id)
		}
		return models.QuranPage{}, err
	}
	return p, nil
}

func (s *Store) GetAllQuranPages() ([]models.QuranPage, error) {
	rows, err := s.db.Query("SELECT " + pageColumns + " FROM quran_pages ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []models.QuranPage
	for rows.Next() {
		p, err := scanPage(rows.Scan)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, rows.Err()
}

func (s *Store) UpdateQuranPage(page models.QuranPage) error {
	format := func(t *time.Time) sql.NullString {
		if t == nil {
			return sql.NullString{}
		}
		return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE quran_pages
		SET is_read = ?, is_memorized = ?, is_revised = ?, last_read = ?, last_memorized = ?, last_revised = ?
		WHERE id = ?`,
		page.IsRead, page.IsMemorized, page.IsRevised,
		format(page.LastRead), format(page.LastMemorized), format(page.LastRevised),
		page.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %d", apperrors.ErrPageOutOfRange, page.ID)
	}
	return nil
}
