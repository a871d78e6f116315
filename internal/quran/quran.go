// Package quran tracks reading, memorization, and revision state across the
// 604 mushaf pages.
package quran

import (
	"fmt"
	"sort"
	"time"

	"github.com/wird-app/wird/internal/constants"
	apperrors "github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
	"github.com/wird-app/wird/internal/storage"
	"github.com/wird-app/wird/internal/validation"
)

type Service struct {
	store storage.Provider

	now func() time.Time
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store, now: time.Now}
}

// Page returns a single page's state.
func (s *Service) Page(id int) (models.QuranPage, error) {
	if err := validation.ValidatePageNumber(id); err != nil {
		return models.QuranPage{}, err
	}
	return s.store.GetQuranPage(id)
}

// Pages returns all 604 pages in page order.
func (s *Service) Pages() ([]models.QuranPage, error) {
	return s.store.GetAllQuranPages()
}

// MarkRead sets or clears a page's read flag. Turning it on stamps LastRead.
func (s *Service) MarkRead(id int, on bool) (models.QuranPage, error) {
	page, err := s.Page(id)
	if err != nil {
		return models.QuranPage{}, err
	}

	if on && !page.IsRead {
		now := s.now()
		page.LastRead = &now
	}
	page.IsRead = on

	return page, s.store.UpdateQuranPage(page)
}

// MarkMemorized sets or clears a page's memorized flag. Clearing it also
// clears the revised flag: a page cannot count as revised once it is no
// longer memorized.
func (s *Service) MarkMemorized(id int, on bool) (models.QuranPage, error) {
	page, err := s.Page(id)
	if err != nil {
		return models.QuranPage{}, err
	}

	if on && !page.IsMemorized {
		now := s.now()
		page.LastMemorized = &now
	}
	page.IsMemorized = on
	if !on {
		page.IsRevised = false
	}

	return page, s.store.UpdateQuranPage(page)
}

// MarkRevised sets or clears a page's revised flag. A page must be memorized
// before it can be marked revised.
func (s *Service) MarkRevised(id int, on bool) (models.QuranPage, error) {
	page, err := s.Page(id)
	if err != nil {
		return models.QuranPage{}, err
	}

	if on && !page.IsMemorized {
		return models.QuranPage{}, fmt.Errorf("%w: page %d", apperrors.ErrPageNotMemorized, id)
	}

	if on && !page.IsRevised {
		now := s.now()
		page.LastRevised = &now
	}
	page.IsRevised = on

	return page, s.store.UpdateQuranPage(page)
}

// Stats summarizes progress across all pages. The completion percentage
// measures memorization against the full mushaf.
func (s *Service) Stats() (models.QuranStats, error) {
	pages, err := s.store.GetAllQuranPages()
	if err != nil {
		return models.QuranStats{}, err
	}

	var stats models.QuranStats
	for _, p := range pages {
		if p.IsRead {
			stats.TotalRead++
		}
		if p.IsMemorized {
			stats.TotalMemorized++
		}
		if p.IsRevised {
			stats.TotalRevised++
		}
	}
	stats.CompletionPercentage = float64(stats.TotalMemorized) / float64(constants.QuranPageCount) * 100
	return stats, nil
}

// PagesToRevise returns up to limit memorized pages ordered by how stale
// their revision is: oldest LastRevised first, falling back to LastMemorized
// for pages never revised. A non-positive limit uses the default queue size.
func (s *Service) PagesToRevise(limit int) ([]models.QuranPage, error) {
	if limit <= 0 {
		limit = constants.DefaultReviseQueueLimit
	}

	pages, err := s.store.GetAllQuranPages()
	if err != nil {
		return nil, err
	}

	var candidates []models.QuranPage
	for _, p := range pages {
		if p.IsMemorized {
			candidates = append(candidates, p)
		}
	}

	staleness := func(p models.QuranPage) time.Time {
		if p.LastRevised != nil {
			return *p.LastRevised
		}
		if p.LastMemorized != nil {
			return *p.LastMemorized
		}
		return time.Time{}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return staleness(candidates[i]).Before(staleness(candidates[j]))
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// JuzSummary aggregates page state for one juz.
type JuzSummary struct {
	Juz       int
	FirstPage int
	LastPage  int
	Read      int
	Memorized int
	Revised   int
	Total     int
}

// ByJuz groups all pages into the 30 juz divisions for display.
func (s *Service) ByJuz() ([]JuzSummary, error) {
	pages, err := s.store.GetAllQuranPages()
	if err != nil {
		return nil, err
	}

	summaries := make([]JuzSummary, constants.JuzCount)
	for i := range summaries {
		summaries[i].Juz = i + 1
	}
	for _, p := range pages {
		j := &summaries[models.JuzForPage(p.ID)-1]
		if j.FirstPage == 0 || p.ID < j.FirstPage {
			j.FirstPage = p.ID
		}
		if p.ID > j.LastPage {
			j.LastPage = p.ID
		}
		j.Total++
		if p.IsRead {
			j.Read++
		}
		if p.IsMemorized {
			j.Memorized++
		}
		if p.IsRevised {
			j.Revised++
		}
	}
	return summaries, nil
}
