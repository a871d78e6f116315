package quran

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/wird-app/wird/internal/constants"
	apperrors "github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
	"github.com/wird-app/wird/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "wird.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return NewService(store)
}

func TestPagesSeeded(t *testing.T) {
	s := newTestService(t)

	pages, err := s.Pages()
	if err != nil {
		t.Fatalf("failed to load pages: %v", err)
	}
	if len(pages) != constants.QuranPageCount {
		t.Fatalf("expected %d pages, got %d", constants.QuranPageCount, len(pages))
	}
	if pages[0].ID != 1 || pages[len(pages)-1].ID != constants.QuranPageCount {
		t.Error("expected pages in 1..604 order")
	}
}

func TestPage_OutOfRange(t *testing.T) {
	s := newTestService(t)

	for _, id := range []int{0, -1, 605} {
		if _, err := s.Page(id); !apperrors.Is(err, apperrors.ErrPageOutOfRange) {
			t.Errorf("Page(%d): expected ErrPageOutOfRange, got %v", id, err)
		}
	}
}

func TestMarkRevised_RequiresMemorized(t *testing.T) {
	s := newTestService(t)

	if _, err := s.MarkRevised(5, true); !apperrors.Is(err, apperrors.ErrPageNotMemorized) {
		t.Fatalf("expected ErrPageNotMemorized, got %v", err)
	}

	if _, err := s.MarkMemorized(5, true); err != nil {
		t.Fatalf("memorize failed: %v", err)
	}
	page, err := s.MarkRevised(5, true)
	if err != nil {
		t.Fatalf("revise failed: %v", err)
	}
	if !page.IsRevised {
		t.Error("expected page to be revised")
	}
}

func TestMarkMemorized_ClearingForcesUnrevise(t *testing.T) {
	s := newTestService(t)

	if _, err := s.MarkMemorized(5, true); err != nil {
		t.Fatalf("memorize failed: %v", err)
	}
	if _, err := s.MarkRevised(5, true); err != nil {
		t.Fatalf("revise failed: %v", err)
	}

	page, err := s.MarkMemorized(5, false)
	if err != nil {
		t.Fatalf("unmemorize failed: %v", err)
	}
	if page.IsMemorized {
		t.Error("expected page to no longer be memorized")
	}
	if page.IsRevised {
		t.Error("expected revised flag to be cleared with the memorized flag")
	}

	// The invariant holds in storage too.
	page, err = s.Page(5)
	if err != nil {
		t.Fatalf("page reload failed: %v", err)
	}
	if page.IsRevised && !page.IsMemorized {
		t.Error("stored page violates revised-implies-memorized")
	}
}

func TestMarkRead_IndependentOfMemorized(t *testing.T) {
	s := newTestService(t)

	page, err := s.MarkRead(10, true)
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if !page.IsRead || page.IsMemorized || page.IsRevised {
		t.Error("expected only the read flag to be set")
	}
	if page.LastRead == nil {
		t.Error("expected LastRead to be stamped")
	}

	page, err = s.MarkRead(10, false)
	if err != nil {
		t.Fatalf("unmark read failed: %v", err)
	}
	if page.IsRead {
		t.Error("expected read flag to be cleared")
	}
	if page.LastRead == nil {
		t.Error("expected LastRead history to survive unmarking")
	}
}

func TestStats(t *testing.T) {
	s := newTestService(t)

	for page := 1; page <= 21; page++ {
		if _, err := s.MarkRead(page, true); err != nil {
			t.Fatalf("mark read failed: %v", err)
		}
	}
	for page := 1; page <= 10; page++ {
		if _, err := s.MarkMemorized(page, true); err != nil {
			t.Fatalf("memorize failed: %v", err)
		}
	}
	for page := 1; page <= 3; page++ {
		if _, err := s.MarkRevised(page, true); err != nil {
			t.Fatalf("revise failed: %v", err)
		}
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalRead != 21 || stats.TotalMemorized != 10 || stats.TotalRevised != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	want := float64(10) / float64(constants.QuranPageCount) * 100
	if stats.CompletionPercentage != want {
		t.Errorf("expected completion %.4f, got %.4f", want, stats.CompletionPercentage)
	}
}

func TestPagesToRevise_OldestFirst(t *testing.T) {
	s := newTestService(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	s.now = func() time.Time { return clock }

	// Memorize three pages on successive days, then revise the first.
	for i, page := range []int{100, 200, 300} {
		clock = base.AddDate(0, 0, i)
		if _, err := s.MarkMemorized(page, true); err != nil {
			t.Fatalf("memorize failed: %v", err)
		}
	}
	clock = base.AddDate(0, 0, 10)
	if _, err := s.MarkRevised(100, true); err != nil {
		t.Fatalf("revise failed: %v", err)
	}

	pages, err := s.PagesToRevise(0)
	if err != nil {
		t.Fatalf("revision queue failed: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(pages))
	}
	// Never-revised pages sort by memorization date; the freshly revised page
	// comes last.
	if pages[0].ID != 200 || pages[1].ID != 300 || pages[2].ID != 100 {
		t.Errorf("unexpected order: %d, %d, %d", pages[0].ID, pages[1].ID, pages[2].ID)
	}
}

func TestPagesToRevise_Limit(t *testing.T) {
	s := newTestService(t)

	for page := 1; page <= 15; page++ {
		if _, err := s.MarkMemorized(page, true); err != nil {
			t.Fatalf("memorize failed: %v", err)
		}
	}

	pages, err := s.PagesToRevise(0)
	if err != nil {
		t.Fatalf("revision queue failed: %v", err)
	}
	if len(pages) != constants.DefaultReviseQueueLimit {
		t.Errorf("expected default limit %d, got %d", constants.DefaultReviseQueueLimit, len(pages))
	}

	pages, err = s.PagesToRevise(5)
	if err != nil {
		t.Fatalf("revision queue failed: %v", err)
	}
	if len(pages) != 5 {
		t.Errorf("expected 5 candidates, got %d", len(pages))
	}
}

func TestByJuz(t *testing.T) {
	s := newTestService(t)

	if _, err := s.MarkMemorized(1, true); err != nil {
		t.Fatalf("memorize failed: %v", err)
	}
	if _, err := s.MarkMemorized(21, true); err != nil {
		t.Fatalf("memorize failed: %v", err)
	}
	if _, err := s.MarkMemorized(22, true); err != nil {
		t.Fatalf("memorize failed: %v", err)
	}

	summaries, err := s.ByJuz()
	if err != nil {
		t.Fatalf("juz summary failed: %v", err)
	}
	if len(summaries) != constants.JuzCount {
		t.Fatalf("expected %d juz, got %d", constants.JuzCount, len(summaries))
	}

	if summaries[0].FirstPage != 1 || summaries[0].LastPage != 21 {
		t.Errorf("juz 1 spans %d-%d, want 1-21", summaries[0].FirstPage, summaries[0].LastPage)
	}
	if summaries[0].Memorized != 2 {
		t.Errorf("expected 2 memorized pages in juz 1, got %d", summaries[0].Memorized)
	}
	if summaries[1].FirstPage != 22 || summaries[1].Memorized != 1 {
		t.Errorf("expected juz 2 to start at 22 with 1 memorized, got start %d count %d",
			summaries[1].FirstPage, summaries[1].Memorized)
	}
	if summaries[29].LastPage != constants.QuranPageCount {
		t.Errorf("expected juz 30 to end at %d, got %d", constants.QuranPageCount, summaries[29].LastPage)
	}
}

func TestJuzForPage(t *testing.T) {
	tests := []struct {
		page, juz int
	}{
		{1, 1}, {21, 1}, {22, 2}, {41, 2}, {42, 3}, {581, 29}, {582, 30}, {604, 30},
	}
	for _, tt := range tests {
		if got := models.JuzForPage(tt.page); got != tt.juz {
			t.Errorf("JuzForPage(%d) = %d, want %d", tt.page, got, tt.juz)
		}
	}
}
