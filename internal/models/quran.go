package models

import (
	"time"

	"github.com/wird-app/wird/internal/constants"
)

// QuranPage tracks the reading, memorization, and revision state of one of
// the 604 mushaf pages. Pages are seeded once at init and never deleted.
//
// Invariant: IsRevised implies IsMemorized. The quran service enforces it on
// every mutation.
type QuranPage struct {
	ID            int        `json:"id"` // 1..604
	IsRead        bool       `json:"is_read"`
	IsMemorized   bool       `json:"is_memorized"`
	IsRevised     bool       `json:"is_revised"`
	LastRead      *time.Time `json:"last_read,omitempty"`
	LastMemorized *time.Time `json:"last_memorized,omitempty"`
	LastRevised   *time.Time `json:"last_revised,omitempty"`
}

// QuranStats summarizes progress across all pages.
type QuranStats struct {
	TotalRead            int     `json:"total_read"`
	TotalMemorized       int     `json:"total_memorized"`
	TotalRevised         int     `json:"total_revised"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// NewQuranPages returns the full fixed page set with all flags cleared.
func NewQuranPages() []QuranPage {
	pages := make([]QuranPage, constants.QuranPageCount)
	for i := range pages {
		pages[i] = QuranPage{ID: i + 1}
	}
	return pages
}

// JuzForPage returns the juz (1..30) a page belongs to, following the Madani
// mushaf layout: juz 1 covers pages 1-21, every later juz starts 20 pages
// after the previous one.
func JuzForPage(page int) int {
	if page < 22 {
		return 1
	}
	juz := (page-22)/20 + 2
	if juz > constants.JuzCount {
		return constants.JuzCount
	}
	return juz
}
