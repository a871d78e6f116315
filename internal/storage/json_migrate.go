package storage

import (
	"fmt"
	"time"

	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/logger"
	"github.com/wird-app/wird/internal/models"
)

// SchemaVersion is the current JSON document version. Documents with a lower
// version are upgraded at load time by the migration chain below; documents
// with a higher version belong to a newer build and are rejected.
const SchemaVersion = 2

// quranPageRecord is the storage shape of a Quran page. It carries the
// removed v1 per-page status enum alongside the current booleans so old
// documents still unmarshal; migrateV1 rewrites the enum away.
type quranPageRecord struct {
	ID            int        `json:"id"`
	Status        string     `json:"status,omitempty"` // v1 only: "read" | "memorized" | "revised"
	IsRead        bool       `json:"is_read"`
	IsMemorized   bool       `json:"is_memorized"`
	IsRevised     bool       `json:"is_revised"`
	LastRead      *time.Time `json:"last_read,omitempty"`
	LastMemorized *time.Time `json:"last_memorized,omitempty"`
	LastRevised   *time.Time `json:"last_revised,omitempty"`
}

func (r quranPageRecord) toModel() models.QuranPage {
	return models.QuranPage{
		ID:            r.ID,
		IsRead:        r.IsRead,
		IsMemorized:   r.IsMemorized,
		IsRevised:     r.IsRevised,
		LastRead:      r.LastRead,
		LastMemorized: r.LastMemorized,
		LastRevised:   r.LastRevised,
	}
}

func pageRecordFromModel(p models.QuranPage) quranPageRecord {
	return quranPageRecord{
		ID:            p.ID,
		IsRead:        p.IsRead,
		IsMemorized:   p.IsMemorized,
		IsRevised:     p.IsRevised,
		LastRead:      p.LastRead,
		LastMemorized: p.LastMemorized,
		LastRevised:   p.LastRevised,
	}
}

// documentMigrations upgrades a document from version i+1 to i+2. Each step
// is a pure rewrite of the in-memory document; the caller persists once at
// the end.
var documentMigrations = []func(*document){
	migrateV1,
}

// migrateDocument runs every pending migration. It reports whether the
// document changed so the caller knows to persist it.
func migrateDocument(doc *document) (bool, error) {
	// Version 0 means the document predates explicit versioning; treat as v1.
	if doc.Version == 0 {
		doc.Version = 1
	}
	if doc.Version > SchemaVersion {
		return false, fmt.Errorf("document version %d is newer than supported version %d - please upgrade the application", doc.Version, SchemaVersion)
	}
	if doc.Version == SchemaVersion {
		return false, nil
	}

	for v := doc.Version; v < SchemaVersion; v++ {
		logger.Info("Migrating storage document", "from", v, "to", v+1)
		documentMigrations[v-1](doc)
		doc.Version = v + 1
	}
	return true, nil
}

// migrateV1 upgrades v1 documents:
//   - routines carrying the removed weekly frequency collapse to daily
//   - Quran pages stored as a single status enum become three booleans
func migrateV1(doc *document) {
	for i, r := range doc.Routines.Routines {
		if r.Frequency.Type == constants.FrequencyWeeklyLegacy {
			doc.Routines.Routines[i].Frequency = r.Frequency.Normalize()
		}
	}

	for i, p := range doc.Quran.Pages {
		if p.Status == "" {
			continue
		}
		doc.Quran.Pages[i] = quranPageRecord{
			ID:            p.ID,
			IsRead:        p.Status == "read" || p.Status == "memorized" || p.Status == "revised",
			IsMemorized:   p.Status == "memorized" || p.Status == "revised",
			IsRevised:     p.Status == "revised",
			LastRead:      p.LastRead,
			LastMemorized: p.LastMemorized,
			LastRevised:   p.LastRevised,
		}
	}
}
