// Dedup & merge store
// URL is the only key: a URL already at rest wins, new rows are appended,
// user-edited columns are never touched

package store

import (
	"fmt"
	"log"
	"time"

	"go-jobtrack-automation/internal/scraper"
)

// Columns is the fixed sheet schema. Order is load-bearing: every row written
// must line up with this header.
var Columns = []string{
	"Job Title",
	"Company",
	"Location",
	"Description",
	"URL",
	"Posted Date",
	"Date Added",
	"Applied",
	"Application Date",
	"Status",
	"Notes",
}

const urlColumn = 4

// legacySheet is the single-sheet layout from before the per-platform split
const legacySheet = "Jobs"

// Workbook is the persistence backend: named sheets of string rows.
// ReadRows and WriteRows deal in data rows only; the header belongs to the
// backend and is written with the sheet.
type Workbook interface {
	SheetExists(name string) bool
	EnsureSheet(name string, columns []string) error
	RemoveSheet(name string) error
	ReadRows(name string) ([][]string, error)
	WriteRows(name string, rows [][]string) error
}

type MergeResult struct {
	Added int
	Total int
}

type Store struct {
	wb  Workbook
	now func() time.Time
}

// New prepares the workbook: one sheet per platform with the fixed header,
// and any pre-split "Jobs" sheet removed.
func New(wb Workbook) (*Store, error) {
	if wb.SheetExists(legacySheet) {
		if err := wb.RemoveSheet(legacySheet); err != nil {
			log.Printf("⚠️ Could not remove legacy '%s' sheet: %v", legacySheet, err)
		} else {
			log.Printf("✅ Removed old '%s' sheet", legacySheet)
		}
	}

	for _, sheet := range []string{scraper.PlatformStepStone, scraper.PlatformLinkedIn} {
		if err := wb.EnsureSheet(sheet, Columns); err != nil {
			return nil, fmt.Errorf("failed to prepare sheet %s: %w", sheet, err)
		}
	}

	return &Store{wb: wb, now: time.Now}, nil
}

// Merge appends records whose URL is not yet on the platform sheet. Existing
// rows keep their order and their user-edited cells; surviving records get
// Date Added stamped now plus the Applied/Status defaults. Running the same
// merge twice adds nothing the second time.
func (s *Store) Merge(platform string, records []scraper.Job) (MergeResult, error) {
	existing := s.loadRows(platform)

	seen := make(map[string]bool, len(existing))
	for _, row := range existing {
		if url := row[urlColumn]; url != "" {
			seen[url] = true
		}
	}

	today := s.now().Format("2006-01-02")
	var fresh [][]string
	for _, job := range records {
		if job.URL == "" || seen[job.URL] {
			continue
		}
		seen[job.URL] = true
		fresh = append(fresh, newRow(job, today))
	}

	if len(fresh) == 0 {
		log.Printf("✅ All %s jobs are duplicates - no new jobs added", platform)
		return MergeResult{Added: 0, Total: len(existing)}, nil
	}

	combined := append(existing, fresh...)
	if err := s.wb.WriteRows(platform, combined); err != nil {
		return MergeResult{}, fmt.Errorf("failed to write %s sheet: %w", platform, err)
	}

	log.Printf("✅ Added %d new %s jobs", len(fresh), platform)
	log.Printf("📊 Total %s jobs in store: %d", platform, len(combined))
	return MergeResult{Added: len(fresh), Total: len(combined)}, nil
}

// loadRows treats an unreadable or absent sheet as empty existing data.
// A broken read must not abort the run.
func (s *Store) loadRows(platform string) [][]string {
	rows, err := s.wb.ReadRows(platform)
	if err != nil {
		log.Printf("⚠️ Error reading existing rows from %s: %v", platform, err)
		return nil
	}
	for i, row := range rows {
		rows[i] = padRow(row)
	}
	return rows
}

func newRow(job scraper.Job, dateAdded string) []string {
	return []string{
		job.Title,
		job.Company,
		job.Location,
		job.Description,
		job.URL,
		job.PostedDate,
		dateAdded,
		"No",  //Applied
		"",    //Application Date
		"New", //Status
		"",    //Notes
	}
}

// padRow restores trailing empty cells the backend trims on read, so every
// row stays aligned with the 11-column schema
func padRow(row []string) []string {
	if len(row) >= len(Columns) {
		return row[:len(Columns)]
	}
	padded := make([]string, len(Columns))
	copy(padded, row)
	return padded
}
