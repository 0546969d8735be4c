package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"resumescreener/internal/screening"
)

// Header is the fixed column set of the persisted report.
var Header = []string{"filename", "keywords_found", "skills_found", "years", "education_found", "score"}

// ErrReportRead marks an existing report that could not be parsed. The run
// still succeeds: history is treated as empty and the condition is surfaced
// to the caller as a warning, never as a failure.
var ErrReportRead = errors.New("existing report unreadable")

// Store persists ranked results into the durable report. The report is
// strictly additive: a merge appends the new rows after every prior row and
// never deduplicates across runs, so each run remains a distinct historical
// record.
type Store interface {
	Append(results []screening.ScoreResult) (*Summary, error)
	Rows() ([][]string, error)
	Path() string
}

// Summary describes one completed merge.
type Summary struct {
	Path      string
	PriorRows int
	TotalRows int
	// Warning is non-nil (wrapping ErrReportRead) when a prior report
	// existed but could not be read; the merge then started from an empty
	// history.
	Warning error
}

// CSVStore is a Store backed by a single CSV file. A merge is a
// read-modify-write under one exclusive lock, and the rewrite goes through
// a temp file plus rename so no reader ever observes a partial report.
type CSVStore struct {
	mu   sync.Mutex
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (s *CSVStore) Path() string {
	return s.path
}

// Append merges the ranked results into the persisted report and rewrites
// it atomically. A write failure is fatal to persistence and is returned as
// the error; the computed results are still valid in memory.
func (s *CSVStore) Append(results []screening.ScoreResult) (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, warning := s.readExisting()

	rows := make([][]string, 0, len(existing)+len(results))
	rows = append(rows, existing...)
	for _, r := range results {
		rows = append(rows, formatRow(r))
	}

	if err := s.writeAll(rows); err != nil {
		return nil, fmt.Errorf("persist report %s: %w", s.path, err)
	}

	return &Summary{
		Path:      s.path,
		PriorRows: len(existing),
		TotalRows: len(rows),
		Warning:   warning,
	}, nil
}

// Rows returns the persisted data rows, header excluded. A missing report
// yields no rows.
func (s *CSVStore) Rows() ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, warning := s.readExisting()
	if warning != nil {
		return nil, warning
	}
	return rows, nil
}

// readExisting loads the current report rows. Any failure other than the
// file not existing is reported as an ErrReportRead warning and the history
// is treated as empty.
func (s *CSVStore) readExisting() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrReportRead, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(Header)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportRead, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	for i, col := range Header {
		if records[0][i] != col {
			return nil, fmt.Errorf("%w: unexpected header %v", ErrReportRead, records[0])
		}
	}

	return records[1:], nil
}

func (s *CSVStore) writeAll(rows [][]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp report: %w", err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	writeErr := writer.Write(Header)
	for _, row := range rows {
		if writeErr != nil {
			break
		}
		writeErr = writer.Write(row)
	}
	writer.Flush()
	if writeErr == nil {
		writeErr = writer.Error()
	}
	if writeErr == nil {
		writeErr = tmp.Sync()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write report: %w", writeErr)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace report: %w", err)
	}

	return nil
}

// formatRow serializes one result into the fixed report columns. Term lists
// are comma-joined; years is an integer string when positive else "0".
func formatRow(r screening.ScoreResult) []string {
	years := "0"
	if r.Years > 0 {
		years = strconv.Itoa(int(r.Years))
	}

	return []string{
		r.CandidateID,
		strings.Join(r.KeywordsFound, ", "),
		strings.Join(r.SkillsFound, ", "),
		years,
		strings.Join(r.EducationFound, ", "),
		strconv.FormatFloat(r.Score, 'f', -1, 64),
	}
}
