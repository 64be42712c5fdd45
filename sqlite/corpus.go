package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/awahed/dtcref"
)

// Compile-time interface verification.
var _ dtcref.CorpusService = (*CorpusService)(nil)

// CorpusService implements dtcref.CorpusService using SQLite. The list
// columns are stored pipe-separated, matching the legacy CSV layout.
type CorpusService struct {
	db *DB
}

// NewCorpusService creates a new CorpusService.
func NewCorpusService(db *DB) *CorpusService {
	return &CorpusService{db: db}
}

// ImportCorpus replaces the stored corpus with the given records in a
// single transaction and records import metadata.
func (s *CorpusService) ImportCorpus(ctx context.Context, records []*dtcref.CodeRecord, source string) (*dtcref.ImportInfo, error) {
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM codes`); err != nil {
		return nil, err
	}

	for _, record := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO codes (code, description, severity, system, causes, actions)
			VALUES (?, ?, ?, ?, ?, ?)
		`, dtcref.NormalizeCode(record.Code), record.Description, record.Severity.String(),
			record.System, joinList(record.Causes), joinList(record.Actions))
		if err != nil {
			return nil, err
		}
	}

	info := &dtcref.ImportInfo{
		ID:          uuid.New().String(),
		Source:      source,
		Fingerprint: Fingerprint(records),
		RecordCount: len(records),
		ImportedAt:  time.Now().UTC(),
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO imports (id, source, fingerprint, record_count, imported_at)
		VALUES (?, ?, ?, ?, ?)
	`, info.ID, info.Source, info.Fingerprint, info.RecordCount,
		info.ImportedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return info, nil
}

// LoadRecords returns the stored corpus ordered by code ascending.
func (s *CorpusService) LoadRecords(ctx context.Context) ([]*dtcref.CodeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, description, severity, system, causes, actions
		FROM codes
		ORDER BY code ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*dtcref.CodeRecord
	for rows.Next() {
		var record dtcref.CodeRecord
		var severity, causes, actions string

		if err := rows.Scan(&record.Code, &record.Description, &severity,
			&record.System, &causes, &actions); err != nil {
			return nil, err
		}

		record.Severity, err = dtcref.ParseSeverity(severity)
		if err != nil {
			return nil, fmt.Errorf("stored record %s: %w", record.Code, err)
		}
		record.Causes = splitList(causes)
		record.Actions = splitList(actions)

		records = append(records, &record)
	}

	return records, rows.Err()
}

// LastImport returns metadata for the most recent import.
func (s *CorpusService) LastImport(ctx context.Context) (*dtcref.ImportInfo, error) {
	var info dtcref.ImportInfo
	var importedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, fingerprint, record_count, imported_at
		FROM imports
		ORDER BY imported_at DESC
		LIMIT 1
	`).Scan(&info.ID, &info.Source, &info.Fingerprint, &info.RecordCount, &importedAt)

	if err == sql.ErrNoRows {
		return nil, dtcref.Errorf(dtcref.ENOTFOUND, "no corpus imported")
	}
	if err != nil {
		return nil, err
	}

	info.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse imported_at: %w", err)
	}

	return &info, nil
}

// Fingerprint returns a stable xxhash-64 digest of the corpus contents.
// The same records in the same order always produce the same
// fingerprint, so re-imports of an unchanged corpus are detectable.
func Fingerprint(records []*dtcref.CodeRecord) string {
	h := xxhash.New()
	for _, record := range records {
		for _, field := range []string{
			dtcref.NormalizeCode(record.Code),
			record.Description,
			record.Severity.String(),
			record.System,
			joinList(record.Causes),
			joinList(record.Actions),
		} {
			_, _ = h.WriteString(field)
			_, _ = h.WriteString("\x00")
		}
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// joinList encodes a list column pipe-separated.
func joinList(items []string) string {
	return strings.Join(items, " | ")
}

// splitList decodes a pipe-separated list column.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(s, "|") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
