package dtcref

import (
	"context"
	"time"
)

// ImportInfo describes a stored corpus import.
type ImportInfo struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Fingerprint string    `json:"fingerprint"`
	RecordCount int       `json:"recordCount"`
	ImportedAt  time.Time `json:"importedAt"`
}

// CorpusService persists an imported corpus so the engine can start
// without re-parsing the corpus text on every run.
type CorpusService interface {
	// ImportCorpus replaces the stored corpus with the given records in
	// a single transaction and records import metadata. The records
	// must already be validated.
	ImportCorpus(ctx context.Context, records []*CodeRecord, source string) (*ImportInfo, error)

	// LoadRecords returns the stored corpus ordered by code ascending.
	LoadRecords(ctx context.Context) ([]*CodeRecord, error)

	// LastImport returns metadata for the most recent import.
	// Returns ENOTFOUND if no corpus has been imported.
	LastImport(ctx context.Context) (*ImportInfo, error)
}
