// Package mem provides the in-memory record store, index builder, and
// query engine. The store and its derived indices are immutable once
// constructed, so concurrent readers share them without locking.
package mem

import (
	"sort"

	"github.com/awahed/dtcref"
)

// Compile-time interface verification.
var _ dtcref.RecordStore = (*Store)(nil)

// Store is an immutable in-memory dtcref.RecordStore.
type Store struct {
	byCode  map[string]*dtcref.CodeRecord
	ordered []*dtcref.CodeRecord
}

// NewStore builds a store from parsed records. Codes are normalized to
// uppercase. Returns EINVALID for an invalid record and ECONFLICT for a
// duplicate code; on any error no store is constructed.
func NewStore(records []*dtcref.CodeRecord) (*Store, error) {
	byCode := make(map[string]*dtcref.CodeRecord, len(records))
	ordered := make([]*dtcref.CodeRecord, 0, len(records))

	for _, record := range records {
		if record == nil {
			return nil, dtcref.Errorf(dtcref.EINVALID, "nil record")
		}
		if err := record.Validate(); err != nil {
			return nil, err
		}

		// Copy so later mutation of the caller's slice cannot reach the
		// store.
		stored := *record
		stored.Code = dtcref.NormalizeCode(stored.Code)

		if _, ok := byCode[stored.Code]; ok {
			return nil, dtcref.Errorf(dtcref.ECONFLICT, "duplicate code %s", stored.Code)
		}
		byCode[stored.Code] = &stored
		ordered = append(ordered, &stored)
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Code < ordered[j].Code
	})

	return &Store{byCode: byCode, ordered: ordered}, nil
}

// Get retrieves a record by normalized code.
func (s *Store) Get(code string) (*dtcref.CodeRecord, error) {
	record, ok := s.byCode[dtcref.NormalizeCode(code)]
	if !ok {
		return nil, dtcref.Errorf(dtcref.ENOTFOUND, "code %q not found", dtcref.NormalizeCode(code))
	}
	return record, nil
}

// All returns every record ordered by code ascending. The returned
// slice is a fresh copy on each call.
func (s *Store) All() []*dtcref.CodeRecord {
	out := make([]*dtcref.CodeRecord, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Contains reports whether a record with the given code exists.
func (s *Store) Contains(code string) bool {
	_, ok := s.byCode[dtcref.NormalizeCode(code)]
	return ok
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.ordered)
}
