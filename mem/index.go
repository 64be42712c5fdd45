package mem

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/awahed/dtcref"
	"github.com/awahed/dtcref/bloom"
)

// vocabFPRate is the false positive rate for the token vocabulary
// prefilter. False positives only cost one map lookup.
const vocabFPRate = 0.01

// Indices holds the secondary indices derived from a record store.
// Indices are derived data, never the source of truth: they are rebuilt
// whole whenever a store is constructed and never mutated afterwards.
type Indices struct {
	// BySystem maps a normalized (lowercased) system label to the codes
	// attributed to it, sorted ascending.
	BySystem map[string][]string

	// BySeverity maps each severity level to its codes, sorted
	// ascending.
	BySeverity map[dtcref.Severity][]string

	// Tokens maps each normalized token to its occurrences across the
	// corpus, in code order.
	Tokens map[string][]dtcref.Posting

	// vocab prefilters token lookups.
	vocab *bloom.Filter
}

// BuildIndices derives all secondary indices from the store. It is a
// pure function of the store contents: the same corpus always yields
// identical indices. The three indices are built concurrently and the
// value is returned only once every index is complete, so callers never
// observe a partially built index.
func BuildIndices(store dtcref.RecordStore) *Indices {
	records := store.All()
	idx := &Indices{}

	var g errgroup.Group
	g.Go(func() error {
		idx.BySystem = buildSystemIndex(records)
		return nil
	})
	g.Go(func() error {
		idx.BySeverity = buildSeverityIndex(records)
		return nil
	})
	g.Go(func() error {
		idx.Tokens = buildTokenIndex(records)
		return nil
	})
	// The builders cannot fail; Wait only joins them.
	_ = g.Wait()

	n := uint(len(idx.Tokens))
	if n == 0 {
		n = 1
	}
	idx.vocab = bloom.NewFilter(n, vocabFPRate)
	for token := range idx.Tokens {
		idx.vocab.Add(token)
	}

	return idx
}

// MightContainToken reports whether token can appear in the token
// index. A false return is definitive; a true return still requires a
// posting list lookup.
func (idx *Indices) MightContainToken(token string) bool {
	return idx.vocab.Test(token)
}

// normalizeSystem lowercases and trims a system label so filters match
// case-insensitively.
func normalizeSystem(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// buildSystemIndex buckets codes by normalized system label. Records
// arrive sorted by code, so each bucket is sorted ascending.
func buildSystemIndex(records []*dtcref.CodeRecord) map[string][]string {
	out := make(map[string][]string)
	for _, record := range records {
		key := normalizeSystem(record.System)
		out[key] = append(out[key], record.Code)
	}
	return out
}

// buildSeverityIndex buckets codes by severity level.
func buildSeverityIndex(records []*dtcref.CodeRecord) map[dtcref.Severity][]string {
	out := make(map[dtcref.Severity][]string)
	for _, record := range records {
		out[record.Severity] = append(out[record.Severity], record.Code)
	}
	return out
}

// buildTokenIndex records every token occurrence with its source field
// and 1-based position within that field's text.
func buildTokenIndex(records []*dtcref.CodeRecord) map[string][]dtcref.Posting {
	out := make(map[string][]dtcref.Posting)

	add := func(code string, field dtcref.Field, text string) {
		for i, token := range dtcref.Tokenize(text) {
			out[token] = append(out[token], dtcref.Posting{
				Code:     code,
				Field:    field,
				Position: i + 1,
			})
		}
	}

	for _, record := range records {
		add(record.Code, dtcref.FieldDescription, record.Description)
		for _, cause := range record.Causes {
			add(record.Code, dtcref.FieldCause, cause)
		}
		for _, action := range record.Actions {
			add(record.Code, dtcref.FieldAction, action)
		}
	}
	return out
}
