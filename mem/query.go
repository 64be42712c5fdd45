package mem

import (
	"context"
	"sort"
	"strings"

	"github.com/awahed/dtcref"
)

// Compile-time interface verification.
var _ dtcref.QueryService = (*Engine)(nil)

// Engine answers queries against an immutable store using its derived
// indices. An Engine is safe for concurrent use: NewEngine builds the
// indices completely before returning, and nothing mutates them
// afterwards.
type Engine struct {
	store dtcref.RecordStore
	idx   *Indices
}

// NewEngine creates a query engine over the store, building all
// indices up front.
func NewEngine(store dtcref.RecordStore) *Engine {
	return &Engine{store: store, idx: BuildIndices(store)}
}

// LookupByCode retrieves a record by its code, case-insensitively.
func (e *Engine) LookupByCode(_ context.Context, code string) (*dtcref.CodeRecord, error) {
	if strings.TrimSpace(code) == "" {
		return nil, dtcref.Errorf(dtcref.EINVALID, "code required")
	}
	return e.store.Get(code)
}

// Filter returns the records matching the criteria, ordered by code
// ascending.
func (e *Engine) Filter(_ context.Context, criteria dtcref.FilterCriteria) ([]*dtcref.CodeRecord, error) {
	if criteria.System == nil && criteria.Severity == nil {
		return nil, dtcref.Errorf(dtcref.EINVALID, "at least one filter criterion required")
	}
	if criteria.Severity != nil && !criteria.Severity.Valid() {
		return nil, dtcref.Errorf(dtcref.EINVALID, "unrecognized severity")
	}

	var codes []string
	switch {
	case criteria.System != nil && criteria.Severity != nil:
		codes = intersectSorted(
			e.idx.BySystem[normalizeSystem(*criteria.System)],
			e.idx.BySeverity[*criteria.Severity],
		)
	case criteria.System != nil:
		codes = e.idx.BySystem[normalizeSystem(*criteria.System)]
	default:
		codes = e.idx.BySeverity[*criteria.Severity]
	}

	return e.resolve(codes), nil
}

// Search scores records by summed field weights over the query tokens
// they share with the index, ordered by score descending with ties
// broken by code ascending.
func (e *Engine) Search(_ context.Context, query string) ([]dtcref.SearchResult, error) {
	tokens := dtcref.Tokenize(query)
	if len(tokens) == 0 {
		return nil, dtcref.Errorf(dtcref.EINVALID, "search query required")
	}

	// Repeated query tokens count once.
	scores := make(map[string]float64)
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true

		if !e.idx.MightContainToken(token) {
			continue
		}
		for _, posting := range e.idx.Tokens[token] {
			scores[posting.Code] += posting.Field.Weight()
		}
	}

	results := make([]dtcref.SearchResult, 0, len(scores))
	for code, score := range scores {
		record, err := e.store.Get(code)
		if err != nil {
			// Postings reference only live codes.
			return nil, dtcref.Errorf(dtcref.EINTERNAL, "index references unknown code %s", code)
		}
		results = append(results, dtcref.SearchResult{Record: record, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.Code < results[j].Record.Code
	})

	return results, nil
}

// resolve maps sorted codes back to their records.
func (e *Engine) resolve(codes []string) []*dtcref.CodeRecord {
	records := make([]*dtcref.CodeRecord, 0, len(codes))
	for _, code := range codes {
		if record, err := e.store.Get(code); err == nil {
			records = append(records, record)
		}
	}
	return records
}

// intersectSorted intersects two ascending code slices.
func intersectSorted(a, b []string) []string {
	var out []string
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
