package dtcref

import "context"

// FilterCriteria selects records by attribute. At least one criterion
// must be set; an empty filter is rejected rather than returning the
// whole corpus.
type FilterCriteria struct {
	System   *string   `json:"system"`
	Severity *Severity `json:"severity"`
}

// SearchResult pairs a record with its keyword relevance score.
type SearchResult struct {
	Record *CodeRecord `json:"record"`
	Score  float64     `json:"score"`
}

// QueryService answers point-lookup, filter, and keyword-search queries
// over a loaded corpus. All operations are synchronous, side-effect
// free, and safe for concurrent callers.
type QueryService interface {
	// LookupByCode retrieves a record by its code. Lookup is
	// case-insensitive: the code is uppercased before the store access.
	// Returns ENOTFOUND if the code is not in the corpus.
	LookupByCode(ctx context.Context, code string) (*CodeRecord, error)

	// Filter returns the records matching the criteria, ordered by code
	// ascending. When both system and severity are set the result is
	// the intersection of the two index buckets.
	// Returns EINVALID if no criterion is set.
	Filter(ctx context.Context, criteria FilterCriteria) ([]*CodeRecord, error)

	// Search tokenizes the query the same way records are indexed and
	// returns the records sharing at least one token, ordered by score
	// descending with ties broken by code ascending. A query that
	// matches nothing yields an empty result, not an error.
	// Returns EINVALID if the query is blank.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
