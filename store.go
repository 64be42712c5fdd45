package dtcref

// RecordStore provides read access to a loaded code corpus. A store is
// immutable after construction: implementations must never mutate
// records or membership once the store has been handed to a caller, so
// concurrent readers need no locking.
type RecordStore interface {
	// Get retrieves a record by normalized code.
	// Returns ENOTFOUND if the code is not in the corpus.
	Get(code string) (*CodeRecord, error)

	// All returns every record ordered by code ascending. Each call
	// returns a fresh slice so callers can iterate independently.
	All() []*CodeRecord

	// Contains reports whether a record with the given code exists.
	Contains(code string) bool

	// Len returns the number of records in the store.
	Len() int
}
