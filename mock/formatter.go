package mock

import "github.com/awahed/dtcref"

var _ dtcref.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of dtcref.Formatter.
type Formatter struct {
	FormatRecordFn        func(record *dtcref.CodeRecord) (string, error)
	FormatRecordsFn       func(records []*dtcref.CodeRecord) (string, error)
	FormatSearchResultsFn func(results []dtcref.SearchResult) (string, error)
}

func (f *Formatter) FormatRecord(record *dtcref.CodeRecord) (string, error) {
	return f.FormatRecordFn(record)
}

func (f *Formatter) FormatRecords(records []*dtcref.CodeRecord) (string, error) {
	return f.FormatRecordsFn(records)
}

func (f *Formatter) FormatSearchResults(results []dtcref.SearchResult) (string, error) {
	return f.FormatSearchResultsFn(results)
}
