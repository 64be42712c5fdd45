package mock

import "github.com/awahed/dtcref"

var _ dtcref.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of dtcref.RecordStore.
type RecordStore struct {
	GetFn      func(code string) (*dtcref.CodeRecord, error)
	AllFn      func() []*dtcref.CodeRecord
	ContainsFn func(code string) bool
	LenFn      func() int
}

func (s *RecordStore) Get(code string) (*dtcref.CodeRecord, error) {
	return s.GetFn(code)
}

func (s *RecordStore) All() []*dtcref.CodeRecord {
	return s.AllFn()
}

func (s *RecordStore) Contains(code string) bool {
	return s.ContainsFn(code)
}

func (s *RecordStore) Len() int {
	return s.LenFn()
}
