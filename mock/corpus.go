package mock

import (
	"context"

	"github.com/awahed/dtcref"
)

var _ dtcref.CorpusService = (*CorpusService)(nil)

// CorpusService is a mock implementation of dtcref.CorpusService.
type CorpusService struct {
	ImportCorpusFn func(ctx context.Context, records []*dtcref.CodeRecord, source string) (*dtcref.ImportInfo, error)
	LoadRecordsFn  func(ctx context.Context) ([]*dtcref.CodeRecord, error)
	LastImportFn   func(ctx context.Context) (*dtcref.ImportInfo, error)
}

func (s *CorpusService) ImportCorpus(ctx context.Context, records []*dtcref.CodeRecord, source string) (*dtcref.ImportInfo, error) {
	return s.ImportCorpusFn(ctx, records, source)
}

func (s *CorpusService) LoadRecords(ctx context.Context) ([]*dtcref.CodeRecord, error) {
	return s.LoadRecordsFn(ctx)
}

func (s *CorpusService) LastImport(ctx context.Context) (*dtcref.ImportInfo, error) {
	return s.LastImportFn(ctx)
}
