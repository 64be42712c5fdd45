// Package mock provides function-field mock implementations of the
// dtcref service interfaces for testing.
package mock

import (
	"context"

	"github.com/awahed/dtcref"
)

var _ dtcref.QueryService = (*QueryService)(nil)

// QueryService is a mock implementation of dtcref.QueryService.
type QueryService struct {
	LookupByCodeFn func(ctx context.Context, code string) (*dtcref.CodeRecord, error)
	FilterFn       func(ctx context.Context, criteria dtcref.FilterCriteria) ([]*dtcref.CodeRecord, error)
	SearchFn       func(ctx context.Context, query string) ([]dtcref.SearchResult, error)
}

func (s *QueryService) LookupByCode(ctx context.Context, code string) (*dtcref.CodeRecord, error) {
	return s.LookupByCodeFn(ctx, code)
}

func (s *QueryService) Filter(ctx context.Context, criteria dtcref.FilterCriteria) ([]*dtcref.CodeRecord, error) {
	return s.FilterFn(ctx, criteria)
}

func (s *QueryService) Search(ctx context.Context, query string) ([]dtcref.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
