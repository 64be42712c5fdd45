// Package slog provides logging decorators for dtcref services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awahed/dtcref"
)

// Ensure LoggingQueryService implements dtcref.QueryService.
var _ dtcref.QueryService = (*LoggingQueryService)(nil)

// LoggingQueryService wraps a QueryService with per-operation logging.
type LoggingQueryService struct {
	next   dtcref.QueryService
	logger *slog.Logger
}

// NewLoggingQueryService creates a new LoggingQueryService.
func NewLoggingQueryService(next dtcref.QueryService, logger *slog.Logger) *LoggingQueryService {
	return &LoggingQueryService{next: next, logger: logger}
}

// LookupByCode delegates to the wrapped service and logs the outcome.
func (s *LoggingQueryService) LookupByCode(ctx context.Context, code string) (*dtcref.CodeRecord, error) {
	begin := time.Now()
	record, err := s.next.LookupByCode(ctx, code)
	s.logger.Info("lookup",
		"code", dtcref.NormalizeCode(code),
		"found", err == nil,
		"duration", time.Since(begin),
	)
	return record, err
}

// Filter delegates to the wrapped service and logs the outcome.
func (s *LoggingQueryService) Filter(ctx context.Context, criteria dtcref.FilterCriteria) ([]*dtcref.CodeRecord, error) {
	begin := time.Now()
	records, err := s.next.Filter(ctx, criteria)

	system := ""
	if criteria.System != nil {
		system = *criteria.System
	}
	severity := ""
	if criteria.Severity != nil {
		severity = criteria.Severity.String()
	}
	s.logger.Info("filter",
		"system", system,
		"severity", severity,
		"results", len(records),
		"duration", time.Since(begin),
	)
	return records, err
}

// Search delegates to the wrapped service and logs the outcome.
func (s *LoggingQueryService) Search(ctx context.Context, query string) ([]dtcref.SearchResult, error) {
	begin := time.Now()
	results, err := s.next.Search(ctx, query)
	s.logger.Info("search",
		"query", query,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, err
}
