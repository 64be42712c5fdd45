package mock

import (
	"context"

	"github.com/awahed/dtcref"
)

var _ dtcref.Explainer = (*Explainer)(nil)

// Explainer is a mock implementation of dtcref.Explainer.
type Explainer struct {
	ExplainFn func(ctx context.Context, record *dtcref.CodeRecord, question string) (string, error)
}

func (e *Explainer) Explain(ctx context.Context, record *dtcref.CodeRecord, question string) (string, error) {
	return e.ExplainFn(ctx, record, question)
}
