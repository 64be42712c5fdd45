package dtcref

import "context"

// Explainer provides plain-language explanations of diagnostic codes.
type Explainer interface {
	// Explain returns a plain-language explanation of a diagnostic code
	// record. An empty question requests a general explanation of the
	// code; a non-empty question is answered in the context of the
	// record.
	Explain(ctx context.Context, record *CodeRecord, question string) (string, error)
}
