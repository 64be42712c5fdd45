package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/awahed/dtcref"
	main "github.com/awahed/dtcref/cmd/dtcref"
	"github.com/awahed/dtcref/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("looks up the record and prints the explanation", func(t *testing.T) {
		t.Parallel()

		queries := &mock.QueryService{
			LookupByCodeFn: func(_ context.Context, code string) (*dtcref.CodeRecord, error) {
				assert.Equal(t, "P0300", code)
				return testRecord(), nil
			},
		}
		explainer := &mock.Explainer{
			ExplainFn: func(_ context.Context, record *dtcref.CodeRecord, question string) (string, error) {
				assert.Equal(t, "P0300", record.Code)
				assert.Equal(t, "Is it safe to drive?", question)
				return "A misfire means combustion failed in one or more cylinders.", nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Queries:   queries,
			Explainer: explainer,
		}

		cmd := &main.ExplainCmd{Code: "P0300", Question: "Is it safe to drive?"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "combustion failed")
	})

	t.Run("does not call Gemini when the code is unknown", func(t *testing.T) {
		t.Parallel()

		queries := &mock.QueryService{
			LookupByCodeFn: func(_ context.Context, code string) (*dtcref.CodeRecord, error) {
				return nil, dtcref.Errorf(dtcref.ENOTFOUND, "code %q not found", code)
			},
		}
		explainer := &mock.Explainer{
			ExplainFn: func(_ context.Context, _ *dtcref.CodeRecord, _ string) (string, error) {
				t.Fatal("Explain should not be called")
				return "", nil
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Queries:   queries,
			Explainer: explainer,
		}

		cmd := &main.ExplainCmd{Code: "P9999"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dtcref.ENOTFOUND, dtcref.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
