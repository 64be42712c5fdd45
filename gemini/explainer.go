// Package gemini provides an AI explanation service backed by the
// Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/awahed/dtcref"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Explainer implements dtcref.Explainer at compile time.
var _ dtcref.Explainer = (*Explainer)(nil)

// Explainer implements dtcref.Explainer using Google Gemini. Requests
// are rate limited to one per second to stay clear of API quotas.
type Explainer struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewExplainer creates a new Explainer. An empty model selects
// DefaultModel.
func NewExplainer(client *genai.Client, model string) *Explainer {
	if model == "" {
		model = DefaultModel
	}
	return &Explainer{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Explain returns a plain-language explanation of a diagnostic code
// record, optionally answering a caller question about it.
func (e *Explainer) Explain(ctx context.Context, record *dtcref.CodeRecord, question string) (string, error) {
	if record == nil {
		return "", dtcref.Errorf(dtcref.EINVALID, "record required")
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return "", err
	}

	prompt := BuildUserPrompt(record, question)
	config := BuildConfig()

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", dtcref.Errorf(dtcref.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an automotive diagnostic assistant explaining standardized vehicle error codes to vehicle owners. Explain in plain language what the code means, how urgent it is, and what the owner should do. Base your answer only on the record provided.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the record fields
// and the optional question.
func BuildUserPrompt(record *dtcref.CodeRecord, question string) string {
	var sb strings.Builder
	sb.WriteString("<record>\n")
	fmt.Fprintf(&sb, "<code>%s</code>\n", record.Code)
	fmt.Fprintf(&sb, "<description>%s</description>\n", record.Description)
	fmt.Fprintf(&sb, "<severity>%s</severity>\n", record.Severity)
	fmt.Fprintf(&sb, "<system>%s</system>\n", record.System)
	fmt.Fprintf(&sb, "<category>%s</category>\n", record.Category())
	sb.WriteString("<possible_causes>\n")
	for _, cause := range record.Causes {
		fmt.Fprintf(&sb, "- %s\n", cause)
	}
	sb.WriteString("</possible_causes>\n")
	sb.WriteString("<recommended_actions>\n")
	for _, action := range record.Actions {
		fmt.Fprintf(&sb, "- %s\n", action)
	}
	sb.WriteString("</recommended_actions>\n")
	sb.WriteString("</record>\n\n")

	if question == "" {
		sb.WriteString("Explain this diagnostic code.")
	} else {
		fmt.Fprintf(&sb, "Question: %s", question)
	}
	return sb.String()
}
