// Package gemini implements workbench services backed by the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/workbench"
	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Ensure Asker implements workbench.Asker at compile time.
var _ workbench.Asker = (*Asker)(nil)

// Asker implements workbench.Asker using Google Gemini. It answers questions
// from retrieved code chunks supplied by the caller.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, model string) *Asker {
	return &Asker{client: client, model: model}
}

// Ask answers a question using the given chunks as context.
func (a *Asker) Ask(ctx context.Context, question string, chunks []workbench.ScoredChunk) (string, error) {
	if question == "" {
		return "", workbench.Errorf(workbench.EINVALID, "question required")
	}
	if len(chunks) == 0 {
		return "", workbench.Errorf(workbench.ENOTFOUND, "no relevant code found")
	}

	prompt := BuildUserPrompt(chunks, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", workbench.Errorf(workbench.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about a codebase. Answer based only on the code excerpts provided. If the answer is not in the excerpts, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing code excerpts and the question.
func BuildUserPrompt(chunks []workbench.ScoredChunk, question string) string {
	var sb strings.Builder
	sb.WriteString("<excerpts>\n")
	for i, sc := range chunks {
		sb.WriteString("<excerpt>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<path>%s</path>\n", sc.Chunk.Path)
		fmt.Fprintf(&sb, "<content>%s</content>\n", sc.Chunk.Content)
		sb.WriteString("</excerpt>\n")
	}
	sb.WriteString("</excerpts>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
