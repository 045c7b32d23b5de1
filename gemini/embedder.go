package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/workbench"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// EmbeddingModel is the default embedding model.
const EmbeddingModel = "gemini-embedding-001"

const (
	// embedBatchSize is the number of texts sent per API call.
	embedBatchSize = 64

	// embedConcurrency bounds in-flight embedding requests.
	embedConcurrency = 4

	// embedRequestsPerSecond throttles calls to stay under API quotas.
	embedRequestsPerSecond = 5
)

// Ensure Embedder implements workbench.Embedder at compile time.
var _ workbench.Embedder = (*Embedder)(nil)

// Embedder implements workbench.Embedder using the Gemini embedding API.
// Texts are embedded in rate-limited concurrent batches.
type Embedder struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewEmbedder creates a new Embedder for the given model.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	return &Embedder{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(embedRequestsPerSecond), 1),
	}
}

// Embed computes one embedding vector per input text, in input order.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)

	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		start, end := start, end

		g.Go(func() error {
			if err := e.limiter.Wait(ctx); err != nil {
				return err
			}

			contents := make([]*genai.Content, 0, end-start)
			for _, text := range texts[start:end] {
				contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
			}

			result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
			if err != nil {
				return fmt.Errorf("embedding batch [%d:%d]: %w", start, end, err)
			}
			if result == nil || len(result.Embeddings) != end-start {
				return workbench.Errorf(workbench.EINTERNAL,
					"embedding batch [%d:%d] returned %d vectors", start, end, countEmbeddings(result))
			}

			for i, emb := range result.Embeddings {
				vectors[start+i] = emb.Values
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return vectors, nil
}

func countEmbeddings(r *genai.EmbedContentResponse) int {
	if r == nil {
		return 0
	}
	return len(r.Embeddings)
}
