// Package index orchestrates loading, chunking, embedding, and retrieval for
// codebase question answering.
package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/workbench"
	"github.com/fwojciec/workbench/bloom"
)

const (
	// defaultTopK is the number of chunks RelevantChunks returns when the
	// caller does not say otherwise.
	defaultTopK = 2

	// answerChunks is how many chunks feed the asker for a Query.
	answerChunks = 8

	// Expected corpus size for the dedupe filter.
	bloomSize   = 100_000
	bloomFPRate = 0.01
)

// Ensure Repository implements workbench.CodeRepository at compile time.
var _ workbench.CodeRepository = (*Repository)(nil)

// Repository implements workbench.CodeRepository. Load walks a directory,
// chunks and embeds changed documents, and persists them; queries embed the
// prompt and rank stored chunks against it.
type Repository struct {
	loader   workbench.DocumentLoader
	chunker  workbench.Chunker
	embedder workbench.Embedder
	docs     workbench.DocumentService
	chunks   workbench.ChunkService
	search   workbench.SearchService
	asker    workbench.Asker
	seen     *bloom.Filter
	logger   *slog.Logger
}

// Config holds the collaborators for a Repository. All fields are required
// except Asker, which may be nil when only RelevantChunks is used.
type Config struct {
	Loader   workbench.DocumentLoader
	Chunker  workbench.Chunker
	Embedder workbench.Embedder
	Docs     workbench.DocumentService
	Chunks   workbench.ChunkService
	Search   workbench.SearchService
	Asker    workbench.Asker
	Logger   *slog.Logger
}

// NewRepository creates a Repository from cfg.
func NewRepository(cfg Config) *Repository {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		loader:   cfg.Loader,
		chunker:  cfg.Chunker,
		embedder: cfg.Embedder,
		docs:     cfg.Docs,
		chunks:   cfg.Chunks,
		search:   cfg.Search,
		asker:    cfg.Asker,
		seen:     bloom.NewFilter(bloomSize, bloomFPRate),
		logger:   logger,
	}
}

// Load indexes dir. Documents whose content is unchanged since the last load
// keep their stored chunks and embeddings; changed documents are replaced.
func (r *Repository) Load(ctx context.Context, dir string) error {
	docs, err := r.loader.LoadDirectory(ctx, dir)
	if err != nil {
		return fmt.Errorf("loading %q: %w", dir, err)
	}

	var indexed, skipped int
	for _, doc := range docs {
		changed, err := r.loadDocument(ctx, doc)
		if err != nil {
			return fmt.Errorf("indexing %q: %w", doc.Path, err)
		}
		if changed {
			indexed++
		} else {
			skipped++
		}
	}

	r.logger.Info("load complete",
		slog.String("dir", dir),
		slog.Int("indexed", indexed),
		slog.Int("unchanged", skipped),
	)
	return nil
}

// loadDocument indexes a single document, returning whether anything was
// (re-)embedded.
func (r *Repository) loadDocument(ctx context.Context, doc *workbench.Document) (bool, error) {
	// The bloom filter gives a cheap negative: a hash it has never seen
	// cannot be stored. Positives are confirmed against the database to
	// rule out false positives.
	if r.seen.Test(doc.ContentHash) {
		existing, err := r.docs.FindDocuments(ctx, workbench.DocumentFilter{
			Path:        &doc.Path,
			ContentHash: &doc.ContentHash,
			Limit:       1,
		})
		if err != nil {
			return false, err
		}
		if len(existing) > 0 {
			return false, nil
		}
	}

	// Replace any stale version of this path.
	stale, err := r.docs.FindDocuments(ctx, workbench.DocumentFilter{Path: &doc.Path})
	if err != nil {
		return false, err
	}
	for _, old := range stale {
		if err := r.docs.DeleteDocument(ctx, old.ID); err != nil {
			return false, err
		}
	}

	if err := r.docs.CreateDocument(ctx, doc); err != nil {
		return false, err
	}

	chunks, err := r.chunker.Chunk(ctx, doc)
	if err != nil {
		return false, err
	}
	if len(chunks) == 0 {
		r.seen.Add(doc.ContentHash)
		return true, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		return false, err
	}
	if len(vectors) != len(chunks) {
		return false, workbench.Errorf(workbench.EINTERNAL,
			"embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}
	for i, chunk := range chunks {
		chunk.Embedding = vectors[i]
	}

	if err := r.chunks.CreateChunks(ctx, chunks); err != nil {
		return false, err
	}

	r.seen.Add(doc.ContentHash)
	return true, nil
}

// RelevantChunks retrieves the topK chunks most relevant to prompt.
func (r *Repository) RelevantChunks(ctx context.Context, prompt string, topK int) ([]workbench.ScoredChunk, error) {
	if prompt == "" {
		return nil, workbench.Errorf(workbench.EINVALID, "prompt required")
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	vectors, err := r.embedder.Embed(ctx, []string{prompt})
	if err != nil {
		return nil, fmt.Errorf("embedding prompt: %w", err)
	}
	if len(vectors) != 1 {
		return nil, workbench.Errorf(workbench.EINTERNAL, "embedder returned %d vectors for one prompt", len(vectors))
	}

	return r.search.Search(ctx, vectors[0], workbench.SearchOptions{Limit: topK})
}

// Query answers a plain English question about the loaded codebase.
func (r *Repository) Query(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", workbench.Errorf(workbench.EINVALID, "question required")
	}

	chunks, err := r.RelevantChunks(ctx, question, answerChunks)
	if err != nil {
		return "", err
	}

	return r.asker.Ask(ctx, question, chunks)
}

// ensureLoaded fails with ENOTFOUND if nothing has ever been indexed.
func (r *Repository) ensureLoaded(ctx context.Context) error {
	docs, err := r.docs.FindDocuments(ctx, workbench.DocumentFilter{Limit: 1})
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return workbench.Errorf(workbench.ENOTFOUND, "no codebase has been loaded yet")
	}
	return nil
}
