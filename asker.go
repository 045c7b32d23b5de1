package workbench

import "context"

// Asker answers natural language questions from retrieved code chunks.
type Asker interface {
	// Ask answers a question using the given chunks as context.
	// Returns EINVALID if the question is empty.
	Ask(ctx context.Context, question string, chunks []ScoredChunk) (string, error)
}

// CodeRepository is the retrieval facade: it loads a directory of code into
// an index and answers natural language queries against it. The chunking,
// embedding, and ranking machinery lives behind this interface.
type CodeRepository interface {
	// Load indexes the given directory, replacing any stale documents.
	Load(ctx context.Context, dir string) error

	// Query answers a plain English question about the loaded codebase.
	// Returns ENOTFOUND if nothing has been loaded yet.
	Query(ctx context.Context, question string) (string, error)

	// RelevantChunks retrieves the topK chunks most relevant to a prompt.
	// Returns ENOTFOUND if nothing has been loaded yet.
	RelevantChunks(ctx context.Context, prompt string, topK int) ([]ScoredChunk, error)
}
