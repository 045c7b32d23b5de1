package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/workbench"
)

// Ensure LoggingRepository implements workbench.CodeRepository at compile time.
var _ workbench.CodeRepository = (*LoggingRepository)(nil)

// LoggingRepository wraps a CodeRepository with structured logging.
type LoggingRepository struct {
	next   workbench.CodeRepository
	logger *slog.Logger
}

// NewLoggingRepository creates a new LoggingRepository.
func NewLoggingRepository(next workbench.CodeRepository, logger *slog.Logger) *LoggingRepository {
	return &LoggingRepository{next: next, logger: logger}
}

// Load delegates to the wrapped repository and logs duration.
func (r *LoggingRepository) Load(ctx context.Context, dir string) error {
	begin := time.Now()
	err := r.next.Load(ctx, dir)
	if err != nil {
		r.logger.Error("load", slog.String("dir", dir), slog.String("err", err.Error()))
		return err
	}
	r.logger.Info("load", slog.String("dir", dir), slog.Duration("duration", time.Since(begin)))
	return nil
}

// Query delegates to the wrapped repository and logs duration.
func (r *LoggingRepository) Query(ctx context.Context, question string) (string, error) {
	begin := time.Now()
	answer, err := r.next.Query(ctx, question)
	if err != nil {
		r.logger.Error("query", slog.String("err", err.Error()))
		return "", err
	}
	r.logger.Info("query",
		slog.Int("answer_bytes", len(answer)),
		slog.Duration("duration", time.Since(begin)),
	)
	return answer, nil
}

// RelevantChunks delegates to the wrapped repository and logs result count.
func (r *LoggingRepository) RelevantChunks(ctx context.Context, prompt string, topK int) ([]workbench.ScoredChunk, error) {
	begin := time.Now()
	chunks, err := r.next.RelevantChunks(ctx, prompt, topK)
	if err != nil {
		r.logger.Error("relevant_chunks", slog.String("err", err.Error()))
		return nil, err
	}
	r.logger.Info("relevant_chunks",
		slog.Int("top_k", topK),
		slog.Int("results", len(chunks)),
		slog.Duration("duration", time.Since(begin)),
	)
	return chunks, nil
}
