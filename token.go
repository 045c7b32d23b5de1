package workbench

import "context"

// TokenCounter counts LLM tokens in text. Used to bound chunk sizes so that
// retrieved context fits a model's window.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
