package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/workbench"
	"github.com/fwojciec/workbench/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	DB         *sqlite.DB
	Documents  workbench.DocumentService
	Chunks     workbench.ChunkService
	Repository workbench.CodeRepository
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log progress to stderr"`

	Run    RunCmd    `cmd:"" help:"Execute a shell command in a working directory"`
	Index  IndexCmd  `cmd:"" help:"Index a codebase directory for retrieval"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about the indexed codebase"`
	Chunks ChunksCmd `cmd:"" help:"Show the chunks most relevant to a prompt"`
	Docs   DocsCmd   `cmd:"" help:"List indexed documents"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Command string `arg:"" help:"Shell command to execute"`
	Dir     string `short:"d" default:"." help:"Working directory"`
	Timeout int    `short:"t" default:"0" help:"Kill the command after this many seconds (0 means no limit)"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Dir string `arg:"" help:"Directory to index"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the codebase"`
}

// ChunksCmd is the "chunks" subcommand.
type ChunksCmd struct {
	Prompt string `arg:"" help:"Prompt to retrieve chunks for"`
	TopK   int    `short:"k" default:"2" help:"Number of chunks to return"`
	Full   bool   `help:"Show full chunk content"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Full bool `help:"Show full document content"`
}
