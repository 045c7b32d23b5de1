package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/workbench/fs"
	"github.com/fwojciec/workbench/gemini"
	"github.com/fwojciec/workbench/htmltomarkdown"
	"github.com/fwojciec/workbench/index"
	wslog "github.com/fwojciec/workbench/slog"
	"github.com/fwojciec/workbench/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("workbench"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'workbench --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The resolved command path is e.g. "ask <question>"; its first word
	// identifies the command regardless of where flags were placed.
	cmd := strings.Fields(kongCtx.Command())[0]

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	} else {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	// The run command is self-contained; everything else needs the
	// database and usually the Gemini API.
	if cmd == "run" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WORKBENCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Documents = sqlite.NewDocumentService(m.DB)
	chunkSvc := sqlite.NewChunkService(m.DB)
	deps.Chunks = chunkSvc

	if cmd == "index" || cmd == "ask" || cmd == "chunks" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		repo := index.NewRepository(index.Config{
			Loader:   fs.NewLoader(htmltomarkdown.NewConverter(), tokenCounter),
			Chunker:  index.NewChunker(tokenCounter),
			Embedder: gemini.NewEmbedder(client, gemini.EmbeddingModel),
			Docs:     deps.Documents,
			Chunks:   chunkSvc,
			Search:   chunkSvc,
			Asker:    gemini.NewAsker(client, defaultModel),
			Logger:   deps.Logger,
		})
		deps.Repository = wslog.NewLoggingRepository(repo, deps.Logger)
	}

	return kongCtx.Run(deps)
}

const defaultModel = "gemini-3-flash-preview"

// tokenizerModel is used for token counting. Using gemini-2.5-flash until
// gemini-3-flash-preview is supported by google.golang.org/genai/tokenizer.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("WORKBENCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "workbench.db"
	}
	dir := filepath.Join(home, ".workbench")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "workbench.db")
}
