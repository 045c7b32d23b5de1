package sqlite

import (
	"context"
	"encoding/binary"
	"math"
	"sort"
	"strings"

	"github.com/fwojciec/workbench"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ workbench.ChunkService  = (*ChunkService)(nil)
	_ workbench.SearchService = (*ChunkService)(nil)
)

// ChunkService implements workbench.ChunkService and workbench.SearchService
// using SQLite. Embeddings are stored as little-endian float32 BLOBs; search
// scores every stored embedding against the query vector. A loaded codebase
// yields thousands of chunks at most, so a full scan is fast enough and
// keeps the ranking math out of a dedicated index structure.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// CreateChunks creates multiple chunks in a batch.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*workbench.Chunk) error {
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
	}

	for _, chunk := range chunks {
		if chunk.ID == "" {
			chunk.ID = uuid.New().String()
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO chunks (id, document_id, path, content, position, embedding)
			VALUES (?, ?, ?, ?, ?, ?)
		`, chunk.ID, chunk.DocumentID, chunk.Path, chunk.Content, chunk.Position,
			encodeEmbedding(chunk.Embedding))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindChunks retrieves chunks matching the filter, ordered by document and
// position.
func (s *ChunkService) FindChunks(ctx context.Context, filter workbench.ChunkFilter) ([]*workbench.Chunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_id, path, content, position, embedding FROM chunks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}

	query.WriteString(" ORDER BY document_id, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*workbench.Chunk
	for rows.Next() {
		var chunk workbench.Chunk
		var embedding []byte
		if err := rows.Scan(&chunk.ID, &chunk.DocumentID, &chunk.Path, &chunk.Content, &chunk.Position, &embedding); err != nil {
			return nil, err
		}
		chunk.Embedding = decodeEmbedding(embedding)
		chunks = append(chunks, &chunk)
	}

	return chunks, rows.Err()
}

// DeleteChunksByDocument removes all chunks for a document.
func (s *ChunkService) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE document_id = ?", documentID)
	return err
}

// Search returns chunks ordered by cosine similarity to the query embedding.
func (s *ChunkService) Search(ctx context.Context, query []float32, opts workbench.SearchOptions) ([]workbench.ScoredChunk, error) {
	if len(query) == 0 {
		return nil, workbench.Errorf(workbench.EINVALID, "query embedding required")
	}

	chunks, err := s.FindChunks(ctx, workbench.ChunkFilter{})
	if err != nil {
		return nil, err
	}

	var results []workbench.ScoredChunk
	for _, chunk := range chunks {
		if len(chunk.Embedding) != len(query) {
			continue
		}
		score := cosineSimilarity(query, chunk.Embedding)
		if score < opts.MinScore {
			continue
		}
		results = append(results, workbench.ScoredChunk{Chunk: chunk, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results, nil
}

// encodeEmbedding serializes a vector as little-endian float32 bytes.
// A nil vector encodes as nil.
func encodeEmbedding(v []float32) []byte {
	if v == nil {
		return nil
	}
	b := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	return b
}

// decodeEmbedding is the inverse of encodeEmbedding.
func decodeEmbedding(b []byte) []float32 {
	if len(b) == 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return v
}

// cosineSimilarity computes the cosine of the angle between two equal-length
// vectors. Zero vectors score zero.
func cosineSimilarity(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
