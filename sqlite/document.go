package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/workbench"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ workbench.DocumentService = (*DocumentService)(nil)

// DocumentService implements workbench.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *workbench.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.LoadedAt.IsZero() {
		doc.LoadedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, path, content, content_hash, tokens, loaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Path, doc.Content, doc.ContentHash, doc.Tokens,
		doc.LoadedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*workbench.Document, error) {
	var doc workbench.Document
	var loadedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, path, content, content_hash, tokens, loaded_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Path, &doc.Content, &doc.ContentHash, &doc.Tokens, &loadedAt)

	if err == sql.ErrNoRows {
		return nil, workbench.Errorf(workbench.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.LoadedAt, err = parseRFC3339(loadedAt, "loaded_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter workbench.DocumentFilter) ([]*workbench.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, path, content, content_hash, tokens, loaded_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*workbench.Document
	for rows.Next() {
		var doc workbench.Document
		var loadedAt string
		if err := rows.Scan(&doc.ID, &doc.Path, &doc.Content, &doc.ContentHash, &doc.Tokens, &loadedAt); err != nil {
			return nil, err
		}
		doc.LoadedAt, err = parseRFC3339(loadedAt, "loaded_at")
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document. Its chunks cascade.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return workbench.Errorf(workbench.ENOTFOUND, "document not found")
	}

	return nil
}
