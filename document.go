package workbench

import (
	"context"
	"time"
)

// Document represents a single file loaded from an indexed codebase.
type Document struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"` // Relative to the indexed directory
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Tokens      int       `json:"tokens,omitempty"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentLoader reads a directory tree into documents. Implementations hide
// binary detection, metadata-directory exclusion, and format conversion.
type DocumentLoader interface {
	LoadDirectory(ctx context.Context, dir string) ([]*Document, error)
}

// DocumentService represents a service for managing loaded documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and its chunks.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID          *string `json:"id"`
	Path        *string `json:"path"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
