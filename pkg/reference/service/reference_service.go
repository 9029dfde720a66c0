package service

import (
	"errors"

	"tubeplan/entities"
)

var (
	ErrDomainNotAllowed = errors.New("domain not allowed")
	ErrFetch            = errors.New("fetch failed")
)

// Hit is one matching chunk with its document metadata.
type Hit struct {
	ChunkID   uint    `json:"chunk_id"`
	DocID     uint    `json:"doc_id"`
	Ord       int     `json:"ord"`
	Text      string  `json:"text"`
	Score     float64 `json:"score"`
	DocTitle  string  `json:"doc_title,omitempty"`
	SourceURL string  `json:"source_url,omitempty"`
}

type ReferenceService interface {
	Ingest(title, tags, text, sourceURL string) (*entities.ReferenceDoc, int, error)
	IngestURL(rawURL, title, tags string) (*entities.ReferenceDoc, int, error)
	Search(query string, k int) ([]Hit, error)
	// Related returns distinct documents for the best hits, in rank order.
	Related(query string, k int) ([]entities.ReferenceDoc, error)
}
