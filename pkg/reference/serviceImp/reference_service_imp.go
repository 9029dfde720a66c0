package serviceImp

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"unicode"

	"tubeplan/entities"
	"tubeplan/pkg/apierr"
	"tubeplan/pkg/reference/repository"
	"tubeplan/pkg/reference/service"
)

const chunkRunes = 1000

type Svc struct {
	r        repository.ReferenceRepository
	allow    map[string]bool
	maxBytes int64
	httpc    *http.Client
}

func New(r repository.ReferenceRepository, allowedDomains []string, maxBytes int64) *Svc {
	allow := map[string]bool{}
	for _, h := range allowedDomains {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allow[h] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 2_000_000
	}
	return &Svc{r: r, allow: allow, maxBytes: maxBytes, httpc: newHTTPClient(allow)}
}

var _ service.ReferenceService = (*Svc)(nil)

// chunkText splits after a newline once a chunk reaches maxRunes.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = chunkRunes
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) Ingest(title, tags, text, sourceURL string) (*entities.ReferenceDoc, int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, 0, apierr.Validation("title is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, 0, apierr.Validation("text is required")
	}
	d := &entities.ReferenceDoc{Title: title, Tags: strings.TrimSpace(tags), SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, fmt.Errorf("create doc: %w", err)
	}

	chs := chunkText(text, chunkRunes)
	rows := make([]entities.ReferenceChunk, len(chs))
	for i := range chs {
		rows[i] = entities.ReferenceChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, fmt.Errorf("insert chunks: %w", err)
	}
	return d, len(rows), nil
}

func terms(q string) []string {
	f := strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	out := f[:0]
	seen := map[string]bool{}
	for _, t := range f {
		if len([]rune(t)) < 2 || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// Search scores each chunk by the number of query-term occurrences. Zero scores are dropped.
func (s *Svc) Search(query string, k int) ([]service.Hit, error) {
	ts := terms(query)
	if len(ts) == 0 || k <= 0 {
		return nil, nil
	}
	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}

	hits := make([]service.Hit, 0)
	for _, ch := range chunks {
		low := strings.ToLower(ch.Text)
		score := 0
		for _, t := range ts {
			score += strings.Count(low, t)
		}
		if score == 0 {
			continue
		}
		hits = append(hits, service.Hit{ChunkID: ch.ChunkID, DocID: ch.DocID, Ord: ch.Ord, Text: ch.Text, Score: float64(score)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if k < len(hits) {
		hits = hits[:k]
	}

	ids := make([]uint, 0, len(hits))
	seen := map[uint]bool{}
	for _, h := range hits {
		if !seen[h.DocID] {
			seen[h.DocID] = true
			ids = append(ids, h.DocID)
		}
	}
	meta, err := s.r.DocsByIDs(ids)
	if err != nil {
		return nil, err
	}
	for i := range hits {
		if d, ok := meta[hits[i].DocID]; ok {
			hits[i].DocTitle = d.Title
			hits[i].SourceURL = d.SourceURL
		}
	}
	return hits, nil
}

func (s *Svc) Related(query string, k int) ([]entities.ReferenceDoc, error) {
	hits, err := s.Search(query, k*4)
	if err != nil {
		return nil, err
	}
	out := []entities.ReferenceDoc{}
	seen := map[uint]bool{}
	for _, h := range hits {
		if seen[h.DocID] {
			continue
		}
		seen[h.DocID] = true
		out = append(out, entities.ReferenceDoc{DocID: h.DocID, Title: h.DocTitle, SourceURL: h.SourceURL})
		if len(out) == k {
			break
		}
	}
	return out, nil
}
