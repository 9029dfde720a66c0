// Package youtube looks up competitor videos for research notes.
// The lookup is best effort: a missing key or a failed call yields no results.
package youtube

import (
	"context"

	"tubeplan/pkg/logger"
)

type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	PublishedAt string `json:"published_at"`
}

type Searcher interface {
	Search(ctx context.Context, query string, max int) ([]Video, error)
}

// New returns the Data API client when key is set, otherwise the stub.
func New(ctx context.Context, key string, log *logger.Logger) Searcher {
	if key == "" {
		return NewStub()
	}
	s, err := NewDataAPI(ctx, key)
	if err != nil {
		log.Warn("youtube client init failed, using stub", "error", err)
		return NewStub()
	}
	return s
}

// SafeSearch never fails: errors are logged and replaced by an empty result.
func SafeSearch(ctx context.Context, s Searcher, log *logger.Logger, query string, max int) []Video {
	if s == nil || query == "" || max <= 0 {
		return nil
	}
	out, err := s.Search(ctx, query, max)
	if err != nil {
		if log != nil {
			log.Warn("video search failed", "query", query, "error", err)
		}
		return nil
	}
	return out
}

type safe struct {
	inner Searcher
	log   *logger.Logger
}

// Safe wraps s so that Search never returns an error.
func Safe(s Searcher, log *logger.Logger) Searcher {
	return &safe{inner: s, log: log}
}

func (s *safe) Search(ctx context.Context, query string, max int) ([]Video, error) {
	return SafeSearch(ctx, s.inner, s.log, query, max), nil
}
