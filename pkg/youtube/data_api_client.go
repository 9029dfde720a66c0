package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

const callTimeout = 8 * time.Second

type dataAPI struct {
	svc *yt.Service
}

func NewDataAPI(ctx context.Context, key string, opts ...option.ClientOption) (Searcher, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(key)}, opts...)
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &dataAPI{svc: svc}, nil
}

func (c *dataAPI) Search(ctx context.Context, query string, max int) ([]Video, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order("relevance").
		MaxResults(int64(max)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search.list %q: %w", query, err)
	}

	out := make([]Video, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it.Id == nil || it.Snippet == nil {
			continue
		}
		out = append(out, Video{
			ID:          it.Id.VideoId,
			Title:       it.Snippet.Title,
			Channel:     it.Snippet.ChannelTitle,
			PublishedAt: it.Snippet.PublishedAt,
		})
	}
	return out, nil
}
