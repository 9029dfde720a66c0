package youtube

import "context"

type stubClient struct{}

func NewStub() Searcher { return &stubClient{} }

func (s *stubClient) Search(ctx context.Context, query string, max int) ([]Video, error) {
	return nil, nil
}
