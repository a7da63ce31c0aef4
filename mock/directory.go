package mock

import (
	"context"

	"github.com/award/parkscout"
)

var _ parkscout.DirectoryService = (*DirectoryService)(nil)

// DirectoryService is a mock implementation of parkscout.DirectoryService.
type DirectoryService struct {
	StateMapFn func(ctx context.Context) (map[string]string, error)
}

func (s *DirectoryService) StateMap(ctx context.Context) (map[string]string, error) {
	return s.StateMapFn(ctx)
}

var _ parkscout.DirectoryParser = (*DirectoryParser)(nil)

// DirectoryParser is a mock implementation of parkscout.DirectoryParser.
type DirectoryParser struct {
	ParseStateIndexFn func(html, baseURL string) (map[string]string, error)
}

func (p *DirectoryParser) ParseStateIndex(html, baseURL string) (map[string]string, error) {
	return p.ParseStateIndexFn(html, baseURL)
}
