package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/okian/scout/internal/domain/model"
)

// FileSource reads a JSON array of candidates from disk. Useful for
// replaying captured scrapes in demos and tests.
type FileSource struct {
	name string
	path string
}

// NewFileSource creates a source reading candidates from path. The
// platform tag defaults to "file" when name is empty.
func NewFileSource(name, path string) *FileSource {
	if name == "" {
		name = "file"
	}
	return &FileSource{name: name, path: path}
}

// Name returns the platform tag.
func (s *FileSource) Name() string { return s.name }

// Fetch loads and decodes the candidate file. Decoding or read errors
// surface to the fetch layer, which turns them into failed envelopes.
func (s *FileSource) Fetch(ctx context.Context, query, location string) (model.ScrapingResult, error) {
	select {
	case <-ctx.Done():
		return model.ScrapingResult{}, ctx.Err()
	default:
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.ScrapingResult{}, fmt.Errorf("%w: %v", ErrReadDataset, err)
	}

	var events []model.Candidate
	if err := json.Unmarshal(data, &events); err != nil {
		return model.ScrapingResult{}, fmt.Errorf("%w: %v", ErrDecodeDataset, err)
	}
	for i := range events {
		if events[i].Platform == "" {
			events[i].Platform = s.name
		}
	}

	return model.ScrapingResult{
		Success:   true,
		Events:    events,
		Platform:  s.name,
		Query:     query,
		Location:  location,
		ScrapedAt: time.Now(),
	}, nil
}
