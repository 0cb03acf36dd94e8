package source

import (
	"boulderhall-service/internal/domain"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileSource reads the halls document from a local JSON file on every fetch.
type FileSource struct {
	Path string
}

func NewFileSource(path string) (*FileSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("file hall source: path is empty")
	}
	return &FileSource{Path: path}, nil
}

func (s *FileSource) FetchHalls(ctx context.Context) ([]domain.Hall, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("fetch halls: open %q: %w", s.Path, err)
	}
	defer f.Close()

	halls, err := DecodeHalls(f)
	if err != nil {
		return nil, fmt.Errorf("fetch halls: %q: %w", s.Path, err)
	}
	return halls, nil
}
