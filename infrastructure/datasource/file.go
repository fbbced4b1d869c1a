package datasource

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// FileSource lê o dataset de um arquivo JSON local
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return config.SourceFile
}

func (s *FileSource) Fetch(ctx context.Context) (*domain.MarketingData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening dataset file %s", s.path)
	}
	defer f.Close()

	return decodeDataset(f)
}
