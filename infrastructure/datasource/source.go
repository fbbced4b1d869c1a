package datasource

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

import (
	"context"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source carrega o dataset completo de campanhas. Cada chamada é uma única
// tentativa: quem chama decide o que fazer com o erro.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*domain.MarketingData, error)
}

// New escolhe a origem do dataset a partir de DATASET_SOURCE. A conexão só é
// usada pela origem postgres.
func New(cfg config.Dataset, conn postgres.Queryer) (Source, error) {
	switch cfg.Source {
	case config.SourceHTTP:
		return NewHTTPSource(cfg), nil
	case config.SourceFile:
		return NewFileSource(cfg.Path), nil
	case config.SourcePostgres:
		if conn == nil {
			return nil, errors.New("postgres dataset source requires a database connection")
		}
		return NewPostgresSource(conn, cfg.Table), nil
	default:
		return nil, errors.Errorf("origem de dataset desconhecida %q", cfg.Source)
	}
}

func decodeDataset(r io.Reader) (*domain.MarketingData, error) {
	data := &domain.MarketingData{}
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return nil, errors.Wrap(err, "decoding dataset")
	}
	normalize(data)
	return data, nil
}

// normalize troca listas ausentes por listas vazias para que o JSON do
// dataset e o das linhas do banco tenham o mesmo formato
func normalize(data *domain.MarketingData) {
	if data.Campaigns == nil {
		data.Campaigns = []domain.Campaign{}
	}
	for i := range data.Campaigns {
		c := &data.Campaigns[i]
		if c.DemographicBreakdown == nil {
			c.DemographicBreakdown = []domain.DemographicBreakdown{}
		}
		if c.DevicePerformance == nil {
			c.DevicePerformance = []domain.DevicePerformance{}
		}
		if c.RegionalPerformance == nil {
			c.RegionalPerformance = []domain.RegionalPerformance{}
		}
		if c.WeeklyPerformance == nil {
			c.WeeklyPerformance = []domain.WeeklyPerformance{}
		}
	}
}
