package datasource

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

var campaignColumns = []string{
	"id",
	"name",
	"spend",
	"revenue",
	"demographic_breakdown",
	"device_performance",
	"regional_performance",
	"weekly_performance",
}

// PostgresSource lê as campanhas de uma tabela onde cada breakdown é uma coluna JSONB
type PostgresSource struct {
	conn  postgres.Queryer
	table string
}

func NewPostgresSource(conn postgres.Queryer, table string) *PostgresSource {
	return &PostgresSource{conn: conn, table: table}
}

func (s *PostgresSource) Name() string {
	return config.SourcePostgres
}

func (s *PostgresSource) query() (string, []interface{}, error) {
	return squirrel.
		Select(campaignColumns...).
		From(s.table).
		OrderBy("position", "id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (s *PostgresSource) Fetch(ctx context.Context) (*domain.MarketingData, error) {
	query, args, err := s.query()
	if err != nil {
		return nil, errors.Wrap(err, "building campaigns query")
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying campaigns")
	}
	defer rows.Close()

	data := &domain.MarketingData{Campaigns: []domain.Campaign{}}
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		data.Campaigns = append(data.Campaigns, *campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating campaigns")
	}

	normalize(data)
	return data, nil
}

type campaignRow struct {
	id           string
	name         string
	spend        float64
	revenue      float64
	demographics []byte
	devices      []byte
	regions      []byte
	weeks        []byte
}

func scanCampaign(rows *sql.Rows) (*domain.Campaign, error) {
	row := campaignRow{}
	if err := rows.Scan(
		&row.id,
		&row.name,
		&row.spend,
		&row.revenue,
		&row.demographics,
		&row.devices,
		&row.regions,
		&row.weeks,
	); err != nil {
		return nil, errors.Wrap(err, "scanning campaign")
	}

	return row.toCampaign()
}

func (r campaignRow) toCampaign() (*domain.Campaign, error) {
	campaign := &domain.Campaign{
		ID:      r.id,
		Name:    r.name,
		Spend:   r.spend,
		Revenue: r.revenue,
	}

	columns := []struct {
		name string
		raw  []byte
		dest interface{}
	}{
		{"demographic_breakdown", r.demographics, &campaign.DemographicBreakdown},
		{"device_performance", r.devices, &campaign.DevicePerformance},
		{"regional_performance", r.regions, &campaign.RegionalPerformance},
		{"weekly_performance", r.weeks, &campaign.WeeklyPerformance},
	}

	for _, col := range columns {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return nil, errors.Wrapf(err, "decoding %s of campaign %s", col.name, r.id)
		}
	}

	return campaign, nil
}
