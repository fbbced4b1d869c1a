package datasource

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// Seeder grava um MarketingData na tabela lida pelo PostgresSource,
// substituindo o conteúdo anterior
type Seeder struct {
	conn  postgres.Conn
	table string
}

func NewSeeder(conn postgres.Conn, table string) *Seeder {
	return &Seeder{conn: conn, table: table}
}

// Seed retorna a quantidade de campanhas gravadas
func (s *Seeder) Seed(ctx context.Context, data *domain.MarketingData) (int, error) {
	if data == nil || len(data.Campaigns) == 0 {
		return 0, errors.New("dataset has no campaigns to seed")
	}
	normalize(data)

	insert, err := s.insertQuery(data.Campaigns)
	if err != nil {
		return 0, err
	}

	deleteQuery, _, err := squirrel.Delete(s.table).ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building delete query")
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery); err != nil {
			return errors.Wrapf(err, "clearing %s", s.table)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return errors.Wrap(err, "building insert query")
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "inserting into %s", s.table)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"table":     s.table,
		"campaigns": len(data.Campaigns),
	}).Info("seed: campanhas gravadas")

	return len(data.Campaigns), nil
}

// insertQuery monta um único INSERT com todas as campanhas, na ordem do
// dataset. Campanhas sem id recebem um gerado.
func (s *Seeder) insertQuery(campaigns []domain.Campaign) (squirrel.InsertBuilder, error) {
	insert := squirrel.
		Insert(s.table).
		Columns(campaignColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range campaigns {
		id := c.ID
		if id == "" {
			generated, err := utils.GenerateID()
			if err != nil {
				return insert, errors.Wrap(err, "generating campaign id")
			}
			id = generated
		}

		values := []interface{}{id, c.Name, c.Spend, c.Revenue}
		for _, breakdown := range []interface{}{
			c.DemographicBreakdown,
			c.DevicePerformance,
			c.RegionalPerformance,
			c.WeeklyPerformance,
		} {
			raw, err := json.Marshal(breakdown)
			if err != nil {
				return insert, errors.Wrapf(err, "encoding breakdown of campaign %s", id)
			}
			values = append(values, string(raw))
		}

		insert = insert.Values(values...)
	}

	return insert, nil
}
