package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

const (
	dailyMetricsTable = "daily_metrics"
)

type DailyMetricRepository interface {
	ListAll(ctx context.Context) ([]*domain.DailyMetric, error)
	Upsert(ctx context.Context, metric *domain.DailyMetric) error
	UpsertMany(ctx context.Context, metrics []*domain.DailyMetric) error
}

type dailyMetricRepository struct {
	conn postgres.Conn
}

func NewDailyMetricRepository(conn postgres.Conn) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

func listDailyMetricsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"date",
			"gross_revenue",
			"net_revenue",
			"daily_guests",
			"accumulated_guests",
			"accumulated_net",
			"updated_at",
		).
		From(dailyMetricsTable).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// upsertDailyMetricQuery sobrescreve todas as colunas que não são chave quando a data já existe
func upsertDailyMetricQuery(metric *domain.DailyMetric) squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert(dailyMetricsTable).
		Columns(
			"date",
			"gross_revenue",
			"net_revenue",
			"daily_guests",
			"accumulated_guests",
			"accumulated_net",
		).
		Values(
			metric.Date.Format(time.DateOnly),
			metric.GrossRevenue,
			metric.NetRevenue,
			metric.DailyGuests,
			metric.AccumulatedGuests,
			metric.AccumulatedNet,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				gross_revenue = EXCLUDED.gross_revenue,
				net_revenue = EXCLUDED.net_revenue,
				daily_guests = EXCLUDED.daily_guests,
				accumulated_guests = EXCLUDED.accumulated_guests,
				accumulated_net = EXCLUDED.accumulated_net,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *dailyMetricRepository) ListAll(ctx context.Context) ([]*domain.DailyMetric, error) {
	query, args, err := listDailyMetricsQuery().ToSql()
	if err != nil {
		return nil, newStoreError("list daily metrics", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, newStoreError("list daily metrics", err)
	}
	defer rows.Close()

	metrics := make([]*domain.DailyMetric, 0)
	for rows.Next() {
		metric := &domain.DailyMetric{}
		err := rows.Scan(
			&metric.Date.Time,
			&metric.GrossRevenue,
			&metric.NetRevenue,
			&metric.DailyGuests,
			&metric.AccumulatedGuests,
			&metric.AccumulatedNet,
			&metric.UpdatedAt,
		)
		if err != nil {
			return nil, newStoreError("scan daily metric", err)
		}
		metrics = append(metrics, metric)
	}

	if err := rows.Err(); err != nil {
		return nil, newStoreError("list daily metrics", err)
	}

	return metrics, nil
}

func (r *dailyMetricRepository) Upsert(ctx context.Context, metric *domain.DailyMetric) error {
	return upsertDailyMetric(ctx, r.conn, metric)
}

// UpsertMany aplica o lote inteiro numa transação: ou todas as datas são gravadas ou nenhuma
func (r *dailyMetricRepository) UpsertMany(ctx context.Context, metrics []*domain.DailyMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	err := r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, metric := range metrics {
			if err := upsertDailyMetric(ctx, q, metric); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if IsStoreError(err) {
			return err
		}
		return newStoreError("upsert daily metrics", err)
	}

	return nil
}

func upsertDailyMetric(ctx context.Context, q postgres.Queryer, metric *domain.DailyMetric) error {
	query, args, err := upsertDailyMetricQuery(metric).ToSql()
	if err != nil {
		return newStoreError("upsert daily metric", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return newStoreError("upsert daily metric", err)
	}

	return nil
}
