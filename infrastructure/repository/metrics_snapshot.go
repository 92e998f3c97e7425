package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

const (
	metricsTable = "metrics"
)

var snapshotColumns = []string{
	"id",
	"recorded_at",
	"total_marketing_spend",
	"influencer_spend",
	"paid_ads_spend",
	"net_revenue",
	"revenue_spent_on_ads",
	"customer_lifetime_value",
	"customer_acquisition_cost",
	"tickets",
	"revenue",
	"operational_expenses",
}

type MetricsSnapshotRepository interface {
	GetLatest(ctx context.Context) (*domain.MetricsSnapshot, error)
	Insert(ctx context.Context, snapshot *domain.MetricsSnapshot) error
}

type metricsSnapshotRepository struct {
	conn postgres.Conn
}

func NewMetricsSnapshotRepository(conn postgres.Conn) MetricsSnapshotRepository {
	return &metricsSnapshotRepository{
		conn: conn,
	}
}

func latestSnapshotQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(append(append([]string{}, snapshotColumns...), "created_at")...).
		From(metricsTable).
		OrderBy("recorded_at DESC", "created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)
}

func insertSnapshotQuery(snapshot *domain.MetricsSnapshot) squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert(metricsTable).
		Columns(snapshotColumns...).
		Values(
			snapshot.ID,
			snapshot.Timestamp,
			snapshot.TotalMarketingSpend,
			snapshot.InfluencerSpend,
			snapshot.PaidAdsSpend,
			snapshot.NetRevenue,
			snapshot.RevenueSpentOnAds,
			snapshot.CustomerLifetimeValue,
			snapshot.CustomerAcquisitionCost,
			snapshot.Tickets,
			snapshot.Revenue,
			snapshot.OperationalExpenses,
		).
		PlaceholderFormat(squirrel.Dollar)
}

// GetLatest retorna o snapshot mais recente. Sem linhas, devolve um snapshot vazio
// (todos os campos nil) em vez de erro.
func (r *metricsSnapshotRepository) GetLatest(ctx context.Context) (*domain.MetricsSnapshot, error) {
	query, args, err := latestSnapshotQuery().ToSql()
	if err != nil {
		return nil, newStoreError("get latest snapshot", err)
	}

	snapshot := &domain.MetricsSnapshot{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.ID,
		&snapshot.Timestamp,
		&snapshot.TotalMarketingSpend,
		&snapshot.InfluencerSpend,
		&snapshot.PaidAdsSpend,
		&snapshot.NetRevenue,
		&snapshot.RevenueSpentOnAds,
		&snapshot.CustomerLifetimeValue,
		&snapshot.CustomerAcquisitionCost,
		&snapshot.Tickets,
		&snapshot.Revenue,
		&snapshot.OperationalExpenses,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.MetricsSnapshot{}, nil
		}
		return nil, newStoreError("get latest snapshot", err)
	}

	return snapshot, nil
}

// Insert adiciona um snapshot novo; a tabela é append-only
func (r *metricsSnapshotRepository) Insert(ctx context.Context, snapshot *domain.MetricsSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return newStoreError("insert snapshot", err)
		}
		snapshot.ID = id
	}

	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = time.Now().UTC()
	}

	query, args, err := insertSnapshotQuery(snapshot).ToSql()
	if err != nil {
		return newStoreError("insert snapshot", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return newStoreError("insert snapshot", err)
	}

	return nil
}
