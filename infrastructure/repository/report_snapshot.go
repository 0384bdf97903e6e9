// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/shop-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

//go:generate mockgen -source=report_snapshot.go -destination=mocks/mock_report_snapshot.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	reportSnapshotsTable = "report_snapshots rs"
)

var reportSnapshotColumns = []string{
	"rs.id",
	"rs.snapshot_date",
	"rs.granularity",
	"rs.grand_total",
	"rs.buckets",
	"rs.top_customers",
	"rs.top_products",
	"rs.created_at",
	"rs.updated_at",
}

type ReportSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.ReportSnapshot) error
	GetLatest(ctx context.Context) (*domain.ReportSnapshot, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.ReportSnapshot, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type reportSnapshotRepository struct {
	conn postgres.Queryer
}

func NewReportSnapshotRepository(conn postgres.Queryer) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.ReportSnapshot) error {
	sqlQuery, args, err := buildUpsertSnapshot(snapshot)
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetLatest retorna o snapshot mais recente ou nil quando não há nenhum
func (r *reportSnapshotRepository) GetLatest(ctx context.Context) (*domain.ReportSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select(reportSnapshotColumns...).
		From(reportSnapshotsTable).
		OrderBy("rs.snapshot_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *reportSnapshotRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.ReportSnapshot, error) {
	sqlQuery, args, err := buildSnapshotRangeQuery(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.ReportSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, *snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *reportSnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	sqlQuery, args, err := squirrel.
		Delete("report_snapshots").
		Where(squirrel.Lt{"snapshot_date": cutoff.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return result.RowsAffected()
}

func buildUpsertSnapshot(snapshot *domain.ReportSnapshot) (string, []any, error) {
	buckets, err := json.Marshal(snapshot.Aggregate.Buckets)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar buckets para JSON: %w", err)
	}
	topCustomers, err := json.Marshal(snapshot.TopCustomers)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar top clientes para JSON: %w", err)
	}
	topProducts, err := json.Marshal(snapshot.TopProducts)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar top produtos para JSON: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("report_snapshots").
		Columns("snapshot_date", "granularity", "grand_total", "buckets", "top_customers", "top_products").
		Values(
			snapshot.Date.Format(time.DateOnly),
			string(snapshot.Aggregate.Granularity),
			snapshot.Aggregate.GrandTotal.StringFixed(2),
			buckets,
			topCustomers,
			topProducts,
		).
		Suffix(`
			ON CONFLICT (snapshot_date) DO UPDATE SET
				granularity = EXCLUDED.granularity,
				grand_total = EXCLUDED.grand_total,
				buckets = EXCLUDED.buckets,
				top_customers = EXCLUDED.top_customers,
				top_products = EXCLUDED.top_products,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return sqlQuery, args, nil
}

func buildSnapshotRangeQuery(start, end time.Time) (string, []any, error) {
	query := squirrel.
		Select(reportSnapshotColumns...).
		From(reportSnapshotsTable).
		OrderBy("rs.snapshot_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !start.IsZero() {
		query = query.Where(squirrel.GtOrEq{"rs.snapshot_date": start.Format(time.DateOnly)})
	}
	if !end.IsZero() {
		query = query.Where(squirrel.LtOrEq{"rs.snapshot_date": end.Format(time.DateOnly)})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}
	return sqlQuery, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*domain.ReportSnapshot, error) {
	var (
		snapshot     domain.ReportSnapshot
		granularity  string
		grandTotal   decimal.Decimal
		buckets      []byte
		topCustomers []byte
		topProducts  []byte
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Date,
		&granularity,
		&grandTotal,
		&buckets,
		&topCustomers,
		&topProducts,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeSnapshot(&snapshot, granularity, grandTotal, buckets, topCustomers, topProducts); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func decodeSnapshot(snapshot *domain.ReportSnapshot, granularity string, grandTotal decimal.Decimal, buckets, topCustomers, topProducts []byte) error {
	snapshot.Aggregate = domain.SalesAggregate{
		Granularity: domain.Granularity(granularity),
		RangeStart:  snapshot.Date,
		RangeEnd:    snapshot.Date.AddDate(0, 0, 1).Add(-time.Nanosecond),
		Buckets:     []domain.Bucket{},
		GrandTotal:  grandTotal,
	}

	if len(buckets) > 0 {
		if err := json.Unmarshal(buckets, &snapshot.Aggregate.Buckets); err != nil {
			return fmt.Errorf("erro ao deserializar buckets: %w", err)
		}
	}
	if len(topCustomers) > 0 {
		if err := json.Unmarshal(topCustomers, &snapshot.TopCustomers); err != nil {
			return fmt.Errorf("erro ao deserializar top clientes: %w", err)
		}
	}
	if len(topProducts) > 0 {
		if err := json.Unmarshal(topProducts, &snapshot.TopProducts); err != nil {
			return fmt.Errorf("erro ao deserializar top produtos: %w", err)
		}
	}

	return nil
}
