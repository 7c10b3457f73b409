package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/expert-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

//go:generate mockgen -source=status_snapshot.go -destination=mocks/status_snapshot.go -package=mocks

const (
	statusSnapshotsTable = "expert_status_snapshots ss"

	// DefaultHistoryLimit é a quantidade de dias devolvida quando nenhum limite é informado
	DefaultHistoryLimit = 90
)

type StatusSnapshotRepository interface {
	// SaveOrUpdate grava os snapshots de uma execução; um snapshot por cliente por dia
	SaveOrUpdate(ctx context.Context, snapshots []*domain.StatusSnapshot) error
	ListByClient(ctx context.Context, clientSlug string, limit int) ([]*domain.StatusSnapshot, error)
	GetLatestByClient(ctx context.Context, clientSlug string) (*domain.StatusSnapshot, error)
}

type statusSnapshotRepository struct {
	conn postgres.Conn
}

func NewStatusSnapshotRepository(conn postgres.Conn) StatusSnapshotRepository {
	return &statusSnapshotRepository{
		conn: conn,
	}
}

func (r *statusSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshots []*domain.StatusSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("expert_status_snapshots").
		Columns("run_id", "client_slug", "client_name", "date", "classification", "trend", "roas7", "return7", "cost7")

	for _, s := range snapshots {
		query = query.Values(
			s.RunID,
			s.ClientSlug,
			s.ClientName,
			s.Date.String(),
			string(s.Classification),
			string(s.Trend),
			s.ROAS7,
			s.Return7,
			s.Cost7,
		)
	}

	sqlQuery, args, err := query.
		Suffix(`
			ON CONFLICT (client_slug, date) DO UPDATE SET
				run_id = EXCLUDED.run_id,
				client_name = EXCLUDED.client_name,
				classification = EXCLUDED.classification,
				trend = EXCLUDED.trend,
				roas7 = EXCLUDED.roas7,
				return7 = EXCLUDED.return7,
				cost7 = EXCLUDED.cost7,
				created_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
		return nil
	})
}

func (r *statusSnapshotRepository) ListByClient(ctx context.Context, clientSlug string, limit int) ([]*domain.StatusSnapshot, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query, args, err := selectSnapshots().
		Where(squirrel.Eq{"ss.client_slug": clientSlug}).
		OrderBy("ss.date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.StatusSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *statusSnapshotRepository) GetLatestByClient(ctx context.Context, clientSlug string) (*domain.StatusSnapshot, error) {
	query, args, err := selectSnapshots().
		Where(squirrel.Eq{"ss.client_slug": clientSlug}).
		OrderBy("ss.date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func selectSnapshots() squirrel.SelectBuilder {
	return squirrel.
		Select("ss.id, ss.run_id, ss.client_slug, ss.client_name, ss.date, ss.classification, ss.trend, ss.roas7, ss.return7, ss.cost7, ss.created_at").
		From(statusSnapshotsTable)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*domain.StatusSnapshot, error) {
	snapshot := &domain.StatusSnapshot{}
	var (
		date           time.Time
		classification string
		trend          string
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.RunID,
		&snapshot.ClientSlug,
		&snapshot.ClientName,
		&date,
		&classification,
		&trend,
		&snapshot.ROAS7,
		&snapshot.Return7,
		&snapshot.Cost7,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Date = domain.DateOf(date)
	snapshot.Classification = domain.Classification(classification)
	snapshot.Trend = domain.Trend(trend)

	return snapshot, nil
}
