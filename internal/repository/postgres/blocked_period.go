package postgres

import (
	"context"
	"database/sql"
	"time"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/repository"
)

type blockedPeriodRepository struct {
	db *sql.DB
}

func NewBlockedPeriodRepository(db *sql.DB) repository.BlockedPeriodRepository {
	return &blockedPeriodRepository{db: db}
}

func (r *blockedPeriodRepository) Create(ctx context.Context, period *domain.BlockedPeriod) error {
	query := `INSERT INTO blocked_periods (id, start_date, end_date, reason, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_on`
	return r.db.QueryRowContext(ctx, query,
		period.ID, period.Range.Start, period.Range.End, period.Reason, period.Notes, time.Now(),
	).Scan(&period.CreatedOn)
}

func (r *blockedPeriodRepository) ListOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.BlockedPeriod, error) {
	query := `SELECT id, start_date, end_date, reason, notes, created_on FROM blocked_periods
	          WHERE start_date < $2 AND end_date > $1
	          ORDER BY start_date`
	return r.queryPeriods(ctx, query, rng.Start, rng.End)
}

func (r *blockedPeriodRepository) List(ctx context.Context) ([]domain.BlockedPeriod, error) {
	query := `SELECT id, start_date, end_date, reason, notes, created_on FROM blocked_periods
	          ORDER BY start_date`
	return r.queryPeriods(ctx, query)
}

func (r *blockedPeriodRepository) queryPeriods(ctx context.Context, query string, args ...interface{}) ([]domain.BlockedPeriod, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []domain.BlockedPeriod
	for rows.Next() {
		var p domain.BlockedPeriod
		if err := rows.Scan(&p.ID, &p.Range.Start, &p.Range.End, &p.Reason, &p.Notes, &p.CreatedOn); err != nil {
			return nil, err
		}
		p.Range.Start = p.Range.Start.UTC()
		p.Range.End = p.Range.End.UTC()
		periods = append(periods, p)
	}
	return periods, rows.Err()
}
