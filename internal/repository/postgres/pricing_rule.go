package postgres

import (
	"context"
	"database/sql"
	"time"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/repository"
)

type pricingRuleRepository struct {
	db *sql.DB
}

func NewPricingRuleRepository(db *sql.DB) repository.PricingRuleRepository {
	return &pricingRuleRepository{db: db}
}

func (r *pricingRuleRepository) Create(ctx context.Context, rule *domain.PricingRule) error {
	query := `INSERT INTO pricing_rules (id, start_date, end_date, nightly_rate, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_on`
	return r.db.QueryRowContext(ctx, query,
		rule.ID, rule.Range.Start, rule.Range.End, rule.NightlyRate, rule.Notes, time.Now(),
	).Scan(&rule.CreatedOn)
}

func (r *pricingRuleRepository) ListOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.PricingRule, error) {
	query := `SELECT id, start_date, end_date, nightly_rate, notes, created_on FROM pricing_rules
	          WHERE start_date < $2 AND end_date > $1
	          ORDER BY created_on ASC, id ASC`
	return r.queryRules(ctx, query, rng.Start, rng.End)
}

func (r *pricingRuleRepository) List(ctx context.Context) ([]domain.PricingRule, error) {
	query := `SELECT id, start_date, end_date, nightly_rate, notes, created_on FROM pricing_rules
	          ORDER BY created_on ASC, id ASC`
	return r.queryRules(ctx, query)
}

func (r *pricingRuleRepository) queryRules(ctx context.Context, query string, args ...interface{}) ([]domain.PricingRule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.PricingRule
	for rows.Next() {
		var rule domain.PricingRule
		if err := rows.Scan(&rule.ID, &rule.Range.Start, &rule.Range.End, &rule.NightlyRate, &rule.Notes, &rule.CreatedOn); err != nil {
			return nil, err
		}
		rule.Range.Start = rule.Range.Start.UTC()
		rule.Range.End = rule.Range.End.UTC()
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
