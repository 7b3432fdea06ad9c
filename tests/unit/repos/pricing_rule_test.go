package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/repository/postgres"
)

var ruleCols = []string{"id", "start_date", "end_date", "nightly_rate", "notes", "created_on"}

func TestPricingRuleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPricingRuleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rng, err := domain.NewDateRange("2025-10-01", "2025-11-01")
		require.NoError(t, err)
		rule := &domain.PricingRule{
			ID:          "rule-1",
			Range:       rng,
			NightlyRate: decimal.NewFromInt(100),
			Notes:       "autumn",
		}
		now := time.Now()

		mock.ExpectQuery("INSERT INTO pricing_rules").
			WithArgs(rule.ID, rng.Start, rng.End, sqlmock.AnyArg(), rule.Notes, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_on"}).AddRow(now))

		err = repo.Create(ctx, rule)
		assert.NoError(t, err)
		assert.Equal(t, now, rule.CreatedOn)
	})
}

func TestPricingRuleRepository_ListOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPricingRuleRepository(db)
	ctx := context.Background()

	rng, err := domain.NewDateRange("2025-10-09", "2025-10-12")
	require.NoError(t, err)

	t.Run("Ordered by creation, oldest first", func(t *testing.T) {
		older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		newer := older.Add(time.Hour)
		oct1 := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
		nov1 := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT (.+) FROM pricing_rules").
			WithArgs(rng.Start, rng.End).
			WillReturnRows(sqlmock.NewRows(ruleCols).
				AddRow("rule-1", oct1, nov1, "100", "", older).
				AddRow("rule-2", oct1, nov1, "90", "sale", newer))

		rules, err := repo.ListOverlapping(ctx, rng)
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, "rule-1", rules[0].ID)
		assert.Equal(t, "rule-2", rules[1].ID)
		assert.True(t, rules[1].NightlyRate.Equal(decimal.NewFromInt(90)))
	})

	t.Run("No covering rules", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pricing_rules").
			WithArgs(rng.Start, rng.End).
			WillReturnRows(sqlmock.NewRows(ruleCols))

		rules, err := repo.ListOverlapping(ctx, rng)
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}
