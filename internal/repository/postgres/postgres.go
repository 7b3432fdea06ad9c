package postgres

import (
	"database/sql"

	"campervan-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookingRepository
	repository.PricingRuleRepository
	repository.BlockedPeriodRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		BookingRepository:       NewBookingRepository(db),
		PricingRuleRepository:   NewPricingRuleRepository(db),
		BlockedPeriodRepository: NewBlockedPeriodRepository(db),
	}
}
