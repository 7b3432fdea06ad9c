package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/repository"
)

// Postgres error code raised by the bookings_no_active_overlap exclusion
// constraint. It is the store-level conditional-write rejection.
const exclusionViolation = pq.ErrorCode("23P01")

const bookingColumns = `id, start_date, end_date, pickup_time, return_time, status,
	customer_name, customer_email, customer_phone, parking, delivery_distance_km,
	nightly_breakdown, nightly_total, service_fee, early_pickup_fee, late_return_fee,
	parking_fee, delivery_fee, total_price, created_on, updated_on`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	breakdown, err := json.Marshal(b.Price.Nights)
	if err != nil {
		return fmt.Errorf("failed to encode nightly breakdown: %w", err)
	}

	query := `INSERT INTO bookings (id, start_date, end_date, pickup_time, return_time, status,
	          customer_name, customer_email, customer_phone, parking, delivery_distance_km,
	          nightly_breakdown, nightly_total, service_fee, early_pickup_fee, late_return_fee,
	          parking_fee, delivery_fee, total_price, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	          RETURNING created_on, updated_on`
	err = r.db.QueryRowContext(ctx, query,
		b.ID, b.Range.Start, b.Range.End, b.PickupTime, b.ReturnTime, b.Status,
		b.Customer.Name, b.Customer.Email, b.Customer.Phone, b.Parking, nullableInt(b.DeliveryDistanceKm),
		breakdown, b.Price.NightlyTotal, b.Price.ServiceFee, nullableDecimal(b.Price.EarlyPickupFee),
		nullableDecimal(b.Price.LateReturnFee), nullableDecimal(b.Price.ParkingFee),
		nullableDecimal(b.Price.DeliveryFee), b.Price.Total, time.Now(), time.Now(),
	).Scan(&b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == exclusionViolation {
			return repository.ErrRangeConflict
		}
		return err
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings SET status = $1, updated_on = $2 WHERE id = $3 RETURNING ` + bookingColumns
	return scanBooking(r.db.QueryRowContext(ctx, query, status, time.Now(), id))
}

func (r *bookingRepository) ListActiveOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE status IN ('pending', 'confirmed') AND start_date < $2 AND end_date > $1
	          ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) List(ctx context.Context, status string, from, to *time.Time, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`

	var args []interface{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	if from != nil {
		query += fmt.Sprintf(" AND end_date > $%d", argIdx)
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		query += fmt.Sprintf(" AND start_date < $%d", argIdx)
		args = append(args, *to)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, count, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	var (
		breakdown   []byte
		deliveryKm  sql.NullInt64
		earlyPickup decimal.NullDecimal
		lateReturn  decimal.NullDecimal
		parkingFee  decimal.NullDecimal
		deliveryFee decimal.NullDecimal
	)
	err := row.Scan(
		&b.ID, &b.Range.Start, &b.Range.End, &b.PickupTime, &b.ReturnTime, &b.Status,
		&b.Customer.Name, &b.Customer.Email, &b.Customer.Phone, &b.Parking, &deliveryKm,
		&breakdown, &b.Price.NightlyTotal, &b.Price.ServiceFee, &earlyPickup, &lateReturn,
		&parkingFee, &deliveryFee, &b.Price.Total, &b.CreatedOn, &b.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}

	if deliveryKm.Valid {
		km := int(deliveryKm.Int64)
		b.DeliveryDistanceKm = &km
	}
	b.Price.EarlyPickupFee = fromNullDecimal(earlyPickup)
	b.Price.LateReturnFee = fromNullDecimal(lateReturn)
	b.Price.ParkingFee = fromNullDecimal(parkingFee)
	b.Price.DeliveryFee = fromNullDecimal(deliveryFee)

	if err := json.Unmarshal(breakdown, &b.Price.Nights); err != nil {
		return nil, fmt.Errorf("failed to decode nightly breakdown: %w", err)
	}
	b.Range.Start = b.Range.Start.UTC()
	b.Range.End = b.Range.End.UTC()
	return b, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullableDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}

func fromNullDecimal(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	d := v.Decimal
	return &d
}
