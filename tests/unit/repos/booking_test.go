package repos

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/repository"
	"campervan-backend/internal/repository/postgres"
)

var bookingCols = []string{
	"id", "start_date", "end_date", "pickup_time", "return_time", "status",
	"customer_name", "customer_email", "customer_phone", "parking", "delivery_distance_km",
	"nightly_breakdown", "nightly_total", "service_fee", "early_pickup_fee", "late_return_fee",
	"parking_fee", "delivery_fee", "total_price", "created_on", "updated_on",
}

func testBooking(t *testing.T) *domain.Booking {
	t.Helper()
	rng, err := domain.NewDateRange("2025-10-09", "2025-10-12")
	require.NoError(t, err)
	return &domain.Booking{
		ID:         "bk-1",
		Range:      rng,
		PickupTime: "14:00",
		ReturnTime: "15:00",
		Status:     domain.BookingStatusPending,
		Customer:   domain.Customer{Name: "Anna Jensen", Email: "anna@example.com", Phone: "+4512345678"},
		Price: domain.PriceBreakdown{
			Nights: []domain.NightlyRate{
				{Night: rng.Start, Rate: decimal.NewFromInt(100)},
				{Night: rng.Start.AddDate(0, 0, 1), Rate: decimal.NewFromInt(100)},
				{Night: rng.Start.AddDate(0, 0, 2), Rate: decimal.NewFromInt(120)},
			},
			NightlyTotal: decimal.NewFromInt(320),
			ServiceFee:   decimal.NewFromInt(50),
			Total:        decimal.NewFromInt(370),
		},
	}
}

func bookingRow(b *domain.Booking, now time.Time) *sqlmock.Rows {
	breakdown := `[{"night":"2025-10-09","rate":"100"},{"night":"2025-10-10","rate":"100"},{"night":"2025-10-11","rate":"120"}]`
	return sqlmock.NewRows(bookingCols).AddRow(
		b.ID, b.Range.Start, b.Range.End, b.PickupTime, b.ReturnTime, string(b.Status),
		b.Customer.Name, b.Customer.Email, b.Customer.Phone, b.Parking, nil,
		[]byte(breakdown), "320", "50", nil, nil,
		nil, nil, "370", now, now,
	)
}

func TestBookingRepository_CreateIfAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		b := testBooking(t)
		now := time.Now()

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(
				b.ID, b.Range.Start, b.Range.End, b.PickupTime, b.ReturnTime, string(b.Status),
				b.Customer.Name, b.Customer.Email, b.Customer.Phone, b.Parking, sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_on", "updated_on"}).AddRow(now, now))

		err := repo.CreateIfAvailable(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, now, b.CreatedOn)
	})

	t.Run("Exclusion violation maps to range conflict", func(t *testing.T) {
		b := testBooking(t)

		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_active_overlap"})

		err := repo.CreateIfAvailable(ctx, b)
		assert.ErrorIs(t, err, repository.ErrRangeConflict)
	})

	t.Run("Other database errors pass through", func(t *testing.T) {
		b := testBooking(t)

		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateIfAvailable(ctx, b)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrRangeConflict)
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		want := testBooking(t)
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs("bk-1").
			WillReturnRows(bookingRow(want, time.Now()))

		b, err := repo.GetByID(ctx, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, want.ID, b.ID)
		assert.Equal(t, want.Range, b.Range)
		assert.Equal(t, want.Customer, b.Customer)
		assert.True(t, b.Price.Total.Equal(decimal.NewFromInt(370)))
		require.Len(t, b.Price.Nights, 3)
		assert.True(t, b.Price.Nights[2].Rate.Equal(decimal.NewFromInt(120)))
		assert.Nil(t, b.Price.ParkingFee)
		assert.Nil(t, b.DeliveryDistanceKm)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		b, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, b)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		want := testBooking(t)
		want.Status = domain.BookingStatusConfirmed
		mock.ExpectQuery("UPDATE bookings SET status").
			WithArgs(string(domain.BookingStatusConfirmed), sqlmock.AnyArg(), "bk-1").
			WillReturnRows(bookingRow(want, time.Now()))

		b, err := repo.UpdateStatus(ctx, "bk-1", domain.BookingStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	})
}

func TestBookingRepository_ListActiveOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	rng, err := domain.NewDateRange("2025-10-01", "2025-11-01")
	require.NoError(t, err)

	t.Run("Returns overlapping active bookings", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings").
			WithArgs(rng.Start, rng.End).
			WillReturnRows(bookingRow(testBooking(t), time.Now()))

		bookings, err := repo.ListActiveOverlapping(ctx, rng)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "bk-1", bookings[0].ID)
	})

	t.Run("Empty result", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings").
			WithArgs(rng.Start, rng.End).
			WillReturnRows(sqlmock.NewRows(bookingCols))

		bookings, err := repo.ListActiveOverlapping(ctx, rng)
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})
}

func TestBookingRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Filtered by status with pagination", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs("pending").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM bookings").
			WithArgs("pending", int32(20), int32(0)).
			WillReturnRows(bookingRow(testBooking(t), time.Now()))

		bookings, total, err := repo.List(ctx, "pending", nil, nil, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, bookings, 1)
	})
}
