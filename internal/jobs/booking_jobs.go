package jobs

import (
	"context"
	"time"

	"campervan-backend/internal/logger"
)

// CompleteFinishedBookings moves confirmed bookings whose end date has passed
// into the terminal completed status
func (jr *JobRunner) CompleteFinishedBookings() {
	jr.runWithRecovery("CompleteFinishedBookings", func() {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET status = 'completed',
			    updated_on = NOW()
			WHERE status = 'confirmed'
			  AND end_date <= $1
			RETURNING id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to complete finished bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id string
			var endDate time.Time
			if err := rows.Scan(&id, &endDate); err != nil {
				logger.Error("Failed to scan completed booking", "error", err)
				continue
			}
			logger.Debug("Marked booking as completed", "booking_id", id, "end_date", endDate.Format("2006-01-02"))
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed bookings", "error", err)
			return
		}

		logger.Info("Marked bookings as completed", "count", count)
	})
}

// SendPickupReminders emails customers whose confirmed booking starts tomorrow
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

		query := `
			SELECT id, customer_name, customer_email, start_date, pickup_time
			FROM bookings
			WHERE status = 'confirmed'
			  AND start_date = $1
		`

		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to load bookings for pickup reminders", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, name, email, pickupTime string
			var startDate time.Time
			if err := rows.Scan(&id, &name, &email, &startDate, &pickupTime); err != nil {
				logger.Error("Failed to scan booking for reminder", "error", err)
				continue
			}

			if err := jr.services.Email.SendPickupReminder(ctx, email, name, startDate.Format("2006-01-02"), pickupTime); err != nil {
				logger.Error("Failed to send pickup reminder", "booking_id", id, "error", err)
				continue
			}
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating reminder bookings", "error", err)
			return
		}

		logger.Info("Sent pickup reminders", "count", count)
	})
}
