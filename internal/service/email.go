package service

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"campervan-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendBookingReceived(ctx context.Context, b *domain.Booking) error {
	subject := "We received your booking request"
	body := fmt.Sprintf(
		"Hello %s,\n\nThank you for your booking request.\n\nStay: %s (%d nights)\nPickup: %s, Return: %s\nTotal price: EUR %s\n\nWe will confirm your booking shortly.\n\nBest regards,\nThe Campervan Team",
		b.Customer.Name, b.Range, b.Range.Nights(), b.PickupTime, b.ReturnTime, b.Price.Total,
	)
	return s.send(b.Customer.Email, subject, body)
}

func (s *emailService) SendBookingStatusUpdate(ctx context.Context, b *domain.Booking) error {
	subject := fmt.Sprintf("Your booking is %s", b.Status)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking for %s is now %s.\n\nBest regards,\nThe Campervan Team",
		b.Customer.Name, b.Range, b.Status,
	)
	return s.send(b.Customer.Email, subject, body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, email, name, startDate, pickupTime string) error {
	subject := "Your camper van pickup is tomorrow"
	body := fmt.Sprintf(
		"Hello %s,\n\nA quick reminder that your rental starts on %s at %s.\n\nSee you soon,\nThe Campervan Team",
		name, startDate, pickupTime,
	)
	return s.send(email, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}
