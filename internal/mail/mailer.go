// Package mail sends transactional email over SMTP: booking confirmations
// from the notifier and one-time codes from the password-reset flow.
package mail

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/domodwyer/mailyak/v3"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type Mailer struct {
	cfg Config
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	mail := mailyak.New(
		fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port),
		smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host),
	)

	mail.From(m.cfg.From)
	mail.FromName(m.cfg.FromName)
	mail.To(to)
	mail.Subject(subject)
	mail.HTML().Set(htmlBody)

	if err := mail.Send(); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// SendBookingConfirmation emails the booked seat, date and price to the
// contact that made the booking.
func (m *Mailer) SendBookingConfirmation(to, name, seatCode, bookingDate string, price int) error {
	body := fmt.Sprintf(bookingConfirmationHTML, name, seatCode, bookingDate, price)
	return m.send(to, "Your Seat Booking Confirmation", body)
}

// SendPasswordResetOTP emails a one-time code for the password-reset flow.
func (m *Mailer) SendPasswordResetOTP(to, code string, ttl time.Duration) error {
	body := fmt.Sprintf(passwordResetHTML, code, int(ttl.Minutes()))
	return m.send(to, "Your Password Reset Code", body)
}

const bookingConfirmationHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <style>
    body { margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #F5F6F5; color: #1F2A44; }
    .container { max-width: 600px; margin: 20px auto; background-color: #FFFFFF; border-radius: 8px; overflow: hidden; }
    .content { padding: 30px; }
    .details { background-color: #F5F6F5; padding: 15px; border-radius: 6px; margin: 20px 0; }
    .footer { background-color: #1F2A44; color: #FFFFFF; padding: 20px; text-align: center; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="content">
      <h1>Your Booking Confirmation</h1>
      <p>Dear %s,</p>
      <p>Thank you for choosing our seat booking service. We are pleased to confirm your booking for the following details:</p>
      <div class="details">
        <p><strong>Seat:</strong> %s</p>
        <p><strong>Date:</strong> %s</p>
        <p><strong>Total Price:</strong> &#8377;%d</p>
      </div>
      <p>We look forward to welcoming you. If you have any questions or need further assistance, please don't hesitate to contact us.</p>
    </div>
    <div class="footer">
      <p><strong>Seat Booking Co.</strong></p>
    </div>
  </div>
</body>
</html>`

const passwordResetHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <style>
    body { margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #F5F6F5; color: #1F2A44; }
    .container { max-width: 600px; margin: 20px auto; background-color: #FFFFFF; border-radius: 8px; padding: 30px; }
    .code { font-size: 32px; letter-spacing: 8px; font-weight: bold; text-align: center; margin: 20px 0; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Password Reset</h1>
    <p>Use the following code to reset your password:</p>
    <div class="code">%s</div>
    <p>The code expires in %d minutes. If you did not request a reset, you can ignore this email.</p>
  </div>
</body>
</html>`
