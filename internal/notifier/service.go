package notifier

import (
	"context"
	"log/slog"

	"stagedoor/internal/config"
	"stagedoor/internal/mail"
	"stagedoor/internal/messaging"
	"stagedoor/internal/models"
)

// Service consumes booking events off NATS and sends the confirmation
// emails. Running it as its own process keeps SMTP latency and outages out
// of the booking request path.
type Service struct {
	nats     *messaging.NATSClient
	handlers *Handlers
}

func NewService(cfg *config.Config) (*Service, error) {
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	return &Service{
		nats:     natsClient,
		handlers: NewHandlers(mail.NewMailer(cfg.Mail)),
	}, nil
}

func (s *Service) Start() error {
	slog.Info("Starting notifier consumers...")

	_, err := s.nats.SubscribeQueue(models.SubjectBookingCreated, "notifier", s.handlers.HandleBookingCreated)
	if err != nil {
		return err
	}

	slog.Info("Notifier consumers started successfully")
	return nil
}

func (s *Service) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down notifier service...")
	return s.nats.Close()
}
