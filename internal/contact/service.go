package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hacksolana/hks/internal/metrics"
	"github.com/hacksolana/hks/internal/model"
)

// Inbox stores received contact messages.
type Inbox interface {
	SaveContactMessage(ctx context.Context, msg model.ContactMessage) error
}

// Service receives contact form submissions on the server.
type Service struct {
	inbox   Inbox
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithInbox stores every accepted message in inbox.
func WithInbox(inbox Inbox) ServiceOption {
	return func(s *Service) {
		s.inbox = inbox
	}
}

// WithMetrics counts accepted messages.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets the logger. It should be a secure logger so that the
// sender's e-mail address is masked.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a Service. Without WithInbox, messages are only logged.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Receive validates msg and records it.
//
// An incomplete message returns the joined model errors (ErrEmptyName and
// friends) and is not counted. Nothing is sent to any external party.
func (s *Service) Receive(ctx context.Context, msg model.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	s.logger.Info("contact message received",
		"name_length", len(msg.Name),
		"email", msg.Email,
		"message", msg.Message,
		"length", len(msg.Message),
	)
	s.metrics.ContactReceived()

	if s.inbox == nil {
		return nil
	}
	if err := s.inbox.SaveContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	return nil
}
