package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/store"
)

// SendInfo describes a delivered broadcast.
type SendInfo struct {
	MessageID string   `json:"messageId"`
	Accepted  []string `json:"accepted"`
}

// SubscriberEmail is the public projection of a subscriber.
type SubscriberEmail struct {
	Email string `json:"email"`
}

// NewsletterService manages newsletter subscriptions and broadcasts.
type NewsletterService interface {
	// Subscribe adds email to the list. Fails with ErrEmailExists on a repeat.
	Subscribe(ctx context.Context, email string) (*domain.Subscriber, error)

	// Broadcast sends one message addressed to every subscriber.
	Broadcast(ctx context.Context, subject, message string) (*SendInfo, error)

	// ListSubscriberEmails returns every subscribed address.
	ListSubscriberEmails(ctx context.Context) ([]SubscriberEmail, error)
}

type newsletterServiceImpl struct {
	subscribers store.SubscriberStore
	mailer      Mailer
	logger      *slog.Logger
}

// NewNewsletterService creates a NewsletterService.
func NewNewsletterService(
	subscribers store.SubscriberStore,
	mailer Mailer,
	logger *slog.Logger,
) (NewsletterService, error) {
	if subscribers == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "subscribers store cannot be nil"}
	}
	if mailer == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "mailer cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &newsletterServiceImpl{
		subscribers: subscribers,
		mailer:      mailer,
		logger:      logger.With(slog.String("component", "newsletter_service")),
	}, nil
}

// Subscribe implements NewsletterService. The pre-check gives the common case
// a clean answer; the unique index catches concurrent duplicates.
func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sub, err := domain.NewSubscriber(email)
	if err != nil {
		return nil, err
	}

	_, err = s.subscribers.GetByEmail(ctx, sub.Email)
	switch {
	case err == nil:
		return nil, ErrEmailExists
	case !errors.Is(err, store.ErrNotFound):
		return nil, NewServiceError("subscribe", "failed to check subscription", err)
	}

	if err := s.subscribers.Create(ctx, sub); err != nil {
		return nil, NewServiceError("subscribe", "failed to save subscriber", err)
	}

	log.Info("newsletter subscription added", slog.String("subscriber_id", sub.ID.String()))
	return sub, nil
}

// Broadcast implements NewsletterService.
func (s *newsletterServiceImpl) Broadcast(ctx context.Context, subject, message string) (*SendInfo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(subject) == "" {
		return nil, domain.NewValidationError("subject", "is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, domain.NewValidationError("message", "is required")
	}

	subs, err := s.subscribers.List(ctx)
	if err != nil {
		return nil, NewServiceError("broadcast", "failed to list subscribers", err)
	}
	if len(subs) == 0 {
		return nil, ErrNoSubscribers
	}

	recipients := make([]string, len(subs))
	for i, sub := range subs {
		recipients[i] = sub.Email
	}

	messageID, err := s.mailer.Send(ctx, recipients, subject, message)
	if err != nil {
		log.Error("newsletter broadcast failed",
			slog.String("error", err.Error()),
			slog.Int("recipients", len(recipients)))
		return nil, &ServiceError{Operation: "broadcast", Message: "failed to send newsletter", Err: errors.Join(ErrUpstream, err)}
	}

	log.Info("newsletter broadcast sent",
		slog.String("message_id", messageID),
		slog.Int("recipients", len(recipients)))
	return &SendInfo{MessageID: messageID, Accepted: recipients}, nil
}

// ListSubscriberEmails implements NewsletterService.
func (s *newsletterServiceImpl) ListSubscriberEmails(ctx context.Context) ([]SubscriberEmail, error) {
	subs, err := s.subscribers.List(ctx)
	if err != nil {
		return nil, NewServiceError("list_subscribers", "failed to list subscribers", err)
	}
	if len(subs) == 0 {
		return nil, ErrSubscribersNotFound
	}

	emails := make([]SubscriberEmail, len(subs))
	for i, sub := range subs {
		emails[i] = SubscriberEmail{Email: sub.Email}
	}
	return emails, nil
}
