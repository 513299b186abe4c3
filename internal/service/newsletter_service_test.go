package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/mocks"
	"github.com/ftfltech/careers-api/internal/service"
	"github.com/ftfltech/careers-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNewsletterFixture(t *testing.T) (*mocks.MockSubscriberStore, *mocks.MockMailer, service.NewsletterService) {
	t.Helper()
	subs := &mocks.MockSubscriberStore{}
	mailer := &mocks.MockMailer{}
	svc, err := service.NewNewsletterService(subs, mailer, testLogger())
	require.NoError(t, err)
	return subs, mailer, svc
}

func TestNewNewsletterService(t *testing.T) {
	_, err := service.NewNewsletterService(nil, &mocks.MockMailer{}, nil)
	assert.Error(t, err)
	_, err = service.NewNewsletterService(&mocks.MockSubscriberStore{}, nil, nil)
	assert.Error(t, err)
}

func TestNewsletterService_SubscribeTwice(t *testing.T) {
	subs, _, svc := newNewsletterFixture(t)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "reader@example.com")
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, "reader@example.com")
	assert.ErrorIs(t, err, service.ErrEmailExists)

	assert.Len(t, subs.Subscribers, 1)
}

func TestNewsletterService_SubscribeRace(t *testing.T) {
	subs, _, svc := newNewsletterFixture(t)
	// Another request inserted the email between the pre-check and the insert.
	subs.CreateFn = func(ctx context.Context, sub *domain.Subscriber) error {
		return store.ErrEmailExists
	}

	_, err := svc.Subscribe(context.Background(), "reader@example.com")

	assert.ErrorIs(t, err, service.ErrEmailExists)
}

func TestNewsletterService_SubscribeInvalidEmail(t *testing.T) {
	subs, _, svc := newNewsletterFixture(t)

	for _, email := range []string{"", "reader", "reader@example"} {
		_, err := svc.Subscribe(context.Background(), email)
		assert.ErrorIs(t, err, domain.ErrValidation, "email %q", email)
	}
	assert.Empty(t, subs.Subscribers)
}

func TestNewsletterService_Broadcast(t *testing.T) {
	ctx := context.Background()

	t.Run("no subscribers does not send", func(t *testing.T) {
		_, mailer, svc := newNewsletterFixture(t)

		_, err := svc.Broadcast(ctx, "Hello", "News")

		assert.ErrorIs(t, err, service.ErrNoSubscribers)
		assert.Empty(t, mailer.Sent)
	})

	t.Run("single message to every subscriber", func(t *testing.T) {
		_, mailer, svc := newNewsletterFixture(t)
		_, err := svc.Subscribe(ctx, "a@example.com")
		require.NoError(t, err)
		_, err = svc.Subscribe(ctx, "b@example.com")
		require.NoError(t, err)

		info, err := svc.Broadcast(ctx, "Hello", "News")

		require.NoError(t, err)
		require.Len(t, mailer.Sent, 1)
		assert.Equal(t, []string{"a@example.com", "b@example.com"}, mailer.Sent[0].To)
		assert.Equal(t, "Hello", mailer.Sent[0].Subject)
		assert.Equal(t, "News", mailer.Sent[0].Body)
		assert.Equal(t, "<test-message@careers>", info.MessageID)
		assert.Equal(t, []string{"a@example.com", "b@example.com"}, info.Accepted)
	})

	t.Run("mail failure is upstream", func(t *testing.T) {
		_, mailer, svc := newNewsletterFixture(t)
		_, err := svc.Subscribe(ctx, "a@example.com")
		require.NoError(t, err)
		mailer.SendFn = func(ctx context.Context, to []string, subject, body string) (string, error) {
			return "", errors.New("535 auth failed")
		}

		_, err = svc.Broadcast(ctx, "Hello", "News")

		assert.ErrorIs(t, err, service.ErrUpstream)
	})

	t.Run("subject and message are required", func(t *testing.T) {
		_, mailer, svc := newNewsletterFixture(t)

		_, err := svc.Broadcast(ctx, "", "News")
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = svc.Broadcast(ctx, "Hello", " ")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, mailer.Sent)
	})
}

func TestNewsletterService_ListSubscriberEmails(t *testing.T) {
	_, _, svc := newNewsletterFixture(t)
	ctx := context.Background()

	_, err := svc.ListSubscriberEmails(ctx)
	assert.ErrorIs(t, err, service.ErrSubscribersNotFound)

	_, err = svc.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)

	emails, err := svc.ListSubscriberEmails(ctx)
	require.NoError(t, err)
	assert.Equal(t, []service.SubscriberEmail{{Email: "a@example.com"}}, emails)
}
