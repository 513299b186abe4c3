package mailer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	f.sent = append(f.sent, messages...)
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	m, err := New(Config{
		Host:        "smtp.example.com",
		Port:        465,
		Username:    "news@example.com",
		Password:    "secret",
		From:        "news@example.com",
		ImplicitTLS: true,
	}, testLogger())

	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestSend(t *testing.T) {
	fake := &fakeSender{}
	m := newWithSender(fake, "news@example.com", testLogger())

	id, err := m.Send(context.Background(),
		[]string{"a@example.com", "b@example.com"}, "Hello", "Body text")

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, fake.sent, 1, "one message for all recipients")

	msg := fake.sent[0]
	assert.Equal(t, []string{"<news@example.com>"}, msg.GetToString())
	assert.Equal(t, []string{"<a@example.com>", "<b@example.com>"}, msg.GetBccString())
	assert.Equal(t, []string{"Hello"}, msg.GetGenHeader(mail.HeaderSubject))

	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Subset(t, rcpts, []string{"a@example.com", "b@example.com"}, "every subscriber is still delivered to")

	var rendered bytes.Buffer
	_, err = msg.WriteTo(&rendered)
	require.NoError(t, err)
	assert.NotContains(t, rendered.String(), "a@example.com", "subscribers must not see each other")
	assert.NotContains(t, rendered.String(), "b@example.com")
}

func TestSendErrors(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      []string
		sendErr error
		wantErr string
	}{
		{name: "no recipients", from: "news@example.com", to: nil, wantErr: "no recipients"},
		{name: "bad sender", from: "not an address", to: []string{"a@example.com"}, wantErr: "invalid sender"},
		{name: "bad recipient", from: "news@example.com", to: []string{"nope"}, wantErr: "invalid recipient"},
		{
			name:    "transport failure",
			from:    "news@example.com",
			to:      []string{"a@example.com"},
			sendErr: errors.New("535 authentication failed"),
			wantErr: "send failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newWithSender(&fakeSender{err: tt.sendErr}, tt.from, testLogger())

			_, err := m.Send(context.Background(), tt.to, "s", "b")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
