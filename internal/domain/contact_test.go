package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactDetails() ContactDetails {
	return ContactDetails{
		Name:            "A",
		Email:           "a@b.com",
		City:            "X",
		Phone:           "123",
		ServiceSelected: "S",
		Message:         "hi",
	}
}

func TestNewContact(t *testing.T) {
	contact, err := NewContact(validContactDetails())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.Equal(t, ContactStatusNew, contact.Status)
	assert.Equal(t, "", contact.LeadType)
	assert.Equal(t, []string{}, contact.FollowUp)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestContactDetailsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactDetails)
		field  string
	}{
		{"missing name", func(d *ContactDetails) { d.Name = "" }, "name"},
		{"missing email", func(d *ContactDetails) { d.Email = "" }, "email"},
		{"malformed email", func(d *ContactDetails) { d.Email = "not-an-email" }, "email"},
		{"missing city", func(d *ContactDetails) { d.City = "" }, "city"},
		{"missing phone", func(d *ContactDetails) { d.Phone = " " }, "phone"},
		{"missing service", func(d *ContactDetails) { d.ServiceSelected = "" }, "serviceSelected"},
		{"missing message", func(d *ContactDetails) { d.Message = "" }, "message"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			details := validContactDetails()
			tc.mutate(&details)

			_, err := NewContact(details)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.com"))
	assert.True(t, IsValidEmail("first.last+tag@mail.example.org"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("ab.com"))
	assert.False(t, IsValidEmail(""))
}

func TestNewOrderFromContact(t *testing.T) {
	contact, err := NewContact(validContactDetails())
	require.NoError(t, err)

	order := NewOrderFromContact(contact, "pkg-1", "user-1")

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, contact.ID, order.ContactID)
	assert.Equal(t, "A", order.CustomerName)
	assert.Equal(t, "a@b.com", order.CustomerEmail)
	assert.Equal(t, "X", order.City)
	assert.Equal(t, "123", order.Phone)
	assert.Equal(t, "S", order.ServiceSelected)
	assert.Equal(t, "hi", order.Message)
	assert.Equal(t, "pkg-1", order.PackageID)
	assert.Equal(t, "user-1", order.UserID)
}

func TestNewSubscriber(t *testing.T) {
	sub, err := NewSubscriber("  reader@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)

	_, err = NewSubscriber("")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewSubscriber("reader")
	assert.ErrorIs(t, err, ErrValidation)
}
