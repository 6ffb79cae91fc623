package store

import (
	"context"
	"testing"

	"shopzone/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_CreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Users.Create(ctx, "shopper@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "shopper@example.com", created.Email)

	got, err := s.Users.Authenticate(ctx, "shopper@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users.Create(ctx, "shopper@example.com", "secret123")
	require.NoError(t, err)

	_, err = s.Users.Create(ctx, "shopper@example.com", "different")
	assert.ErrorIs(t, err, model.ErrUserExists)

	count, err := s.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUsers_AuthenticateRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users.Create(ctx, "shopper@example.com", "secret123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "shopper@example.com", password: "wrong"},
		{name: "unknown email", email: "nobody@example.com", password: "secret123"},
		{name: "both wrong", email: "nobody@example.com", password: "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Users.Authenticate(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		})
	}
}

func TestUsers_SessionSlot(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// No session initially.
	current, err := s.Users.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user, err := s.Users.Create(ctx, "shopper@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, s.Users.SetCurrent(ctx, user))

	current, err = s.Users.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	// A nil user clears the slot.
	require.NoError(t, s.Users.SetCurrent(ctx, nil))

	current, err = s.Users.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}
