package service

import (
	"context"
	"fmt"
	"strings"

	"shopzone/internal/model"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
)

const minPasswordLength = 6

// authService implements AuthService over the store's user collection
// and session slot.
type authService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(st *store.Store, logger zerolog.Logger) AuthService {
	return &authService{
		store:  st,
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

// SignUp registers a new user and opens a session for them.
func (s *authService) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	user, err := s.store.Users.Create(ctx, email, password)
	if err != nil {
		if err != model.ErrUserExists {
			s.logger.Error().Err(err).Msg("failed to create user")
		}
		return nil, err
	}

	if err := s.store.Users.SetCurrent(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to open session")
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user signed up")
	public := user.Public()
	return &public, nil
}

// Login authenticates a user and opens a session for them.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.store.Users.Authenticate(ctx, email, password)
	if err != nil {
		if err != model.ErrInvalidCredentials {
			s.logger.Error().Err(err).Msg("failed to authenticate user")
		}
		return nil, err
	}

	if err := s.store.Users.SetCurrent(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to open session")
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	public := user.Public()
	return &public, nil
}

// Logout clears the session slot.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.store.Users.SetCurrent(ctx, nil); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear session")
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the user in the session slot, or nil.
func (s *authService) CurrentUser(ctx context.Context) (*model.User, error) {
	user, err := s.store.Users.Current(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read session")
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	public := user.Public()
	return &public, nil
}
