package service

import (
	"context"
	"fmt"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/clock"
	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/repository"
	"github.com/content-sharing-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userService is the concrete implementation of UserService. Credentials
// never pass through here; the upstream identity layer owns those.
type userService struct {
	tx    TxRunner
	repos *repository.Repositories
	clock clock.Clock
	log   zerolog.Logger
}

// NewUserService creates a new user service
func NewUserService(tx TxRunner, repos *repository.Repositories, clk clock.Clock, log zerolog.Logger) UserService {
	return &userService{
		tx:    tx,
		repos: repos,
		clock: clk,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// Register creates a user record. Duplicate usernames and emails are
// rejected by the store's unique constraints as AlreadyExistsError.
func (s *userService) Register(ctx context.Context, in *models.UserInput) (*models.User, error) {
	if err := validation.User(in); err != nil {
		return nil, err
	}

	var created *models.User
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		now := s.clock.Now()
		user := &models.User{
			ID:        uuid.NewString(),
			Username:  in.Username,
			Email:     in.Email,
			Name:      in.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.User.Create(ctx, user); err != nil {
			return err
		}

		var err error
		created, err = r.User.GetByID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("read back user: %w", err)
		}
		if created == nil {
			return fmt.Errorf("user %s missing after insert", user.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("User registered")
	return created, nil
}

// Get returns a user by ID
func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, apperrors.Validation("userId is required")
	}

	user, err := s.repos.User.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user", id)
	}
	return user, nil
}
