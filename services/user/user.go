// File: services/user/user.go
package user

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"
)

// ErrUnknownUser is returned when a token is requested for an email with no
// user record.
var ErrUnknownUser = errors.New("unknown user")

// UserService covers account records, the admin role, and token issuance.
// Identity itself comes from the frontend's sign-in flow; this side only
// mints tokens for emails it has a record of.
type UserService interface {
	Register(ctx context.Context, user models.User) (string, error)
	List(ctx context.Context) ([]models.User, error)
	GrantAdmin(ctx context.Context, id string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
	IssueToken(ctx context.Context, email string) (string, error)
}

type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func (s *DefaultUserService) Register(ctx context.Context, user models.User) (string, error) {
	return s.Repo.Insert(ctx, user)
}

func (s *DefaultUserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultUserService) GrantAdmin(ctx context.Context, id string) error {
	return s.Repo.GrantAdminByID(ctx, id)
}

// IsAdmin reports whether the email belongs to an admin. A missing user is
// simply not an admin.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

// IssueToken mints a one-day access token for a known email.
func (s *DefaultUserService) IssueToken(ctx context.Context, email string) (string, error) {
	if _, err := s.Repo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return "", ErrUnknownUser
		}
		return "", err
	}

	token, err := utils.GenerateToken(email, 24*time.Hour)
	if err != nil {
		return "", err
	}
	if s.Logger != nil {
		s.Logger.Debug("issued access token", zap.String("email", email))
	}
	return token, nil
}
