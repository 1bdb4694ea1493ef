// Package usermanager manages controller users and their API access tokens.
package usermanager

import (
	"context"
	"errors"
	"strings"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/schemavalidator"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/segmentio/ksuid"
)

type UserSpec struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
}

// Validate trims the email before checking it.
func (s *UserSpec) Validate() apperrors.Error {
	if s.Email != nil {
		s.Email = lo.ToPtr(strings.TrimSpace(*s.Email))
	}
	if ves := schemavalidator.Struct(s); ves != nil {
		return ErrInvalidUser.Err(ves)
	}
	return nil
}

// NewAccessToken returns a fresh random API token.
func NewAccessToken() string {
	return ksuid.New().String()
}

// CreateUser stores a user and issues an access token for it.
func CreateUser(ctx context.Context, spec *UserSpec) (*models.User, apperrors.Error) {
	if spec == nil || spec.Email == nil || strings.TrimSpace(*spec.Email) == "" {
		return nil, ErrInvalidUser.Msg("email is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	user := &models.User{AccessToken: NewAccessToken()}
	spec.applyTo(user)
	if err := db.DB(ctx).CreateUser(ctx, user); err != nil {
		return nil, saveError(ctx, err)
	}
	return user, nil
}

func GetUser(ctx context.Context, id int64) (*models.User, apperrors.Error) {
	user, err := db.DB(ctx).GetUser(ctx, id)
	if err != nil {
		return nil, loadError(ctx, err)
	}
	return user, nil
}

func ListUsers(ctx context.Context) ([]models.User, apperrors.Error) {
	users, err := db.DB(ctx).ListUsers(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list users")
		return nil, ErrUnableToLoad.Err(err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func UpdateUser(ctx context.Context, id int64, spec *UserSpec) (*models.User, apperrors.Error) {
	if spec == nil {
		return nil, ErrInvalidUser.Msg("empty update")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	user, aerr := GetUser(ctx, id)
	if aerr != nil {
		return nil, aerr
	}
	spec.applyTo(user)
	if err := db.DB(ctx).UpdateUser(ctx, user); err != nil {
		return nil, saveError(ctx, err)
	}
	return user, nil
}

// RegenerateToken replaces the user's access token, invalidating the old one.
func RegenerateToken(ctx context.Context, id int64) (*models.User, apperrors.Error) {
	user, aerr := GetUser(ctx, id)
	if aerr != nil {
		return nil, aerr
	}
	user.AccessToken = NewAccessToken()
	if err := db.DB(ctx).UpdateUser(ctx, user); err != nil {
		return nil, saveError(ctx, err)
	}
	return user, nil
}

func DeleteUser(ctx context.Context, id int64) apperrors.Error {
	if err := db.DB(ctx).DeleteUser(ctx, id); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete user")
		return ErrUnableToSave.Err(err)
	}
	return nil
}

// Authenticate resolves the user owning token.
func Authenticate(ctx context.Context, token string) (*models.User, apperrors.Error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	user, err := db.DB(ctx).GetUserByAccessToken(ctx, token)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to resolve access token")
		return nil, ErrUnableToLoad.Err(err)
	}
	return user, nil
}

func (s *UserSpec) applyTo(u *models.User) {
	if s.FirstName != nil {
		u.FirstName = *s.FirstName
	}
	if s.LastName != nil {
		u.LastName = *s.LastName
	}
	if s.Email != nil {
		u.Email = *s.Email
	}
}

func loadError(ctx context.Context, err error) apperrors.Error {
	if errors.Is(err, dberror.ErrNotFound) {
		return ErrUserNotFound
	}
	log.Ctx(ctx).Error().Err(err).Msg("failed to load user")
	return ErrUnableToLoad.Err(err)
}

func saveError(ctx context.Context, err error) apperrors.Error {
	switch {
	case errors.Is(err, dberror.ErrAlreadyExists):
		return ErrUserExists
	case errors.Is(err, dberror.ErrNotFound):
		return ErrUserNotFound
	}
	log.Ctx(ctx).Error().Err(err).Msg("failed to save user")
	return ErrUnableToSave.Err(err)
}
