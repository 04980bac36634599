// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, token verification and
// profile lookup.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Level           string
}

// Validate checks the fields in order and returns the first failure.
func (in RegisterInput) Validate() error {
	switch {
	case blank(in.Name):
		return common.ErrNameRequired
	case blank(in.Email):
		return common.ErrEmailRequired
	case blank(in.Password):
		return common.ErrPasswordRequired
	case in.Password != in.ConfirmPassword:
		return common.ErrPasswordMismatch
	case blank(in.Level):
		return common.ErrLevelRequired
	case len(in.Password) > auth.MaxPasswordBytes:
		return common.ErrPasswordTooLong
	}
	return nil
}

// LoginInput is the login form.
type LoginInput struct {
	Name     string
	Password string
}

func (in LoginInput) Validate() error {
	switch {
	case blank(in.Name):
		return common.ErrNameRequired
	case blank(in.Password):
		return common.ErrPasswordRequired
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// UserService provides authentication-related operations:
// - Register: validate and create users
// - Login: verify credentials and sign an access token
// - Authenticate: verify an access token
// - Profile: load the public projection of a user
type UserService struct {
	db                          dbx.DBTX
	repomanager                 repomanager.RepositoryManager
	hasher                      auth.PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      auth.NewBcryptHasher(cfg.PasswordHashCost),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register validates in, rejects a taken email and then a taken name, and
// stores the user with a bcrypt hash of the password.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	repo := s.repomanager.Users(s.db)

	if err := absent(repo.FindByEmail(ctx, email)); err != nil {
		if errors.Is(err, errExists) {
			return nil, common.ErrEmailTaken
		}
		return nil, err
	}
	if err := absent(repo.FindByName(ctx, name)); err != nil {
		if errors.Is(err, errExists) {
			return nil, common.ErrNameTaken
		}
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, common.ErrPasswordTooLong) {
			return nil, err
		}
		return nil, internalError(err)
	}

	u, err := repo.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Level:        strings.TrimSpace(in.Level),
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) || errors.Is(err, common.ErrNameTaken) {
			return nil, err
		}
		return nil, internalError(fmt.Errorf("error creating user: %w", err))
	}
	return u, nil
}

// Login checks the password of the named user and returns a signed access
// token. An unknown name is common.ErrorNotFound.
func (s *UserService) Login(ctx context.Context, in LoginInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	user, err := s.repomanager.Users(s.db).FindByName(ctx, strings.TrimSpace(in.Name))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", internalError(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		if errors.Is(err, common.ErrIncorrectPassword) {
			return "", common.ErrIncorrectPassword
		}
		return "", internalError(err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", internalError(fmt.Errorf("error signing token: %w", err))
	}
	return token, nil
}

// Authenticate returns the user id carried by token. An empty token is
// common.ErrAccessDenied.
func (s *UserService) Authenticate(token string) (string, error) {
	if token == "" {
		return "", common.ErrAccessDenied
	}
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// Profile returns the public fields of the user with the given id.
func (s *UserService) Profile(ctx context.Context, id string) (*models.Profile, error) {
	user, err := s.repomanager.Users(s.db).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, internalError(err)
	}
	p := user.Profile()
	return &p, nil
}

// --- helpers below ---

var errExists = errors.New("exists")

// absent turns a lookup result into nil when nothing was found, errExists
// when something was, and an internal error otherwise.
func absent(_ *models.User, err error) error {
	switch {
	case err == nil:
		return errExists
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return internalError(err)
	}
}

func internalError(err error) error {
	return fmt.Errorf("%w: %w", common.ErrorInternal, err)
}
