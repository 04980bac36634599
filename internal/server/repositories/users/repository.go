// Package users is the credential store: persistence for User records behind
// the Repository interface.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository looks users up and inserts them. Lookups that miss return
// common.ErrorNotFound; Create reports a taken name or email as
// common.ErrNameTaken / common.ErrEmailTaken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}
