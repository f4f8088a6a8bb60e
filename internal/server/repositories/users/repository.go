// Package users contains the credential store: persistence of User records
// keyed by id, username, and email.
package users

import (
	"context"

	"github.com/Decanton/Twitter-Clone/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
