// Package users implements the account flows of the backend: signup, login,
// and current-user lookup over the credential store.
package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/Decanton/Twitter-Clone/internal/common"
	"github.com/Decanton/Twitter-Clone/internal/server/auth"
	"github.com/Decanton/Twitter-Clone/internal/server/models"
	usersrepo "github.com/Decanton/Twitter-Clone/internal/server/repositories/users"
)

// emailPattern accepts local@domain.tld: no whitespace or extra '@' on
// either side, and at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// minPasswordLength is the shortest accepted signup password.
const minPasswordLength = 6

// SignUpParams carries the signup request fields.
type SignUpParams struct {
	Username string
	FullName string
	Password string
	Email    string
}

// Service orchestrates the signup, login, and current-user flows. It holds
// no cross-request state; every method is one sequential pass over the
// credential store.
type Service struct {
	repo usersrepo.Repository
}

// NewService constructs a Service over the given credential store.
func NewService(repo usersrepo.Repository) *Service {
	return &Service{repo: repo}
}

// SignUp validates the registration request and persists a new user.
//
// The check order is fixed: missing fields, email shape, username
// availability, email availability, password length. The store's unique
// indexes backstop the two availability checks, so a concurrent duplicate
// signup still surfaces as ErrUsernameTaken or ErrEmailTaken.
func (s *Service) SignUp(ctx context.Context, p SignUpParams) (*models.User, error) {

	if p.Username == "" || p.FullName == "" || p.Password == "" || p.Email == "" {
		return nil, common.ErrMissingFields
	}

	if !emailPattern.MatchString(p.Email) {
		return nil, common.ErrInvalidEmail
	}

	if _, err := s.repo.GetByUsername(ctx, p.Username); err == nil {
		return nil, common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}

	if _, err := s.repo.GetByEmail(ctx, p.Email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	if len(p.Password) < minPasswordLength {
		return nil, common.ErrPasswordTooShort
	}

	digest, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     p.Username,
		Email:        p.Email,
		FullName:     p.FullName,
		PasswordHash: digest,
		Followers:    []string{},
		Following:    []string{},
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) || errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Login resolves usernameOrEmail against both unique columns and verifies
// the password against the stored digest. An unknown identity and a wrong
// password stay distinct errors; the transport maps both to a 400 response.
func (s *Service) Login(ctx context.Context, usernameOrEmail, password string) (*models.User, error) {

	if usernameOrEmail == "" || password == "" {
		return nil, common.ErrMissingCredentials
	}

	user, err := s.repo.GetByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidPassword
	}

	return user, nil
}

// GetByID returns the stored record for an already-authenticated user id.
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	return user, nil
}
