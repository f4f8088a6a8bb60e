package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Decanton/Twitter-Clone/internal/common"
	"github.com/Decanton/Twitter-Clone/internal/dbx"
	"github.com/Decanton/Twitter-Clone/internal/server/models"
)

const userColumns = `id, username, email, full_name, password_hash, followers, following, profile_img, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	followers, err := json.Marshal(user.Followers)
	if err != nil {
		return nil, fmt.Errorf("marshal followers: %w", err)
	}
	following, err := json.Marshal(user.Following)
	if err != nil {
		return nil, fmt.Errorf("marshal following: %w", err)
	}

	query :=
		`INSERT INTO users (id, username, email, full_name, password_hash, followers, following, profile_img)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
		followers, following, user.ProfileImg).Scan(&user.CreatedAt)

	if err != nil {
		if taken := uniqueViolation(err); taken != nil {
			return nil, taken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`
	return r.getOne(ctx, query, usernameOrEmail)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {

	user := &models.User{}
	var followers, following []byte

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &user.PasswordHash,
		&followers, &following, &user.ProfileImg, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(followers, &user.Followers); err != nil {
		return nil, fmt.Errorf("unmarshal followers: %w", err)
	}
	if err := json.Unmarshal(following, &user.Following); err != nil {
		return nil, fmt.Errorf("unmarshal following: %w", err)
	}

	return user, nil
}

// uniqueViolation maps a Postgres unique-constraint violation on the users
// table to the matching conflict sentinel. The unique indexes are the
// backstop for the sequential availability checks in the signup flow: a
// concurrent duplicate insert surfaces as the same conflict error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return common.ErrUsernameTaken
	case "users_email_key":
		return common.ErrEmailTaken
	default:
		return nil
	}
}
