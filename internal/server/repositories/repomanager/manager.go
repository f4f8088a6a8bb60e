package repomanager

import (
	"context"
	"database/sql"

	"github.com/Decanton/Twitter-Clone/internal/dbx"
	"github.com/Decanton/Twitter-Clone/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a database
// handle and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
