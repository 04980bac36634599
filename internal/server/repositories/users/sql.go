package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/google/uuid"
)

// SQLRepository implements Repository over dbx.DBTX. Queries are written for
// PostgreSQL and rebound for other dialects.
type SQLRepository struct {
	db     dbx.DBTX
	rebind dbx.Rebinder
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, rebind: dbx.Dollar}
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, rebind: dbx.Numbered}
}

// Create inserts user, assigning ID and CreatedAt when they are empty.
func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query :=
		`INSERT INTO users (id, name, email, password_hash, level, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, r.rebind(query),
		user.ID, user.Name, user.Email, user.PasswordHash, user.Level, user.CreatedAt)
	if err != nil {
		if taken := duplicateError(err); taken != nil {
			return nil, taken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	return r.findOne(ctx, `SELECT id, name, email, password_hash, level FROM users
		 WHERE name = $1
		 `, name)
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, `SELECT id, name, email, password_hash, level FROM users
		 WHERE email = $1
		 `, email)
}

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		// only UUIDs are ever assigned
		return nil, common.ErrorNotFound
	}
	return r.findOne(ctx, `SELECT id, name, email, password_hash, level FROM users
		 WHERE id = $1
		 `, id)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, r.rebind(query), arg).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Level)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
