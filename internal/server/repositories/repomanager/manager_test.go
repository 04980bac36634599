package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestForDriver(t *testing.T) {
	m, err := ForDriver("pgx")
	require.NoError(t, err)
	assert.IsType(t, &PostgresRepositoryManager{}, m)

	m, err = ForDriver("sqlite")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepositoryManager{}, m)

	_, err = ForDriver("mysql")
	assert.Error(t, err)
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	assert.IsType(t, &users.SQLRepository{}, NewPostgresRepositoryManager().Users(db))
	assert.IsType(t, &users.SQLRepository{}, NewSQLiteRepositoryManager().Users(db))
}

func TestRunMigrations_Directories(t *testing.T) {
	tests := []struct {
		name string
		m    RepositoryManager
		dir  string
	}{
		{"postgres", NewPostgresRepositoryManager(), "postgres"},
		{"sqlite", NewSQLiteRepositoryManager(), "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newDB(t)
			defer db.Close()

			var gotDir string
			stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
				gotDir = dir
				return nil
			})

			require.NoError(t, tt.m.RunMigrations(context.Background(), db))
			assert.Equal(t, tt.dir, gotDir)
		})
	}
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	boom := errors.New("boom")
	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	})

	err := NewPostgresRepositoryManager().RunMigrations(context.Background(), db)
	assert.ErrorIs(t, err, boom)
}

func TestSQLite_MigrateAndUse(t *testing.T) {
	db, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	m := NewSQLiteRepositoryManager()
	ctx := context.Background()
	require.NoError(t, m.RunMigrations(ctx, db))
	// second run is a no-op
	require.NoError(t, m.RunMigrations(ctx, db))

	repo := m.Users(db)
	u, err := repo.Create(ctx, &models.User{Name: "alice", Email: "a@x.com", PasswordHash: "h", Level: "1"})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
}
