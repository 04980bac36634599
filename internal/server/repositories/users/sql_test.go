package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQuery      = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*name,\s*email,\s*password_hash,\s*level,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`
	selectByName     = `(?s)^SELECT\s+id,\s*name,\s*email,\s*password_hash,\s*level\s+FROM\s+users\s+WHERE\s+name\s*=\s*\$1\s*$`
	selectByEmail    = `(?s)^SELECT\s+id,\s*name,\s*email,\s*password_hash,\s*level\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	selectByID       = `(?s)^SELECT\s+id,\s*name,\s*email,\s*password_hash,\s*level\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	testUserID       = "5b1f6a9e-8a0e-4f43-9d0a-3c1c7a0f6b21"
	testPasswordHash = "$2a$12$abcdefghijklmnopqrstuv"
)

var userColumns = []string{"id", "name", "email", "password_hash", "level"}

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQuery).
		WithArgs(sqlmock.AnyArg(), "alice", "a@x.com", testPasswordHash, "1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &models.User{Name: "alice", Email: "a@x.com", PasswordHash: testPasswordHash, Level: "1"}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID, "id is assigned by the store")
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "alice", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_KeepsGivenID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectExec(insertQuery).
		WithArgs(testUserID, "bob", "b@x.com", testPasswordHash, "2", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &models.User{ID: testUserID, Name: "bob", Email: "b@x.com", PasswordHash: testPasswordHash, Level: "2", CreatedAt: created}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, testUserID, got.ID)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Name: "alice", Email: "a@x.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCreate_UniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "email", constraint: "users_email_key", want: common.ErrEmailTaken},
		{name: "name", constraint: "users_name_key", want: common.ErrNameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectExec(insertQuery).WillReturnError(&pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: tt.constraint,
			})

			_, err := repo.Create(context.Background(), &models.User{Name: "alice", Email: "a@x.com"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreate_OtherPgErrorIsWrapped(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQuery).WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation})

	_, err := repo.Create(context.Background(), &models.User{Name: "alice"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNameTaken)
	assert.Contains(t, err.Error(), "db error")
}

func TestFind_Found(t *testing.T) {
	tests := []struct {
		name  string
		query string
		arg   string
		find  func(r *SQLRepository) (*models.User, error)
	}{
		{"by name", selectByName, "alice", func(r *SQLRepository) (*models.User, error) {
			return r.FindByName(context.Background(), "alice")
		}},
		{"by email", selectByEmail, "a@x.com", func(r *SQLRepository) (*models.User, error) {
			return r.FindByEmail(context.Background(), "a@x.com")
		}},
		{"by id", selectByID, testUserID, func(r *SQLRepository) (*models.User, error) {
			return r.FindByID(context.Background(), testUserID)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			rows := sqlmock.NewRows(userColumns).AddRow(testUserID, "alice", "a@x.com", testPasswordHash, "1")
			mock.ExpectQuery(tt.query).WithArgs(tt.arg).WillReturnRows(rows)

			got, err := tt.find(repo)
			require.NoError(t, err)
			assert.Equal(t, &models.User{
				ID: testUserID, Name: "alice", Email: "a@x.com", PasswordHash: testPasswordHash, Level: "1",
			}, got)
		})
	}
}

func TestFindByName_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByName).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByName(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFindByEmail_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByEmail).WithArgs("a@x.com").WillReturnError(errors.New("db err"))

	_, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByID_NonUUIDIsNotFoundWithoutQuery(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	_, err := repo.FindByID(context.Background(), "64b7f0c2e13a")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
