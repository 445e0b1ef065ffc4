package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/database"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

var userRowColumns = []string{"id", "email", "password_hash", "staff_ref", "is_active", "is_staff", "is_admin", "is_superuser", "last_login", "created_at", "updated_at"}

func TestFindByStaffRef(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u1", "a@x.com", "hash", "s1", true, false, false, false, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE staff_ref = $1 LIMIT 1")).
		WithArgs("s1").
		WillReturnRows(rows)

	user, err := repo.FindByStaffRef(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, user.StaffRef)
	assert.Equal(t, "s1", *user.StaffRef)
	assert.Nil(t, user.LastLogin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByStaffRefNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("FROM users WHERE staff_ref").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByStaffRef(context.Background(), "missing")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestCreateWithStaffCommits(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO staff").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	staff := &models.Staff{StaffID: "S1", Name: "Ada", Department: "Ops", Role: "Clerk", Email: "a@x.com"}
	user := &models.User{Email: "a@x.com", PasswordHash: "hash", IsActive: true}
	require.NoError(t, repo.CreateWithStaff(context.Background(), staff, user))

	require.NotNil(t, user.StaffRef)
	assert.Equal(t, staff.ID, *user.StaffRef)
	assert.Equal(t, models.StaffStatusActive, staff.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithStaffRollsBackOnUserConflict(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO staff").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	mock.ExpectRollback()

	err := repo.CreateWithStaff(context.Background(), &models.Staff{Email: "a@x.com"}, &models.User{Email: "a@x.com"})
	require.Error(t, err)
	constraint, ok := database.UniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "users_email_key", constraint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokensAreStoredHashed(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO refresh_tokens").WillReturnResult(sqlmock.NewResult(1, 1))
	token := &models.RefreshToken{UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateRefreshToken(context.Background(), token, "raw-token"))
	assert.Equal(t, HashToken("raw-token"), token.TokenHash)
	assert.Len(t, token.TokenHash, 64)
	assert.NotEmpty(t, token.ID)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked", "revoked_at", "ip_address", "user_agent"}).
		AddRow(token.ID, "u1", token.TokenHash, now.Add(time.Hour), now, false, nil, "", "")
	mock.ExpectQuery(regexp.QuoteMeta("FROM refresh_tokens WHERE token_hash = $1")).
		WithArgs(HashToken("raw-token")).
		WillReturnRows(rows)

	found, err := repo.FindRefreshToken(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, token.ID, found.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeRefreshTokenReportsAlreadyRevoked(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked = TRUE")).
		WithArgs("rt1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked = TRUE")).
		WithArgs("rt1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	revoked, err := repo.RevokeRefreshToken(context.Background(), "rt1", time.Now())
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.RevokeRefreshToken(context.Background(), "rt1", time.Now())
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAuditLog(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO audit_logs").WillReturnResult(sqlmock.NewResult(1, 1))

	userID := "u1"
	entry := &models.AuditLog{UserID: &userID, Action: models.AuditActionLogin, Resource: "auth"}
	require.NoError(t, repo.CreateAuditLog(context.Background(), entry))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveSessionIDs(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM refresh_tokens WHERE user_id = $1 AND revoked = FALSE")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s1").AddRow("s2"))

	ids, err := repo.ListActiveSessionIDs(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
