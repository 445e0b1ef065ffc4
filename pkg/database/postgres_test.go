package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestWithTxCommits(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO staff").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := WithTx(context.Background(), db, func(tx *sqlx.Tx) error {
		_, err := tx.Exec("INSERT INTO staff (id) VALUES (1)")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("user insert failed")
	err := WithTx(context.Background(), db, func(tx *sqlx.Tx) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("create staff: %w", &pq.Error{Code: "23505", Constraint: "staff_email_key"})
	constraint, ok := UniqueViolation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "staff_email_key", constraint)

	_, ok = UniqueViolation(errors.New("other"))
	assert.False(t, ok)

	_, ok = ForeignKeyViolation(&pq.Error{Code: "23503", Constraint: "item_requests_created_by_fkey"})
	assert.True(t, ok)
}

func TestInvalidText(t *testing.T) {
	assert.True(t, InvalidText(fmt.Errorf("find staff by id: %w", &pq.Error{Code: "22P02"})))
	assert.False(t, InvalidText(&pq.Error{Code: "23505"}))
	assert.False(t, InvalidText(errors.New("other")))
}
