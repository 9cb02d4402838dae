package sqlutil

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txQueries struct {
	tx *sql.Tx
}

func TestRun_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err = Run(context.Background(), db, func(tx *sql.Tx) *txQueries {
		return &txQueries{tx: tx}
	}, func(q *txQueries) error {
		called = true
		assert.NotNil(t, q.tx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = Run(context.Background(), db, func(tx *sql.Tx) *txQueries {
		return &txQueries{tx: tx}
	}, func(q *txQueries) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	err = Run(context.Background(), db, func(tx *sql.Tx) *txQueries {
		return &txQueries{tx: tx}
	}, func(q *txQueries) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
}

func TestRebind(t *testing.T) {
	q := "SELECT id FROM users WHERE id = ? AND email = ?"

	assert.Equal(t, q, MySQL.Rebind(q))
	assert.Equal(t, "SELECT id FROM users WHERE id = $1 AND email = $2", Postgres.Rebind(q))
}

func TestParseDialect(t *testing.T) {
	d, ok := ParseDialect("MySQL")
	assert.True(t, ok)
	assert.Equal(t, MySQL, d)

	d, ok = ParseDialect("postgresql")
	assert.True(t, ok)
	assert.Equal(t, Postgres, d)

	_, ok = ParseDialect("sqlite")
	assert.False(t, ok)
}

func TestFromSqlString(t *testing.T) {
	assert.Equal(t, "", FromSqlString(sql.NullString{}, ""))
	assert.Equal(t, "note", FromSqlString(sql.NullString{String: "note", Valid: true}, ""))
}
