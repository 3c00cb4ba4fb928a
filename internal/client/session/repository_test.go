package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db))
	return db
}

func TestRepository_SetGetOverwrite(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("v1")))
	require.NoError(t, r.Set(ctx, "k", []byte("v2")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestRepository_GetMissing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRepository_Clear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))
	require.NoError(t, r.Clear(ctx))

	v, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRepository_Errors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewSQLiteRepository(db)
	ctx := context.Background()
	down := errors.New("db down")

	mock.ExpectQuery(`SELECT value FROM metadata`).WithArgs("k").WillReturnError(down)
	_, err = r.Get(ctx, "k")
	require.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "failed to get k")

	mock.ExpectExec(`INSERT INTO metadata`).WithArgs("k", []byte("v")).WillReturnError(down)
	require.ErrorIs(t, r.Set(ctx, "k", []byte("v")), down)

	mock.ExpectExec(`DELETE FROM metadata`).WillReturnError(down)
	require.ErrorIs(t, r.Clear(ctx), down)

	require.NoError(t, mock.ExpectationsWereMet())
}
