package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posterapi/pkg/database"
	"posterapi/pkg/database/dbtest"
)

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	db := &dbtest.DB{}

	err := database.WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, db.LastTx())
	assert.True(t, db.LastTx().Committed)
	assert.False(t, db.LastTx().RolledBack)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db := &dbtest.DB{}
	boom := errors.New("boom")

	err := database.WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.False(t, db.LastTx().Committed)
	assert.True(t, db.LastTx().RolledBack)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	db := &dbtest.DB{}

	require.Panics(t, func() {
		_ = database.WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
			panic("boom")
		})
	})
	assert.True(t, db.LastTx().RolledBack)
}

func TestWithTransaction_BeginError(t *testing.T) {
	db := &dbtest.DB{BeginErr: errors.New("no connection")}

	err := database.WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})

	require.Error(t, err)
}

func TestWithTransactionResult(t *testing.T) {
	db := &dbtest.DB{}

	got, err := database.WithTransactionResult(context.Background(), db, func(tx pgx.Tx) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.True(t, db.LastTx().Committed)

	_, err = database.WithTransactionResult(context.Background(), db, func(tx pgx.Tx) (int, error) {
		return 0, errors.New("boom")
	})
	require.Error(t, err)
	assert.True(t, db.LastTx().RolledBack)
}
