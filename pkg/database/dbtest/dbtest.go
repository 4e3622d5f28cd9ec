// Package dbtest provides in-memory stand-ins for the transaction surface so
// service tests can drive transactional code paths without a live database.
package dbtest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB satisfies database.Beginner. Every Begin hands out a fresh Tx and
// remembers it so tests can assert on commit and rollback.
type DB struct {
	BeginErr error
	Txs      []*Tx
}

func (d *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.BeginErr != nil {
		return nil, d.BeginErr
	}
	tx := &Tx{}
	d.Txs = append(d.Txs, tx)
	return tx, nil
}

// LastTx returns the most recently begun transaction, or nil.
func (d *DB) LastTx() *Tx {
	if len(d.Txs) == 0 {
		return nil
	}
	return d.Txs[len(d.Txs)-1]
}

// Tx implements pgx.Tx. Commit and Rollback track state; the query methods
// are never reached when repositories are faked out, so they panic.
type Tx struct {
	Committed  bool
	RolledBack bool
	CommitErr  error
}

func (t *Tx) Commit(ctx context.Context) error {
	if t.Committed || t.RolledBack {
		return pgx.ErrTxClosed
	}
	if t.CommitErr != nil {
		return t.CommitErr
	}
	t.Committed = true
	return nil
}

func (t *Tx) Rollback(ctx context.Context) error {
	if t.Committed || t.RolledBack {
		return pgx.ErrTxClosed
	}
	t.RolledBack = true
	return nil
}

func (t *Tx) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("dbtest: nested transactions not supported")
}

func (t *Tx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("dbtest: CopyFrom not implemented")
}

func (t *Tx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("dbtest: SendBatch not implemented")
}

func (t *Tx) LargeObjects() pgx.LargeObjects {
	panic("dbtest: LargeObjects not implemented")
}

func (t *Tx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("dbtest: Prepare not implemented")
}

func (t *Tx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	panic("dbtest: Exec not implemented")
}

func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("dbtest: Query not implemented")
}

func (t *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("dbtest: QueryRow not implemented")
}

func (t *Tx) Conn() *pgx.Conn {
	return nil
}
