package storage

import (
	"context"
)

// Committer is the transaction handle behind a Writer. bob.Tx satisfies it.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	Tables

	tx Committer
}

func NewWriter(tx Committer, tables Tables) *Writer {
	return &Writer{
		Tables: tables,
		tx:     tx,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
