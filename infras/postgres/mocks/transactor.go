package mocks

import (
	"context"
	"stayadmin/infras/postgres"
)

// Transactor runs the callback with a nil transaction, for use with mocked repositories.
type Transactor struct {
	// CommitErr is returned after a successful callback, standing in for a failed commit.
	CommitErr error
	Calls     int
	// Committed counts callbacks that ended in a successful commit.
	Committed int
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

// WithinTx implements postgres.Transactor.
func (t *Transactor) WithinTx(ctx context.Context, fn postgres.TxFunc) error {
	t.Calls++

	if err := fn(ctx, nil); err != nil {
		return err
	}

	if t.CommitErr != nil {
		return t.CommitErr
	}

	t.Committed++

	return nil
}
