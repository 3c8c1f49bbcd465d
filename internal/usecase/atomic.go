package usecase

import "context"

// TxRunner executes fn as one atomic unit. The postgres implementation
// opens a storage transaction and hands repositories a tx-bound context;
// the in-memory implementation takes a store-wide lock. fn returning an
// error aborts the unit.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTxRunner runs fn directly. Only for callers that already hold their
// own consistency guarantee.
type NopTxRunner struct{}

func (NopTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
