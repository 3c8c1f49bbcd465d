package memory

import (
	"context"
	"sync"
)

// TxRunner serializes atomic units against each other with a store-wide
// lock. There is no rollback; callers that need undo perform it
// explicitly inside fn.
type TxRunner struct {
	mu sync.Mutex
}

func NewTxRunner() *TxRunner {
	return &TxRunner{}
}

func (r *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fn(ctx)
}
