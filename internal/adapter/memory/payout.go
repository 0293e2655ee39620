package memory

import (
	"context"
	"slices"
	"sync"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// PayoutBook implements port.FundsTransfer by crediting in-memory balances.
// It is used for local runs and tests.
type PayoutBook struct {
	mu        sync.Mutex
	balances  map[string]int64
	transfers []domain.Transfer

	// Fail, when set, is consulted before every transfer. A non-nil result
	// aborts the transfer.
	Fail func(domain.Transfer) error
}

// NewPayoutBook returns an empty book.
func NewPayoutBook() *PayoutBook {
	return &PayoutBook{balances: make(map[string]int64)}
}

var _ port.FundsTransfer = (*PayoutBook)(nil)

func (b *PayoutBook) TransferOut(ctx context.Context, transfer domain.Transfer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Fail != nil {
		if err := b.Fail(transfer); err != nil {
			return err
		}
	}
	b.balances[transfer.To] += transfer.Amount
	b.transfers = append(b.transfers, transfer)
	return nil
}

// Balance returns the total paid out to account.
func (b *PayoutBook) Balance(account string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[account]
}

// Transfers returns all completed transfers in order.
func (b *PayoutBook) Transfers() []domain.Transfer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.transfers)
}
