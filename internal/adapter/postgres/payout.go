package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// RecordPayout journals a payout in its own campaign transaction.
func (r *CampaignRepository) RecordPayout(ctx context.Context, transfer domain.Transfer) error {
	return r.InCampaign(ctx, transfer.CampaignID, func(_ port.CampaignStore, ledger port.ContributionLedger) error {
		return ledger.RecordPayout(ctx, transfer)
	})
}

// Payouts returns the payout journal of a campaign in insertion order.
func (r *CampaignRepository) Payouts(ctx context.Context, campaignID int64) ([]domain.Transfer, error) {
	rows, err := r.pool.Query(ctx, `SELECT reference, campaign_id, recipient, amount, kind
FROM payouts WHERE campaign_id = $1 ORDER BY created_at, reference`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transfer, error) {
		var (
			t         domain.Transfer
			reference string
			kind      string
		)
		if err := row.Scan(&reference, &t.CampaignID, &t.To, &t.Amount, &kind); err != nil {
			return t, err
		}
		ref, err := uuid.Parse(reference)
		if err != nil {
			return t, fmt.Errorf("payout reference %q: %w", reference, err)
		}
		t.Reference = ref
		t.Kind = domain.TransferKind(kind)
		return t, nil
	})
}

// RecordPayout inserts the journal row on the transaction that holds the
// campaign row lock. The foreign key check on campaign_id needs a lock on
// that row, so the insert must not run on another connection.
func (t *campaignTx) RecordPayout(ctx context.Context, transfer domain.Transfer) error {
	if err := t.check(transfer.CampaignID); err != nil {
		return err
	}
	_, err := t.tx.Exec(ctx, `INSERT INTO payouts (reference, campaign_id, recipient, amount, kind, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		transfer.Reference.String(), transfer.CampaignID, transfer.To, transfer.Amount, string(transfer.Kind), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record payout %s: %w", transfer.Reference, err)
	}
	return nil
}
