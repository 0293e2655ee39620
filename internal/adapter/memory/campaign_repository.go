package memory

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

var errCreateInTx = errors.New("campaigns cannot be created inside a campaign transaction")

// CampaignRepository implements port.CampaignRepository in process memory.
// Each campaign has its own lock, so work on different campaigns does not
// contend.
type CampaignRepository struct {
	mu        sync.RWMutex
	lastID    int64
	campaigns map[int64]*campaignEntry

	lastContributionID atomic.Int64
}

type campaignEntry struct {
	// tx is held for the whole of a campaign transaction.
	tx sync.Mutex
	// mu guards the committed state below.
	mu            sync.RWMutex
	campaign      domain.Campaign
	contributions []domain.Contribution
	payouts       []domain.Transfer
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{campaigns: make(map[int64]*campaignEntry)}
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// Create stores draft under the next sequential ID.
func (r *CampaignRepository) Create(_ context.Context, draft domain.Campaign) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	draft.ID = r.lastID
	r.campaigns[draft.ID] = &campaignEntry{campaign: draft}
	return draft.ID, nil
}

// Get returns the committed state of a campaign.
func (r *CampaignRepository) Get(_ context.Context, id int64) (domain.Campaign, error) {
	e, err := r.entry(id)
	if err != nil {
		return domain.Campaign{}, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.campaign, nil
}

// SetStatus relabels a campaign in its own transaction.
func (r *CampaignRepository) SetStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.InCampaign(ctx, id, func(store port.CampaignStore, _ port.ContributionLedger) error {
		return store.SetStatus(ctx, id, status)
	})
}

// RecordContribution updates the raised total in its own transaction.
func (r *CampaignRepository) RecordContribution(ctx context.Context, id int64, amount int64) (completed bool, err error) {
	err = r.InCampaign(ctx, id, func(store port.CampaignStore, _ port.ContributionLedger) error {
		completed, err = store.RecordContribution(ctx, id, amount)
		return err
	})
	return completed, err
}

// RecordRefund updates the raised total in its own transaction.
func (r *CampaignRepository) RecordRefund(ctx context.Context, id int64, amount int64) error {
	return r.InCampaign(ctx, id, func(store port.CampaignStore, _ port.ContributionLedger) error {
		return store.RecordRefund(ctx, id, amount)
	})
}

// ClaimAndZero resets the raised total in its own transaction.
func (r *CampaignRepository) ClaimAndZero(ctx context.Context, id int64) (claimed int64, err error) {
	err = r.InCampaign(ctx, id, func(store port.CampaignStore, _ port.ContributionLedger) error {
		claimed, err = store.ClaimAndZero(ctx, id)
		return err
	})
	return claimed, err
}

// Append records a contribution in its own transaction.
func (r *CampaignRepository) Append(ctx context.Context, campaignID int64, contributor string, amount int64, at time.Time) error {
	return r.InCampaign(ctx, campaignID, func(_ port.CampaignStore, ledger port.ContributionLedger) error {
		return ledger.Append(ctx, campaignID, contributor, amount, at)
	})
}

// ListContributors returns a sequence over a snapshot of the ledger taken
// at call time.
func (r *CampaignRepository) ListContributors(_ context.Context, campaignID int64) (iter.Seq2[string, int64], error) {
	e, err := r.entry(campaignID)
	if err != nil {
		return nil, err
	}
	e.mu.RLock()
	snapshot := slices.Clone(e.contributions)
	e.mu.RUnlock()
	return contributorSeq(snapshot), nil
}

// RefundOutstanding marks contributions refunded in its own transaction.
func (r *CampaignRepository) RefundOutstanding(ctx context.Context, campaignID int64, contributor string) (total int64, err error) {
	err = r.InCampaign(ctx, campaignID, func(_ port.CampaignStore, ledger port.ContributionLedger) error {
		total, err = ledger.RefundOutstanding(ctx, campaignID, contributor)
		return err
	})
	return total, err
}

// RecordPayout journals a payout in its own transaction.
func (r *CampaignRepository) RecordPayout(ctx context.Context, transfer domain.Transfer) error {
	return r.InCampaign(ctx, transfer.CampaignID, func(_ port.CampaignStore, ledger port.ContributionLedger) error {
		return ledger.RecordPayout(ctx, transfer)
	})
}

// Payouts returns the committed payout journal of a campaign.
func (r *CampaignRepository) Payouts(_ context.Context, campaignID int64) ([]domain.Transfer, error) {
	e, err := r.entry(campaignID)
	if err != nil {
		return nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.payouts), nil
}

// InCampaign stages all changes made by fn on a private copy of the
// campaign and publishes them only when fn succeeds.
func (r *CampaignRepository) InCampaign(ctx context.Context, id int64, fn func(port.CampaignStore, port.ContributionLedger) error) error {
	e, err := r.entry(id)
	if err != nil {
		return err
	}
	e.tx.Lock()
	defer e.tx.Unlock()
	if err = ctx.Err(); err != nil {
		return err
	}

	e.mu.RLock()
	tx := &campaignTx{
		repo:          r,
		campaign:      e.campaign,
		contributions: slices.Clone(e.contributions),
		payouts:       slices.Clone(e.payouts),
	}
	e.mu.RUnlock()

	if err = fn(tx, tx); err != nil {
		return err
	}

	e.mu.Lock()
	e.campaign = tx.campaign
	e.contributions = tx.contributions
	e.payouts = tx.payouts
	e.mu.Unlock()
	return nil
}

func (r *CampaignRepository) entry(id int64) (*campaignEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

// campaignTx is the store and ledger view of a single campaign inside
// InCampaign.
type campaignTx struct {
	repo          *CampaignRepository
	campaign      domain.Campaign
	contributions []domain.Contribution
	payouts       []domain.Transfer
}

func (t *campaignTx) check(id int64) error {
	if id != t.campaign.ID {
		return fmt.Errorf("campaign %d is outside of the transaction for campaign %d: %w", id, t.campaign.ID, domain.ErrNotFound)
	}
	return nil
}

func (t *campaignTx) Create(context.Context, domain.Campaign) (int64, error) {
	return 0, errCreateInTx
}

func (t *campaignTx) Get(_ context.Context, id int64) (domain.Campaign, error) {
	if err := t.check(id); err != nil {
		return domain.Campaign{}, err
	}
	return t.campaign, nil
}

func (t *campaignTx) SetStatus(_ context.Context, id int64, status domain.Status) error {
	if err := t.check(id); err != nil {
		return err
	}
	return t.campaign.SetStatus(status)
}

func (t *campaignTx) RecordContribution(_ context.Context, id int64, amount int64) (bool, error) {
	if err := t.check(id); err != nil {
		return false, err
	}
	return t.campaign.RecordContribution(amount), nil
}

func (t *campaignTx) RecordRefund(_ context.Context, id int64, amount int64) error {
	if err := t.check(id); err != nil {
		return err
	}
	t.campaign.RecordRefund(amount)
	return nil
}

func (t *campaignTx) ClaimAndZero(_ context.Context, id int64) (int64, error) {
	if err := t.check(id); err != nil {
		return 0, err
	}
	return t.campaign.ClaimAndZero(), nil
}

func (t *campaignTx) Append(_ context.Context, campaignID int64, contributor string, amount int64, at time.Time) error {
	if err := t.check(campaignID); err != nil {
		return err
	}
	t.contributions = append(t.contributions, domain.Contribution{
		ID:          t.repo.lastContributionID.Add(1),
		CampaignID:  campaignID,
		Contributor: contributor,
		Amount:      amount,
		Timestamp:   at,
	})
	return nil
}

func (t *campaignTx) ListContributors(_ context.Context, campaignID int64) (iter.Seq2[string, int64], error) {
	if err := t.check(campaignID); err != nil {
		return nil, err
	}
	return contributorSeq(slices.Clone(t.contributions)), nil
}

func (t *campaignTx) RefundOutstanding(_ context.Context, campaignID int64, contributor string) (int64, error) {
	if err := t.check(campaignID); err != nil {
		return 0, err
	}
	return domain.RefundOutstanding(t.contributions, contributor)
}

func (t *campaignTx) RecordPayout(_ context.Context, transfer domain.Transfer) error {
	if err := t.check(transfer.CampaignID); err != nil {
		return err
	}
	t.payouts = append(t.payouts, transfer)
	return nil
}

func contributorSeq(contributions []domain.Contribution) iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for _, c := range contributions {
			if !yield(c.Contributor, c.Amount) {
				return
			}
		}
	}
}
