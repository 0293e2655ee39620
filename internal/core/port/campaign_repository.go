package port

import (
	"context"
	"iter"
	"time"

	"crowdfund/internal/core/domain"
)

// CampaignStore owns the set of campaigns keyed by a sequential ID.
type CampaignStore interface {
	// Create persists draft and returns its newly assigned ID. IDs start at
	// 1 and are never reused.
	Create(ctx context.Context, draft domain.Campaign) (int64, error)
	// Get returns the campaign with the given ID or domain.ErrNotFound.
	Get(ctx context.Context, id int64) (domain.Campaign, error)
	// SetStatus relabels an active campaign. It fails with
	// domain.ErrCampaignInactive once the campaign has been deactivated.
	SetStatus(ctx context.Context, id int64, status domain.Status) error
	// RecordContribution adds amount to the raised total and reports
	// whether the campaign reached its goal with this call.
	RecordContribution(ctx context.Context, id int64, amount int64) (bool, error)
	// RecordRefund subtracts refunded funds from the raised total.
	RecordRefund(ctx context.Context, id int64, amount int64) error
	// ClaimAndZero returns the raised total and resets it to zero.
	ClaimAndZero(ctx context.Context, id int64) (int64, error)
}

// ContributionLedger owns the ordered contributions of each campaign.
type ContributionLedger interface {
	// Append records a new unrefunded contribution.
	Append(ctx context.Context, campaignID int64, contributor string, amount int64, at time.Time) error
	// ListContributors returns the (contributor, amount) pairs of a
	// campaign in insertion order, refunded entries included. The sequence
	// may be ranged over more than once.
	ListContributors(ctx context.Context, campaignID int64) (iter.Seq2[string, int64], error)
	// RefundOutstanding marks all unrefunded contributions of contributor
	// as refunded and returns their total, or domain.ErrNothingToRefund.
	RefundOutstanding(ctx context.Context, campaignID int64, contributor string) (int64, error)
	// RecordPayout journals funds leaving custody for the campaign. Inside
	// InCampaign the entry commits together with the campaign change that
	// caused it.
	RecordPayout(ctx context.Context, transfer domain.Transfer) error
}

// CampaignRepository is the persistence port of the funding engine.
// Implementations must be concurrency-safe.
type CampaignRepository interface {
	CampaignStore
	ContributionLedger

	// InCampaign runs fn with exclusive access to the campaign id. Changes
	// made through the store and ledger handed to fn are committed together
	// when fn returns nil and discarded otherwise. Calls for different
	// campaigns may run in parallel. domain.ErrNotFound is returned without
	// calling fn when the campaign does not exist.
	InCampaign(ctx context.Context, id int64, fn func(store CampaignStore, ledger ContributionLedger) error) error
}
