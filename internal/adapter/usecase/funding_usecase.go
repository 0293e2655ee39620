package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// FundingUseCase is the campaign funding engine. It composes the campaign
// store, the contribution ledger and the role directory so that every
// operation commits its store and ledger changes together.
type FundingUseCase struct {
	repo       port.CampaignRepository
	identities port.IdentityDirectory
	roles      port.RoleDirectory
	transfer   port.FundsTransfer
	events     port.EventPublisher
	logger     *slog.Logger

	now func() time.Time
}

// NewFundingUseCase wires the engine to its collaborators.
func NewFundingUseCase(
	repo port.CampaignRepository,
	identities port.IdentityDirectory,
	roles port.RoleDirectory,
	transfer port.FundsTransfer,
	events port.EventPublisher,
	logger *slog.Logger,
) *FundingUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &FundingUseCase{
		repo:       repo,
		identities: identities,
		roles:      roles,
		transfer:   transfer,
		events:     events,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ port.FundingUseCase = (*FundingUseCase)(nil)

// CreateCampaign validates the goal and the caller identity, then stores a
// new pending campaign.
func (u *FundingUseCase) CreateCampaign(ctx context.Context, caller string, req port.CreateCampaignReq) (int64, error) {
	if req.GoalAmount <= 0 {
		return 0, domain.ErrInvalidGoal
	}
	ok, err := u.identities.IdentityExists(ctx, caller)
	if err != nil {
		return 0, fmt.Errorf("lookup identity: %w", err)
	}
	if !ok {
		return 0, domain.ErrNoIdentity
	}

	now := u.now()
	id, err := u.repo.Create(ctx, domain.NewCampaign(req.Title, req.Description, caller, req.GoalAmount, now))
	if err != nil {
		return 0, err
	}

	evt := domain.NewEvent(domain.EventCampaignCreated, now)
	evt.CampaignID = id
	evt.Title = req.Title
	evt.Account = caller
	evt.Amount = req.GoalAmount
	u.events.Publish(ctx, evt)
	return id, nil
}

// Contribute appends a contribution and updates the raised total. The call
// that makes the total reach the goal deactivates the campaign and emits a
// completion event next to the funding event. Zero amounts are accepted.
func (u *FundingUseCase) Contribute(ctx context.Context, campaignID int64, contributor string, amount int64) (*port.ContributeResp, error) {
	if amount < 0 {
		return nil, domain.ErrInvalidAmount
	}
	now := u.now()
	var resp port.ContributeResp
	err := u.repo.InCampaign(ctx, campaignID, func(store port.CampaignStore, ledger port.ContributionLedger) error {
		c, err := store.Get(ctx, campaignID)
		if err != nil {
			return err
		}
		if !c.IsActive {
			return domain.ErrCampaignInactive
		}
		if amount > math.MaxInt64-c.AmountRaised {
			return domain.ErrInvalidAmount
		}
		if err = ledger.Append(ctx, campaignID, contributor, amount, now); err != nil {
			return err
		}
		completed, err := store.RecordContribution(ctx, campaignID, amount)
		if err != nil {
			return err
		}
		resp.AmountRaised = c.AmountRaised + amount
		resp.Completed = completed
		return nil
	})
	if err != nil {
		return nil, err
	}

	evt := domain.NewEvent(domain.EventCampaignFunded, now)
	evt.CampaignID = campaignID
	evt.Account = contributor
	evt.Amount = amount
	u.events.Publish(ctx, evt)
	if resp.Completed {
		evt = domain.NewEvent(domain.EventCampaignCompleted, now)
		evt.CampaignID = campaignID
		evt.Amount = resp.AmountRaised
		u.events.Publish(ctx, evt)
	}
	return &resp, nil
}

// GetCampaign returns a campaign by ID.
func (u *FundingUseCase) GetCampaign(ctx context.Context, campaignID int64) (domain.Campaign, error) {
	return u.repo.Get(ctx, campaignID)
}

// GetContributors returns every contribution of an active or funded
// campaign, refunded entries included.
func (u *FundingUseCase) GetContributors(ctx context.Context, campaignID int64) ([]port.Contributor, error) {
	c, err := u.repo.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.ContributorsVisible() {
		return nil, domain.ErrCampaignInactive
	}
	seq, err := u.repo.ListContributors(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	contributors := make([]port.Contributor, 0)
	for account, amount := range seq {
		contributors = append(contributors, port.Contributor{Account: account, Amount: amount})
	}
	return contributors, nil
}

// UpdateStatus sets the status label of an active campaign verbatim.
func (u *FundingUseCase) UpdateStatus(ctx context.Context, campaignID int64, caller string, status domain.Status) error {
	allowed, err := u.hasAnyRole(ctx, caller, domain.RoleSuperAdmin, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}
	err = u.repo.InCampaign(ctx, campaignID, func(store port.CampaignStore, _ port.ContributionLedger) error {
		return store.SetStatus(ctx, campaignID, status)
	})
	if err != nil {
		return err
	}
	if !status.Known() {
		u.logger.Warn("campaign relabelled with unconventional status",
			slog.Int64("campaign_id", campaignID), slog.String("status", string(status)))
	}

	evt := domain.NewEvent(domain.EventCampaignStatusUpdated, u.now())
	evt.CampaignID = campaignID
	evt.Status = status
	u.events.Publish(ctx, evt)
	return nil
}

// Claim pays the raised funds of a completed campaign to its owner and
// resets the raised total. The payout happens inside the campaign
// transaction, so a failed transfer leaves the total untouched. Repeated
// claims succeed and pay out nothing.
func (u *FundingUseCase) Claim(ctx context.Context, campaignID int64, caller string) (int64, error) {
	var claimed int64
	transfer := domain.Transfer{Reference: uuid.New(), CampaignID: campaignID, To: caller, Kind: domain.TransferClaim}
	err := u.settle(ctx, campaignID, &transfer, func(store port.CampaignStore, _ port.ContributionLedger) error {
		c, err := store.Get(ctx, campaignID)
		if err != nil {
			return err
		}
		if c.Owner != caller {
			return domain.ErrNotOwner
		}
		if c.Status != domain.StatusCompleted {
			return domain.ErrCampaignNotCompleted
		}
		claimed, err = store.ClaimAndZero(ctx, campaignID)
		transfer.Amount = claimed
		return err
	})
	if err != nil {
		return 0, err
	}

	evt := domain.NewEvent(domain.EventClaimSuccessful, u.now())
	evt.CampaignID = campaignID
	evt.Account = caller
	evt.Amount = claimed
	u.events.Publish(ctx, evt)
	return claimed, nil
}

// Refund pays back all outstanding contributions of caller. It is allowed
// for any campaign whose status is not "completed".
func (u *FundingUseCase) Refund(ctx context.Context, campaignID int64, caller string) (int64, error) {
	var refunded int64
	transfer := domain.Transfer{Reference: uuid.New(), CampaignID: campaignID, To: caller, Kind: domain.TransferRefund}
	err := u.settle(ctx, campaignID, &transfer, func(store port.CampaignStore, ledger port.ContributionLedger) error {
		c, err := store.Get(ctx, campaignID)
		if err != nil {
			return err
		}
		if c.Status == domain.StatusCompleted {
			return domain.ErrRefundsNotAllowed
		}
		refunded, err = ledger.RefundOutstanding(ctx, campaignID, caller)
		if err != nil {
			return err
		}
		transfer.Amount = refunded
		return store.RecordRefund(ctx, campaignID, refunded)
	})
	if err != nil {
		return 0, err
	}

	evt := domain.NewEvent(domain.EventRefundIssued, u.now())
	evt.CampaignID = campaignID
	evt.Account = caller
	evt.Amount = refunded
	u.events.Publish(ctx, evt)
	return refunded, nil
}

// settle runs mutate, journals the payout and then performs the outbound
// transfer within one campaign transaction. The transfer is the last step
// before commit; a transfer error discards the mutation and the journal
// entry.
func (u *FundingUseCase) settle(ctx context.Context, campaignID int64, transfer *domain.Transfer, mutate func(port.CampaignStore, port.ContributionLedger) error) error {
	transferred := false
	err := u.repo.InCampaign(ctx, campaignID, func(store port.CampaignStore, ledger port.ContributionLedger) error {
		if err := mutate(store, ledger); err != nil {
			return err
		}
		if transfer.Amount == 0 {
			return nil
		}
		if err := ledger.RecordPayout(ctx, *transfer); err != nil {
			return fmt.Errorf("journal payout %s: %w", transfer.Reference, err)
		}
		if err := u.transfer.TransferOut(ctx, *transfer); err != nil {
			u.logger.Warn("funds transfer failed",
				slog.String("reference", transfer.Reference.String()),
				slog.Int64("campaign_id", campaignID),
				slog.String("kind", string(transfer.Kind)),
				slog.Any("error", err))
			return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
		}
		transferred = true
		return nil
	})
	if err != nil && transferred {
		// The money left custody but the state change did not persist.
		u.logger.Error("transfer completed but campaign state was not committed",
			slog.String("reference", transfer.Reference.String()),
			slog.Int64("campaign_id", campaignID),
			slog.String("to", transfer.To),
			slog.Int64("amount", transfer.Amount),
			slog.Any("error", err))
	}
	return err
}

func (u *FundingUseCase) hasAnyRole(ctx context.Context, account string, roles ...domain.Role) (bool, error) {
	for _, role := range roles {
		ok, err := u.roles.HasRole(ctx, account, role)
		if err != nil {
			return false, fmt.Errorf("lookup role %q: %w", role, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
