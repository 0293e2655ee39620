package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// FundingUseCase defines the operations of the campaign funding engine.
// This is the primary port used by inbound adapters. Every mutating
// operation either commits all of its effects or returns exactly one error
// and changes nothing.
type FundingUseCase interface {
	// CreateCampaign creates a campaign owned by caller. The caller must
	// have a registered identity and goal must be positive.
	CreateCampaign(ctx context.Context, caller string, req CreateCampaignReq) (int64, error)

	// Contribute adds amount to an active campaign on behalf of
	// contributor. Funds are assumed to be in custody already.
	Contribute(ctx context.Context, campaignID int64, contributor string, amount int64) (*ContributeResp, error)

	// GetCampaign returns a campaign by ID.
	GetCampaign(ctx context.Context, campaignID int64) (domain.Campaign, error)

	// GetContributors returns the raw contribution list of a campaign that
	// is still active or holds raised funds.
	GetContributors(ctx context.Context, campaignID int64) ([]Contributor, error)

	// UpdateStatus relabels an active campaign. Only Super Admin and Admin
	// callers are allowed.
	UpdateStatus(ctx context.Context, campaignID int64, caller string, status domain.Status) error

	// Claim pays out the raised funds of a completed campaign to its owner.
	Claim(ctx context.Context, campaignID int64, caller string) (int64, error)

	// Refund pays back all outstanding contributions of caller to a
	// campaign that is not completed.
	Refund(ctx context.Context, campaignID int64, caller string) (int64, error)
}

// AccessUseCase covers the identity, profile and role collaborators.
type AccessUseCase interface {
	RegisterIdentity(ctx context.Context, account, identifier string) (domain.Identity, error)
	UpdateIdentity(ctx context.Context, account string, req UpdateIdentityReq) (domain.Identity, error)
	GetIdentity(ctx context.Context, account string) (domain.Identity, error)
	SetProfile(ctx context.Context, account string, metadata map[string]string) (domain.Profile, error)
	GetProfile(ctx context.Context, account string) (domain.Profile, error)
	// AssignRole grants role to account. Only Super Admin callers are
	// allowed; granting a held role is a no-op.
	AssignRole(ctx context.Context, caller, account string, role domain.Role) (bool, error)
	Roles(ctx context.Context, account string) ([]domain.Role, error)
	// Bootstrap seeds the Super Admin role for the root account.
	Bootstrap(ctx context.Context, rootAccount string) error
}

type CreateCampaignReq struct {
	Title       string
	Description string
	GoalAmount  int64
}

// ContributeResp reports the state of the campaign after a contribution.
type ContributeResp struct {
	AmountRaised int64
	Completed    bool
}

// Contributor is one entry of a campaign's contribution list.
type Contributor struct {
	Account string
	Amount  int64
}

type UpdateIdentityReq struct {
	Identifier string
	Status     string
	Verified   bool
}
