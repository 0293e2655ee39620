package db

import (
	"context"
	"errors"
	"fmt"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Seed creates demo data through the use cases: an identity for the root
// account and each demo owner, an Admin, and a few campaigns with
// contributions. It can be run repeatedly; identities that already exist
// are kept.
func Seed(ctx context.Context, access port.AccessUseCase, funding port.FundingUseCase, rootAccount string) error {
	if err := access.Bootstrap(ctx, rootAccount); err != nil {
		return err
	}
	owners := []string{rootAccount, "demo-owner-1", "demo-owner-2"}
	for _, account := range owners {
		_, err := access.RegisterIdentity(ctx, account, "seed:"+account)
		if err != nil && !errors.Is(err, domain.ErrIdentityExists) {
			return fmt.Errorf("seed identity %s: %w", account, err)
		}
	}
	if _, err := access.AssignRole(ctx, rootAccount, "demo-admin", domain.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	for i, owner := range owners[1:] {
		id, err := funding.CreateCampaign(ctx, owner, port.CreateCampaignReq{
			Title:       fmt.Sprintf("Campaign %d", i+1),
			Description: "Seeded demo campaign",
			GoalAmount:  int64(10000 * (i + 1)),
		})
		if err != nil {
			return fmt.Errorf("seed campaign: %w", err)
		}
		for j := 1; j <= 3; j++ {
			backer := fmt.Sprintf("backer-%d", j)
			if _, err = funding.Contribute(ctx, id, backer, int64(500*j)); err != nil {
				return fmt.Errorf("seed contribution: %w", err)
			}
		}
	}
	return nil
}
