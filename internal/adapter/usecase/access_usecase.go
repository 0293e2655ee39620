package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// AccessUseCase manages the identity, profile and role records the funding
// engine consults.
type AccessUseCase struct {
	identities port.IdentityDirectory
	roles      port.RoleDirectory
	profiles   port.ProfileStore
	events     port.EventPublisher
	logger     *slog.Logger

	now func() time.Time
}

// NewAccessUseCase creates the use case over the given directories.
func NewAccessUseCase(
	identities port.IdentityDirectory,
	roles port.RoleDirectory,
	profiles port.ProfileStore,
	events port.EventPublisher,
	logger *slog.Logger,
) *AccessUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessUseCase{
		identities: identities,
		roles:      roles,
		profiles:   profiles,
		events:     events,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ port.AccessUseCase = (*AccessUseCase)(nil)

func (u *AccessUseCase) RegisterIdentity(ctx context.Context, account, identifier string) (domain.Identity, error) {
	now := u.now()
	identity := domain.Identity{
		Account:    account,
		Identifier: identifier,
		Status:     domain.IdentityStatusRegistered,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.identities.CreateIdentity(ctx, identity); err != nil {
		return domain.Identity{}, err
	}
	evt := domain.NewEvent(domain.EventIdentityRegistered, now)
	evt.Account = account
	u.events.Publish(ctx, evt)
	return identity, nil
}

// UpdateIdentity overwrites the mutable fields of an existing identity.
func (u *AccessUseCase) UpdateIdentity(ctx context.Context, account string, req port.UpdateIdentityReq) (domain.Identity, error) {
	identity, err := u.identities.GetIdentity(ctx, account)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Identity{}, domain.ErrNoIdentity
	}
	if err != nil {
		return domain.Identity{}, err
	}
	identity.Identifier = req.Identifier
	identity.Status = req.Status
	identity.Verified = req.Verified
	identity.UpdatedAt = u.now()
	if err = u.identities.UpdateIdentity(ctx, identity); err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

func (u *AccessUseCase) GetIdentity(ctx context.Context, account string) (domain.Identity, error) {
	return u.identities.GetIdentity(ctx, account)
}

func (u *AccessUseCase) SetProfile(ctx context.Context, account string, metadata map[string]string) (domain.Profile, error) {
	profile := domain.Profile{Account: account, Metadata: metadata, UpdatedAt: u.now()}
	if profile.Metadata == nil {
		profile.Metadata = map[string]string{}
	}
	if err := u.profiles.PutProfile(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (u *AccessUseCase) GetProfile(ctx context.Context, account string) (domain.Profile, error) {
	return u.profiles.GetProfile(ctx, account)
}

// AssignRole grants role to account when caller is a Super Admin. The
// assignment is recorded as an event even when the role was already held.
func (u *AccessUseCase) AssignRole(ctx context.Context, caller, account string, role domain.Role) (bool, error) {
	ok, err := u.roles.HasRole(ctx, caller, domain.RoleSuperAdmin)
	if err != nil {
		return false, fmt.Errorf("lookup role: %w", err)
	}
	if !ok {
		return false, domain.ErrForbidden
	}
	granted, err := u.roles.Grant(ctx, account, role)
	if err != nil {
		return false, err
	}

	evt := domain.NewEvent(domain.EventRoleAssigned, u.now())
	evt.Account = account
	evt.Role = role
	evt.Granted = granted
	u.events.Publish(ctx, evt)
	return granted, nil
}

func (u *AccessUseCase) Roles(ctx context.Context, account string) ([]domain.Role, error) {
	return u.roles.Roles(ctx, account)
}

// Bootstrap grants Super Admin to rootAccount. It is safe to call on every
// start.
func (u *AccessUseCase) Bootstrap(ctx context.Context, rootAccount string) error {
	if rootAccount == "" {
		return errors.New("root account must not be empty")
	}
	granted, err := u.roles.Grant(ctx, rootAccount, domain.RoleSuperAdmin)
	if err != nil {
		return fmt.Errorf("bootstrap root account: %w", err)
	}
	if granted {
		u.logger.Info("root account bootstrapped", slog.String("account", rootAccount))
	}
	return nil
}
