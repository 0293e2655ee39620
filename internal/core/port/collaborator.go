package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// IdentityDirectory stores account identities.
type IdentityDirectory interface {
	// IdentityExists reports whether account has a registered identity.
	IdentityExists(ctx context.Context, account string) (bool, error)
	// GetIdentity returns the identity of account or domain.ErrNotFound.
	GetIdentity(ctx context.Context, account string) (domain.Identity, error)
	// CreateIdentity stores a new identity or fails with
	// domain.ErrIdentityExists.
	CreateIdentity(ctx context.Context, identity domain.Identity) error
	// UpdateIdentity replaces an existing identity or fails with
	// domain.ErrNotFound.
	UpdateIdentity(ctx context.Context, identity domain.Identity) error
}

// RoleDirectory stores the role set of each account.
type RoleDirectory interface {
	HasRole(ctx context.Context, account string, role domain.Role) (bool, error)
	// Grant adds role to the role set of account unless already present.
	// It reports whether the role was added.
	Grant(ctx context.Context, account string, role domain.Role) (bool, error)
	Roles(ctx context.Context, account string) ([]domain.Role, error)
}

// ProfileStore keeps an opaque metadata record per account.
type ProfileStore interface {
	PutProfile(ctx context.Context, profile domain.Profile) error
	// GetProfile returns the profile of account or domain.ErrNotFound.
	GetProfile(ctx context.Context, account string) (domain.Profile, error)
}

// FundsTransfer moves funds out of campaign custody. A transfer either
// fully succeeds or returns an error and moves nothing.
type FundsTransfer interface {
	TransferOut(ctx context.Context, transfer domain.Transfer) error
}

// EventPublisher delivers committed funding events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, evt domain.Event)
}
