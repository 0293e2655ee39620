package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Directory keeps identities, role sets and profiles in memory.
type Directory struct {
	mu         sync.RWMutex
	identities map[string]domain.Identity
	roles      map[string][]domain.Role
	profiles   map[string]domain.Profile
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		identities: make(map[string]domain.Identity),
		roles:      make(map[string][]domain.Role),
		profiles:   make(map[string]domain.Profile),
	}
}

var (
	_ port.IdentityDirectory = (*Directory)(nil)
	_ port.RoleDirectory     = (*Directory)(nil)
	_ port.ProfileStore      = (*Directory)(nil)
)

func (d *Directory) IdentityExists(_ context.Context, account string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.identities[account]
	return ok, nil
}

func (d *Directory) GetIdentity(_ context.Context, account string) (domain.Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	identity, ok := d.identities[account]
	if !ok {
		return domain.Identity{}, fmt.Errorf("identity %q: %w", account, domain.ErrNotFound)
	}
	return identity, nil
}

func (d *Directory) CreateIdentity(_ context.Context, identity domain.Identity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.identities[identity.Account]; ok {
		return fmt.Errorf("identity %q: %w", identity.Account, domain.ErrIdentityExists)
	}
	d.identities[identity.Account] = identity
	return nil
}

func (d *Directory) UpdateIdentity(_ context.Context, identity domain.Identity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.identities[identity.Account]; !ok {
		return fmt.Errorf("identity %q: %w", identity.Account, domain.ErrNotFound)
	}
	d.identities[identity.Account] = identity
	return nil
}

func (d *Directory) HasRole(_ context.Context, account string, role domain.Role) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Contains(d.roles[account], role), nil
}

func (d *Directory) Grant(_ context.Context, account string, role domain.Role) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if slices.Contains(d.roles[account], role) {
		return false, nil
	}
	d.roles[account] = append(d.roles[account], role)
	return true, nil
}

func (d *Directory) Roles(_ context.Context, account string) ([]domain.Role, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.roles[account]), nil
}

func (d *Directory) PutProfile(_ context.Context, profile domain.Profile) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	profile.Metadata = maps.Clone(profile.Metadata)
	d.profiles[profile.Account] = profile
	return nil
}

func (d *Directory) GetProfile(_ context.Context, account string) (domain.Profile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	profile, ok := d.profiles[account]
	if !ok {
		return domain.Profile{}, fmt.Errorf("profile %q: %w", account, domain.ErrNotFound)
	}
	profile.Metadata = maps.Clone(profile.Metadata)
	return profile, nil
}
