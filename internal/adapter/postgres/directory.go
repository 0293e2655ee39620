package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Directory stores identities, role sets and profiles in PostgreSQL.
type Directory struct {
	pool *pgxpool.Pool
}

// NewDirectory returns a directory backed by pool.
func NewDirectory(pool *pgxpool.Pool) *Directory {
	return &Directory{pool: pool}
}

var (
	_ port.IdentityDirectory = (*Directory)(nil)
	_ port.RoleDirectory     = (*Directory)(nil)
	_ port.ProfileStore      = (*Directory)(nil)
)

func (d *Directory) IdentityExists(ctx context.Context, account string) (bool, error) {
	var exists bool
	err := d.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM identities WHERE account = $1)`, account).Scan(&exists)
	return exists, err
}

func (d *Directory) GetIdentity(ctx context.Context, account string) (domain.Identity, error) {
	var identity domain.Identity
	err := d.pool.QueryRow(ctx, `SELECT account, identifier, status, verified, created_at, updated_at FROM identities WHERE account = $1`, account).
		Scan(&identity.Account, &identity.Identifier, &identity.Status, &identity.Verified, &identity.CreatedAt, &identity.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Identity{}, fmt.Errorf("identity %q: %w", account, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

func (d *Directory) CreateIdentity(ctx context.Context, identity domain.Identity) error {
	tag, err := d.pool.Exec(ctx, `INSERT INTO identities (account, identifier, status, verified, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (account) DO NOTHING`,
		identity.Account, identity.Identifier, identity.Status, identity.Verified, identity.CreatedAt, identity.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("identity %q: %w", identity.Account, domain.ErrIdentityExists)
	}
	return nil
}

func (d *Directory) UpdateIdentity(ctx context.Context, identity domain.Identity) error {
	tag, err := d.pool.Exec(ctx, `UPDATE identities SET identifier = $2, status = $3, verified = $4, updated_at = $5 WHERE account = $1`,
		identity.Account, identity.Identifier, identity.Status, identity.Verified, identity.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("identity %q: %w", identity.Account, domain.ErrNotFound)
	}
	return nil
}

func (d *Directory) HasRole(ctx context.Context, account string, role domain.Role) (bool, error) {
	var ok bool
	err := d.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM account_roles WHERE account = $1 AND role = $2)`, account, string(role)).Scan(&ok)
	return ok, err
}

func (d *Directory) Grant(ctx context.Context, account string, role domain.Role) (bool, error) {
	tag, err := d.pool.Exec(ctx, `INSERT INTO account_roles (account, role, granted_at) VALUES ($1, $2, now()) ON CONFLICT (account, role) DO NOTHING`,
		account, string(role))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Roles returns the role set of account in grant order.
func (d *Directory) Roles(ctx context.Context, account string) ([]domain.Role, error) {
	rows, err := d.pool.Query(ctx, `SELECT role FROM account_roles WHERE account = $1 ORDER BY id`, account)
	if err != nil {
		return nil, err
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	roles := make([]domain.Role, 0, len(names))
	for _, n := range names {
		roles = append(roles, domain.Role(n))
	}
	return roles, nil
}

func (d *Directory) PutProfile(ctx context.Context, profile domain.Profile) error {
	_, err := d.pool.Exec(ctx, `INSERT INTO profiles (account, metadata, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (account) DO UPDATE SET metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`,
		profile.Account, profile.Metadata, profile.UpdatedAt)
	return err
}

func (d *Directory) GetProfile(ctx context.Context, account string) (domain.Profile, error) {
	profile := domain.Profile{Account: account}
	err := d.pool.QueryRow(ctx, `SELECT metadata, updated_at FROM profiles WHERE account = $1`, account).
		Scan(&profile.Metadata, &profile.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, fmt.Errorf("profile %q: %w", account, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}
