package postgres

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

var errCreateInTx = errors.New("campaigns cannot be created inside a campaign transaction")

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const campaignColumns = `id, title, description, owner, goal_amount, amount_raised, is_active, status, created_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// Create inserts a campaign. IDs come from a sequence and are never reused.
func (r *CampaignRepository) Create(ctx context.Context, draft domain.Campaign) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO campaigns (title, description, owner, goal_amount, amount_raised, is_active, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		draft.Title, draft.Description, draft.Owner, draft.GoalAmount, draft.AmountRaised, draft.IsActive, string(draft.Status), draft.CreatedAt).
		Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert campaign: %w", err)
	}
	return id, nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	return getCampaign(ctx, r.pool, id, false)
}

func (r *CampaignRepository) SetStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.InCampaign(ctx, id, func(store port.CampaignStore, _ port.ContributionLedger) error {
		return store.SetStatus(ctx, id, status)
	})
}

func (r *CampaignRepository) RecordContribution(ctx context.Context, id int64, amount int64) (completed bool, err error) {
	err = r.InCampaign(ctx, id, func(store port.CampaignStore, _ port.ContributionLedger) error {
		completed, err = store.RecordContribution(ctx, id, amount)
		return err
	})
	return completed, err
}

func (r *CampaignRepository) RecordRefund(ctx context.Context, id int64, amount int64) error {
	return r.InCampaign(ctx, id, func(store port.CampaignStore, _ port.ContributionLedger) error {
		return store.RecordRefund(ctx, id, amount)
	})
}

func (r *CampaignRepository) ClaimAndZero(ctx context.Context, id int64) (claimed int64, err error) {
	err = r.InCampaign(ctx, id, func(store port.CampaignStore, _ port.ContributionLedger) error {
		claimed, err = store.ClaimAndZero(ctx, id)
		return err
	})
	return claimed, err
}

func (r *CampaignRepository) Append(ctx context.Context, campaignID int64, contributor string, amount int64, at time.Time) error {
	return r.InCampaign(ctx, campaignID, func(_ port.CampaignStore, ledger port.ContributionLedger) error {
		return ledger.Append(ctx, campaignID, contributor, amount, at)
	})
}

// ListContributors loads the ledger of a campaign in insertion order.
func (r *CampaignRepository) ListContributors(ctx context.Context, campaignID int64) (iter.Seq2[string, int64], error) {
	if _, err := getCampaign(ctx, r.pool, campaignID, false); err != nil {
		return nil, err
	}
	return listContributors(ctx, r.pool, campaignID)
}

func (r *CampaignRepository) RefundOutstanding(ctx context.Context, campaignID int64, contributor string) (total int64, err error) {
	err = r.InCampaign(ctx, campaignID, func(_ port.CampaignStore, ledger port.ContributionLedger) error {
		total, err = ledger.RefundOutstanding(ctx, campaignID, contributor)
		return err
	})
	return total, err
}

// InCampaign runs fn in a transaction holding the row lock of the
// campaign. Read committed isolation is enough because every writer takes
// the same lock first.
func (r *CampaignRepository) InCampaign(ctx context.Context, id int64, fn func(port.CampaignStore, port.ContributionLedger) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	// no-op after a successful commit
	defer func() { _ = tx.Rollback(ctx) }()
	// lock campaign
	if _, err = getCampaign(ctx, tx, id, true); err != nil {
		return err
	}
	t := &campaignTx{tx: tx, id: id}
	if err = fn(t, t); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit campaign %d: %w", id, err)
	}
	return nil
}

// campaignTx is the store and ledger view of a locked campaign.
type campaignTx struct {
	tx pgx.Tx
	id int64
}

func (t *campaignTx) check(id int64) error {
	if id != t.id {
		return fmt.Errorf("campaign %d is outside of the transaction for campaign %d: %w", id, t.id, domain.ErrNotFound)
	}
	return nil
}

// mutate applies fn to the locked campaign and writes the mutable columns
// back.
func (t *campaignTx) mutate(ctx context.Context, id int64, fn func(*domain.Campaign) error) error {
	if err := t.check(id); err != nil {
		return err
	}
	c, err := getCampaign(ctx, t.tx, id, false)
	if err != nil {
		return err
	}
	if err = fn(&c); err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `UPDATE campaigns SET amount_raised = $1, is_active = $2, status = $3 WHERE id = $4`,
		c.AmountRaised, c.IsActive, string(c.Status), id)
	return err
}

func (t *campaignTx) Create(context.Context, domain.Campaign) (int64, error) {
	return 0, errCreateInTx
}

func (t *campaignTx) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	if err := t.check(id); err != nil {
		return domain.Campaign{}, err
	}
	return getCampaign(ctx, t.tx, id, false)
}

func (t *campaignTx) SetStatus(ctx context.Context, id int64, status domain.Status) error {
	return t.mutate(ctx, id, func(c *domain.Campaign) error {
		return c.SetStatus(status)
	})
}

func (t *campaignTx) RecordContribution(ctx context.Context, id int64, amount int64) (completed bool, err error) {
	err = t.mutate(ctx, id, func(c *domain.Campaign) error {
		completed = c.RecordContribution(amount)
		return nil
	})
	return completed, err
}

func (t *campaignTx) RecordRefund(ctx context.Context, id int64, amount int64) error {
	return t.mutate(ctx, id, func(c *domain.Campaign) error {
		c.RecordRefund(amount)
		return nil
	})
}

func (t *campaignTx) ClaimAndZero(ctx context.Context, id int64) (claimed int64, err error) {
	err = t.mutate(ctx, id, func(c *domain.Campaign) error {
		claimed = c.ClaimAndZero()
		return nil
	})
	return claimed, err
}

func (t *campaignTx) Append(ctx context.Context, campaignID int64, contributor string, amount int64, at time.Time) error {
	if err := t.check(campaignID); err != nil {
		return err
	}
	_, err := t.tx.Exec(ctx, `INSERT INTO contributions (campaign_id, contributor, amount, created_at, refunded) VALUES ($1,$2,$3,$4,FALSE)`,
		campaignID, contributor, amount, at)
	return err
}

func (t *campaignTx) ListContributors(ctx context.Context, campaignID int64) (iter.Seq2[string, int64], error) {
	if err := t.check(campaignID); err != nil {
		return nil, err
	}
	return listContributors(ctx, t.tx, campaignID)
}

// RefundOutstanding marks the contributor's open entries in one statement.
// A zero total is reported as an error, which rolls the marking back.
func (t *campaignTx) RefundOutstanding(ctx context.Context, campaignID int64, contributor string) (int64, error) {
	if err := t.check(campaignID); err != nil {
		return 0, err
	}
	rows, err := t.tx.Query(ctx, `UPDATE contributions SET refunded = TRUE
WHERE campaign_id = $1 AND contributor = $2 AND NOT refunded RETURNING amount`, campaignID, contributor)
	if err != nil {
		return 0, err
	}
	amounts, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return 0, err
	}
	var total int64
	for _, a := range amounts {
		total += a
	}
	if total == 0 {
		return 0, domain.ErrNothingToRefund
	}
	return total, nil
}

func getCampaign(ctx context.Context, q querier, id int64, forUpdate bool) (domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var (
		c      domain.Campaign
		status string
	)
	err := q.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Title, &c.Description, &c.Owner, &c.GoalAmount, &c.AmountRaised, &c.IsActive, &status, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Status = domain.Status(status)
	return c, nil
}

type contributorRow struct {
	Contributor string
	Amount      int64
}

func listContributors(ctx context.Context, q querier, campaignID int64) (iter.Seq2[string, int64], error) {
	rows, err := q.Query(ctx, `SELECT contributor, amount FROM contributions WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[contributorRow])
	if err != nil {
		return nil, err
	}
	return func(yield func(string, int64) bool) {
		for _, e := range entries {
			if !yield(e.Contributor, e.Amount) {
				return
			}
		}
	}, nil
}
