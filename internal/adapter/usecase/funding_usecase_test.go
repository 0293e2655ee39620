package usecase

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fundingFixture struct {
	svc        *FundingUseCase
	repo       *memory.CampaignRepository
	book       *memory.PayoutBook
	identities *mocks.MockIdentityDirectory
	roles      *mocks.MockRoleDirectory

	mu     sync.Mutex
	events []domain.Event
}

func newFundingFixture(t *testing.T) *fundingFixture {
	t.Helper()
	f := &fundingFixture{
		repo:       memory.NewCampaignRepository(),
		book:       memory.NewPayoutBook(),
		identities: mocks.NewMockIdentityDirectory(t),
		roles:      mocks.NewMockRoleDirectory(t),
	}
	pub := mocks.NewMockEventPublisher(t)
	pub.EXPECT().
		Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, evt domain.Event) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, evt)
		}).
		Maybe()
	f.svc = NewFundingUseCase(f.repo, f.identities, f.roles, f.book, pub, nil)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func (f *fundingFixture) createCampaign(t *testing.T, owner string, goal int64) int64 {
	t.Helper()
	f.identities.EXPECT().IdentityExists(mock.Anything, owner).Return(true, nil).Maybe()
	id, err := f.svc.CreateCampaign(context.Background(), owner, port.CreateCampaignReq{
		Title:       "Community garden",
		Description: "Raised beds for the school",
		GoalAmount:  goal,
	})
	require.NoError(t, err)
	return id
}

func (f *fundingFixture) eventTypes() []domain.EventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]domain.EventType, 0, len(f.events))
	for _, evt := range f.events {
		types = append(types, evt.Type)
	}
	return types
}

func (f *fundingFixture) lastEvent() domain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events[len(f.events)-1]
}

func TestCreateCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive goal", func(t *testing.T) {
		f := newFundingFixture(t)
		for _, goal := range []int64{0, -5} {
			_, err := f.svc.CreateCampaign(ctx, "alice", port.CreateCampaignReq{GoalAmount: goal})
			require.ErrorIs(t, err, domain.ErrInvalidGoal)
		}
	})

	t.Run("requires identity", func(t *testing.T) {
		f := newFundingFixture(t)
		f.identities.EXPECT().IdentityExists(mock.Anything, "mallory").Return(false, nil)
		_, err := f.svc.CreateCampaign(ctx, "mallory", port.CreateCampaignReq{GoalAmount: 10})
		require.ErrorIs(t, err, domain.ErrNoIdentity)
		require.Empty(t, f.eventTypes())
	})

	t.Run("assigns sequential ids", func(t *testing.T) {
		f := newFundingFixture(t)
		first := f.createCampaign(t, "alice", 100)
		second := f.createCampaign(t, "alice", 50)
		require.Equal(t, int64(1), first)
		require.Equal(t, int64(2), second)

		c, err := f.svc.GetCampaign(ctx, first)
		require.NoError(t, err)
		require.Equal(t, "alice", c.Owner)
		require.Equal(t, int64(100), c.GoalAmount)
		require.Zero(t, c.AmountRaised)
		require.True(t, c.IsActive)
		require.Equal(t, domain.StatusPending, c.Status)
		require.Equal(t, testNow, c.CreatedAt)

		evt := f.lastEvent()
		require.Equal(t, domain.EventCampaignCreated, evt.Type)
		require.Equal(t, second, evt.CampaignID)
		require.Equal(t, int64(50), evt.Amount)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		f := newFundingFixture(t)
		_, err := f.svc.GetCampaign(ctx, 42)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestContribute(t *testing.T) {
	ctx := context.Background()

	t.Run("accumulates below goal", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		var sum int64
		for _, amount := range []int64{10, 0, 25, 30} {
			resp, err := f.svc.Contribute(ctx, id, "bob", amount)
			require.NoError(t, err)
			sum += amount
			require.Equal(t, sum, resp.AmountRaised)
			require.False(t, resp.Completed)
		}
		c, err := f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.Equal(t, int64(65), c.AmountRaised)
		require.True(t, c.IsActive)
		require.Equal(t, domain.StatusPending, c.Status)
	})

	t.Run("goal completion", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)

		_, err := f.svc.Contribute(ctx, id, "bob", 60)
		require.NoError(t, err)
		resp, err := f.svc.Contribute(ctx, id, "carol", 50)
		require.NoError(t, err)
		require.True(t, resp.Completed)
		require.Equal(t, int64(110), resp.AmountRaised)

		c, err := f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.False(t, c.IsActive)
		require.Equal(t, domain.StatusCompleted, c.Status)
		require.Equal(t, int64(110), c.AmountRaised)

		require.Equal(t, []domain.EventType{
			domain.EventCampaignCreated,
			domain.EventCampaignFunded,
			domain.EventCampaignFunded,
			domain.EventCampaignCompleted,
		}, f.eventTypes())
		require.Equal(t, int64(110), f.lastEvent().Amount)

		_, err = f.svc.Contribute(ctx, id, "dave", 1)
		require.ErrorIs(t, err, domain.ErrCampaignInactive)
		c, err = f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.Equal(t, int64(110), c.AmountRaised)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		_, err := f.svc.Contribute(ctx, id, "bob", -1)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("rejects amount overflowing the total", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		_, err := f.svc.Contribute(ctx, id, "bob", 50)
		require.NoError(t, err)

		_, err = f.svc.Contribute(ctx, id, "carol", math.MaxInt64)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
		c, err := f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.Equal(t, int64(50), c.AmountRaised)
		require.True(t, c.IsActive)

		resp, err := f.svc.Contribute(ctx, id, "carol", math.MaxInt64-50)
		require.NoError(t, err)
		require.True(t, resp.Completed)
		require.Equal(t, int64(math.MaxInt64), resp.AmountRaised)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		f := newFundingFixture(t)
		_, err := f.svc.Contribute(ctx, 7, "bob", 1)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("requires owner and completion", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		_, err := f.svc.Contribute(ctx, id, "bob", 99)
		require.NoError(t, err)

		_, err = f.svc.Claim(ctx, id, "bob")
		require.ErrorIs(t, err, domain.ErrNotOwner)
		_, err = f.svc.Claim(ctx, id, "alice")
		require.ErrorIs(t, err, domain.ErrCampaignNotCompleted)
		require.Zero(t, f.book.Balance("alice"))
	})

	t.Run("claims once then zero", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		_, err := f.svc.Contribute(ctx, id, "bob", 60)
		require.NoError(t, err)
		_, err = f.svc.Contribute(ctx, id, "carol", 50)
		require.NoError(t, err)

		claimed, err := f.svc.Claim(ctx, id, "alice")
		require.NoError(t, err)
		require.Equal(t, int64(110), claimed)
		require.Equal(t, int64(110), f.book.Balance("alice"))

		c, err := f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.Zero(t, c.AmountRaised)
		require.Equal(t, domain.StatusCompleted, c.Status)

		claimed, err = f.svc.Claim(ctx, id, "alice")
		require.NoError(t, err)
		require.Zero(t, claimed)
		require.Equal(t, int64(110), f.book.Balance("alice"))
		require.Len(t, f.book.Transfers(), 1)
		payouts, err := f.repo.Payouts(ctx, id)
		require.NoError(t, err)
		require.Equal(t, f.book.Transfers(), payouts)

		evt := f.lastEvent()
		require.Equal(t, domain.EventClaimSuccessful, evt.Type)
		require.Zero(t, evt.Amount)
	})

	t.Run("failed transfer keeps funds claimable", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 10)
		_, err := f.svc.Contribute(ctx, id, "bob", 10)
		require.NoError(t, err)

		f.book.Fail = func(domain.Transfer) error { return errors.New("bank offline") }
		_, err = f.svc.Claim(ctx, id, "alice")
		require.ErrorIs(t, err, domain.ErrTransferFailed)
		c, err := f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.Equal(t, int64(10), c.AmountRaised)
		require.NotEqual(t, domain.EventClaimSuccessful, f.lastEvent().Type)
		payouts, err := f.repo.Payouts(ctx, id)
		require.NoError(t, err)
		require.Empty(t, payouts)

		f.book.Fail = nil
		claimed, err := f.svc.Claim(ctx, id, "alice")
		require.NoError(t, err)
		require.Equal(t, int64(10), claimed)
		payouts, err = f.repo.Payouts(ctx, id)
		require.NoError(t, err)
		require.Len(t, payouts, 1)
		require.Equal(t, domain.TransferClaim, payouts[0].Kind)
	})
}

func TestRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds outstanding once", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		_, err := f.svc.Contribute(ctx, id, "bob", 40)
		require.NoError(t, err)
		_, err = f.svc.Contribute(ctx, id, "carol", 5)
		require.NoError(t, err)

		refunded, err := f.svc.Refund(ctx, id, "bob")
		require.NoError(t, err)
		require.Equal(t, int64(40), refunded)
		require.Equal(t, int64(40), f.book.Balance("bob"))

		c, err := f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.True(t, c.IsActive)
		require.Equal(t, domain.StatusPending, c.Status)
		require.Equal(t, int64(5), c.AmountRaised)

		_, err = f.svc.Refund(ctx, id, "bob")
		require.ErrorIs(t, err, domain.ErrNothingToRefund)
		require.Equal(t, int64(40), f.book.Balance("bob"))

		contributors, err := f.svc.GetContributors(ctx, id)
		require.NoError(t, err)
		require.Equal(t, []port.Contributor{{Account: "bob", Amount: 40}, {Account: "carol", Amount: 5}}, contributors)
	})

	t.Run("sums multiple contributions", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		for _, amount := range []int64{3, 4, 5} {
			_, err := f.svc.Contribute(ctx, id, "bob", amount)
			require.NoError(t, err)
		}
		refunded, err := f.svc.Refund(ctx, id, "bob")
		require.NoError(t, err)
		require.Equal(t, int64(12), refunded)
		require.Equal(t, domain.EventRefundIssued, f.lastEvent().Type)
	})

	t.Run("never contributed", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		_, err := f.svc.Refund(ctx, id, "bob")
		require.ErrorIs(t, err, domain.ErrNothingToRefund)
	})

	t.Run("only zero contributions", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		_, err := f.svc.Contribute(ctx, id, "bob", 0)
		require.NoError(t, err)
		_, err = f.svc.Refund(ctx, id, "bob")
		require.ErrorIs(t, err, domain.ErrNothingToRefund)
	})

	t.Run("not allowed once completed", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 10)
		_, err := f.svc.Contribute(ctx, id, "bob", 10)
		require.NoError(t, err)
		_, err = f.svc.Refund(ctx, id, "bob")
		require.ErrorIs(t, err, domain.ErrRefundsNotAllowed)
		require.Zero(t, f.book.Balance("bob"))
	})

	t.Run("allowed for closed label", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		_, err := f.svc.Contribute(ctx, id, "bob", 20)
		require.NoError(t, err)
		f.roles.EXPECT().HasRole(mock.Anything, "root", domain.RoleSuperAdmin).Return(true, nil)
		require.NoError(t, f.svc.UpdateStatus(ctx, id, "root", domain.StatusClosed))

		refunded, err := f.svc.Refund(ctx, id, "bob")
		require.NoError(t, err)
		require.Equal(t, int64(20), refunded)
	})

	t.Run("failed transfer keeps contributions refundable", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		_, err := f.svc.Contribute(ctx, id, "bob", 30)
		require.NoError(t, err)

		f.book.Fail = func(domain.Transfer) error { return errors.New("bank offline") }
		_, err = f.svc.Refund(ctx, id, "bob")
		require.ErrorIs(t, err, domain.ErrTransferFailed)
		c, err := f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.Equal(t, int64(30), c.AmountRaised)
		payouts, err := f.repo.Payouts(ctx, id)
		require.NoError(t, err)
		require.Empty(t, payouts)

		f.book.Fail = nil
		refunded, err := f.svc.Refund(ctx, id, "bob")
		require.NoError(t, err)
		require.Equal(t, int64(30), refunded)
		payouts, err = f.repo.Payouts(ctx, id)
		require.NoError(t, err)
		require.Len(t, payouts, 1)
		require.Equal(t, domain.Transfer{
			Reference:  payouts[0].Reference,
			CampaignID: id,
			To:         "bob",
			Amount:     30,
			Kind:       domain.TransferRefund,
		}, payouts[0])
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("forbidden without role", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		f.roles.EXPECT().HasRole(mock.Anything, "alice", domain.RoleSuperAdmin).Return(false, nil)
		f.roles.EXPECT().HasRole(mock.Anything, "alice", domain.RoleAdmin).Return(false, nil)

		err := f.svc.UpdateStatus(ctx, id, "alice", domain.StatusActive)
		require.ErrorIs(t, err, domain.ErrForbidden)
		c, err := f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.StatusPending, c.Status)
	})

	t.Run("admin sets any label", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 100)
		f.roles.EXPECT().HasRole(mock.Anything, "ops", domain.RoleSuperAdmin).Return(false, nil)
		f.roles.EXPECT().HasRole(mock.Anything, "ops", domain.RoleAdmin).Return(true, nil)

		for _, status := range []domain.Status{domain.StatusActive, "on hold", domain.StatusClosed} {
			require.NoError(t, f.svc.UpdateStatus(ctx, id, "ops", status))
			c, err := f.svc.GetCampaign(ctx, id)
			require.NoError(t, err)
			require.Equal(t, status, c.Status)
			require.True(t, c.IsActive)
		}
		evt := f.lastEvent()
		require.Equal(t, domain.EventCampaignStatusUpdated, evt.Type)
		require.Equal(t, domain.StatusClosed, evt.Status)
	})

	t.Run("inactive campaign", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 10)
		_, err := f.svc.Contribute(ctx, id, "bob", 10)
		require.NoError(t, err)
		f.roles.EXPECT().HasRole(mock.Anything, "root", domain.RoleSuperAdmin).Return(true, nil)

		err = f.svc.UpdateStatus(ctx, id, "root", domain.StatusActive)
		require.ErrorIs(t, err, domain.ErrCampaignInactive)
		c, err := f.svc.GetCampaign(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.StatusCompleted, c.Status)
	})

	t.Run("role lookup failure", func(t *testing.T) {
		f := newFundingFixture(t)
		id := f.createCampaign(t, "alice", 10)
		f.roles.EXPECT().HasRole(mock.Anything, "root", domain.RoleSuperAdmin).Return(false, errors.New("directory down"))
		err := f.svc.UpdateStatus(ctx, id, "root", domain.StatusActive)
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestGetContributors(t *testing.T) {
	ctx := context.Background()
	f := newFundingFixture(t)
	id := f.createCampaign(t, "alice", 100)

	contributors, err := f.svc.GetContributors(ctx, id)
	require.NoError(t, err)
	require.Empty(t, contributors)

	_, err = f.svc.Contribute(ctx, id, "bob", 70)
	require.NoError(t, err)
	_, err = f.svc.Contribute(ctx, id, "carol", 30)
	require.NoError(t, err)

	// completed but still holding funds
	contributors, err = f.svc.GetContributors(ctx, id)
	require.NoError(t, err)
	require.Len(t, contributors, 2)

	_, err = f.svc.Claim(ctx, id, "alice")
	require.NoError(t, err)
	_, err = f.svc.GetContributors(ctx, id)
	require.ErrorIs(t, err, domain.ErrCampaignInactive)
}

// TestConcurrentContributions ensures the goal is crossed exactly once when
// contributions race.
func TestConcurrentContributions(t *testing.T) {
	ctx := context.Background()
	f := newFundingFixture(t)
	id := f.createCampaign(t, "alice", 10)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	count := 50
	wg.Add(count)
	for range count {
		go func() {
			defer wg.Done()
			_, err := f.svc.Contribute(ctx, id, "bob", 1)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
			} else if errors.Is(err, domain.ErrCampaignInactive) {
				rejected++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 10, accepted)
	require.Equal(t, 40, rejected)
	c, err := f.svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(10), c.AmountRaised)

	completions := 0
	for _, typ := range f.eventTypes() {
		if typ == domain.EventCampaignCompleted {
			completions++
		}
	}
	require.Equal(t, 1, completions)
}
