package domain

import "time"

// Status is the free-form label of a campaign. The constants below are the
// conventional values; authorized callers may set any other label.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusClosed    Status = "closed"
)

// Known reports whether s is one of the conventional labels.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusClosed:
		return true
	default:
		return false
	}
}

// Campaign represents a funding campaign.
// Amounts are stored in integer units (e.g. cents).
type Campaign struct {
	ID           int64
	Title        string
	Description  string
	Owner        string
	GoalAmount   int64
	AmountRaised int64 // cached sum of non-refunded contributions, zeroed by a claim
	IsActive     bool   // false once the goal is reached, never true again
	Status       Status
	CreatedAt    time.Time
}

// NewCampaign returns a freshly created campaign without an ID. The store
// assigns the ID when the campaign is persisted.
func NewCampaign(title, description, owner string, goal int64, now time.Time) Campaign {
	return Campaign{
		Title:       title,
		Description: description,
		Owner:       owner,
		GoalAmount:  goal,
		IsActive:    true,
		Status:      StatusPending,
		CreatedAt:   now,
	}
}

// SetStatus relabels an active campaign. The label is not validated.
func (c *Campaign) SetStatus(status Status) error {
	if !c.IsActive {
		return ErrCampaignInactive
	}
	c.Status = status
	return nil
}

// RecordContribution adds amount to the raised total. It reports true when
// this contribution made the campaign reach its goal, in which case the
// campaign is deactivated and marked completed.
func (c *Campaign) RecordContribution(amount int64) bool {
	c.AmountRaised += amount
	if c.IsActive && c.AmountRaised >= c.GoalAmount {
		c.IsActive = false
		c.Status = StatusCompleted
		return true
	}
	return false
}

// RecordRefund removes refunded funds from the raised total. It never
// reactivates the campaign.
func (c *Campaign) RecordRefund(amount int64) {
	c.AmountRaised -= amount
	if c.AmountRaised < 0 {
		c.AmountRaised = 0
	}
}

// ClaimAndZero returns the raised total and resets it. It does not check
// the status; callers gate on it.
func (c *Campaign) ClaimAndZero() int64 {
	claimed := c.AmountRaised
	c.AmountRaised = 0
	return claimed
}

// ContributorsVisible reports whether the contributor list may be read.
func (c *Campaign) ContributorsVisible() bool {
	return c.IsActive || c.AmountRaised > 0
}
