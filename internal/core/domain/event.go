package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a funding event.
type EventType string

const (
	EventCampaignCreated       EventType = "campaign.created"
	EventCampaignFunded        EventType = "campaign.funded"
	EventCampaignCompleted     EventType = "campaign.completed"
	EventCampaignStatusUpdated EventType = "campaign.status_updated"
	EventClaimSuccessful       EventType = "campaign.claim_successful"
	EventRefundIssued          EventType = "campaign.refund_issued"
	EventRoleAssigned          EventType = "role.assigned"
	EventIdentityRegistered    EventType = "identity.registered"
)

// Event is emitted after a state change has been committed. Only the fields
// relevant to Type are set.
type Event struct {
	ID         uuid.UUID
	Type       EventType
	Timestamp  time.Time
	CampaignID int64
	Account    string // owner, contributor, claimant or role holder
	Title      string
	Amount     int64 // goal, contribution, total, claim or refund amount
	Status     Status
	Role       Role
	Granted    bool
}

// NewEvent returns an event of the given type stamped with a fresh ID.
func NewEvent(typ EventType, now time.Time) Event {
	return Event{ID: uuid.New(), Type: typ, Timestamp: now}
}

// Transfer describes an outbound movement of funds from campaign custody.
type Transfer struct {
	Reference  uuid.UUID
	CampaignID int64
	To         string
	Amount     int64
	Kind       TransferKind
}

// TransferKind distinguishes owner claims from contributor refunds.
type TransferKind string

const (
	TransferClaim  TransferKind = "claim"
	TransferRefund TransferKind = "refund"
)
