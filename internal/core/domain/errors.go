package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidGoal          = errors.New("goal amount must be positive")
	ErrInvalidAmount        = errors.New("contribution amount must not be negative")
	ErrNoIdentity           = errors.New("account has no registered identity")
	ErrIdentityExists       = errors.New("identity already registered")
	ErrCampaignInactive     = errors.New("campaign is not active")
	ErrCampaignNotCompleted = errors.New("campaign is not completed")
	ErrRefundsNotAllowed    = errors.New("refunds are not allowed for completed campaigns")
	ErrNotOwner             = errors.New("caller is not the campaign owner")
	ErrForbidden            = errors.New("caller lacks the required role")
	ErrNothingToRefund      = errors.New("nothing to refund")
	ErrTransferFailed       = errors.New("funds transfer failed")
)
