package domain

import "time"

// Contribution is a single funding event of a campaign.
type Contribution struct {
	ID          int64
	CampaignID  int64
	Contributor string
	Amount      int64
	Timestamp   time.Time
	Refunded    bool
}

// RefundOutstanding marks every unrefunded contribution of contributor in
// contributions as refunded and returns the refunded total. The slice is
// modified in place. When the total is zero nothing is marked and
// ErrNothingToRefund is returned.
func RefundOutstanding(contributions []Contribution, contributor string) (int64, error) {
	var (
		total   int64
		matched []int
	)
	for i := range contributions {
		c := &contributions[i]
		if c.Contributor != contributor || c.Refunded {
			continue
		}
		total += c.Amount
		matched = append(matched, i)
	}
	if total == 0 {
		return 0, ErrNothingToRefund
	}
	for _, i := range matched {
		contributions[i].Refunded = true
	}
	return total, nil
}
