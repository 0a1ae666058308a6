package payoutservice

import (
	"sort"

	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type bucket struct {
	memberID   int
	currency   string
	totalSaved decimal.Decimal
	days       map[string]struct{}
}

// ComputeBreakdowns turns in-window contributions into one breakdown per
// (member, currency) pair that saved anything. Members with no eligible
// contributions produce no row at all. Multiple payments on the same calendar
// date count as a single contributed day. Rows with fewer distinct days than
// minDays are dropped entirely, they carry over to the next cycle uncounted.
func ComputeBreakdowns(members []domain.Member, contributions []domain.Contribution, policy FeePolicy, minDays int) []domain.PayoutBreakdown {
	names := make(map[int]string, len(members))
	for _, m := range members {
		names[m.ID] = m.FullName
	}

	buckets := make(map[rateKey]*bucket)
	var order []rateKey
	for _, c := range contributions {
		key := rateKey{memberID: c.MemberID, currency: c.Currency}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				memberID:   c.MemberID,
				currency:   c.Currency,
				totalSaved: decimal.Zero,
				days:       make(map[string]struct{}),
			}
			buckets[key] = b
			order = append(order, key)
		}
		b.totalSaved = b.totalSaved.Add(c.Amount)
		b.days[c.PaymentDate.Format(dateLayout)] = struct{}{}
	}

	if minDays < 1 {
		minDays = 1
	}

	breakdowns := make([]domain.PayoutBreakdown, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		if !b.totalSaved.IsPositive() || len(b.days) < minDays {
			continue
		}
		fee := policy.Fee(b.memberID, b.currency, b.totalSaved, len(b.days))
		// Net is not clamped at zero: a member who paid less than one
		// day's rate still owes the full day's fee.
		breakdowns = append(breakdowns, domain.PayoutBreakdown{
			MemberID:        b.memberID,
			MemberName:      names[b.memberID],
			Currency:        b.currency,
			TotalSaved:      b.totalSaved,
			OrganizerFee:    fee,
			NetPayout:       b.totalSaved.Sub(fee),
			DaysContributed: len(b.days),
		})
	}

	// Stable name order keeps previews and reports deterministic.
	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].MemberName != breakdowns[j].MemberName {
			return breakdowns[i].MemberName < breakdowns[j].MemberName
		}
		if breakdowns[i].MemberID != breakdowns[j].MemberID {
			return breakdowns[i].MemberID < breakdowns[j].MemberID
		}
		return breakdowns[i].Currency < breakdowns[j].Currency
	})

	return breakdowns
}
