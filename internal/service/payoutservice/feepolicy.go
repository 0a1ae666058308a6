package payoutservice

import (
	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/shopspring/decimal"
)

// FeePolicy is the single swappable fee rule shared by both group variants.
// The fee is always one day's value, never rate multiplied by days.
type FeePolicy interface {
	Fee(memberID int, currency string, totalSaved decimal.Decimal, daysContributed int) decimal.Decimal
}

type rateKey struct {
	memberID int
	currency string
}

// DeclaredRatePolicy charges the member's active declared daily rate for the
// currency. No declaration means an explicit zero fee.
type DeclaredRatePolicy struct {
	rates map[rateKey]decimal.Decimal
}

func NewDeclaredRatePolicy(declarations []domain.RateDeclaration) *DeclaredRatePolicy {
	rates := make(map[rateKey]decimal.Decimal, len(declarations))
	for _, d := range declarations {
		rates[rateKey{memberID: d.MemberID, currency: d.Currency}] = d.DailyRate
	}
	return &DeclaredRatePolicy{rates: rates}
}

func (p *DeclaredRatePolicy) Fee(memberID int, currency string, _ decimal.Decimal, _ int) decimal.Decimal {
	if rate, ok := p.rates[rateKey{memberID: memberID, currency: currency}]; ok {
		return rate
	}
	return decimal.Zero
}

// AverageObservedPolicy charges one average observed day: total saved divided
// by distinct days paid. Used for organizer-only groups, where members declare
// no rate.
type AverageObservedPolicy struct{}

func (AverageObservedPolicy) Fee(_ int, _ string, totalSaved decimal.Decimal, daysContributed int) decimal.Decimal {
	if daysContributed == 0 {
		return decimal.Zero
	}
	return totalSaved.Div(decimal.NewFromInt(int64(daysContributed)))
}
