// Package reportservice renders cycle reports: per-currency totals shared by
// the preview endpoint and the finalized statement, and the downloadable xlsx.
package reportservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mkarenzi/ikimina/internal/domain"
)

//go:generate mockgen -source=reportservice.go -destination=reportservice_mock.go -package=reportservice
type PayoutProvider interface {
	GetPayoutByCycle(ctx context.Context, groupID, cycleNumber int) (*domain.Payout, []domain.PayoutItem, error)
}

type GroupProvider interface {
	GetGroup(ctx context.Context, groupID int) (*domain.Group, error)
}

// CurrencyTotal is the per-currency summary line of a cycle report.
type CurrencyTotal struct {
	Currency   string          `json:"currency"`
	TotalSaved decimal.Decimal `json:"total_saved"`
	FeeTotal   decimal.Decimal `json:"fee_total"`
	NetTotal   decimal.Decimal `json:"net_total"`
	Members    int             `json:"members"`
}

// Totals sums breakdown rows per currency. Preview and the finalized
// statement both go through this function, so their totals can never
// disagree for the same rows. Output is sorted by currency code.
func Totals(breakdowns []domain.PayoutBreakdown) []CurrencyTotal {
	byCurrency := make(map[string]*CurrencyTotal)
	for _, b := range breakdowns {
		t, ok := byCurrency[b.Currency]
		if !ok {
			t = &CurrencyTotal{
				Currency:   b.Currency,
				TotalSaved: decimal.Zero,
				FeeTotal:   decimal.Zero,
				NetTotal:   decimal.Zero,
			}
			byCurrency[b.Currency] = t
		}
		t.TotalSaved = t.TotalSaved.Add(b.TotalSaved)
		t.FeeTotal = t.FeeTotal.Add(b.OrganizerFee)
		t.NetTotal = t.NetTotal.Add(b.NetPayout)
		t.Members++
	}

	totals := make([]CurrencyTotal, 0, len(byCurrency))
	for _, t := range byCurrency {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Currency < totals[j].Currency })
	return totals
}

// TotalsFromItems converts persisted payout items back to breakdown rows and
// reuses Totals, keeping the finalized report on the same summing path.
func TotalsFromItems(items []domain.PayoutItem) []CurrencyTotal {
	breakdowns := make([]domain.PayoutBreakdown, 0, len(items))
	for _, item := range items {
		breakdowns = append(breakdowns, domain.PayoutBreakdown{
			MemberID:        item.MemberID,
			MemberName:      item.MemberName,
			Currency:        item.Currency,
			TotalSaved:      item.TotalSaved,
			OrganizerFee:    item.OrganizerFee,
			NetPayout:       item.NetPayout,
			DaysContributed: item.DaysContributed,
		})
	}
	return Totals(breakdowns)
}

type Service struct {
	payouts PayoutProvider
	groups  GroupProvider
}

func New(payouts PayoutProvider, groups GroupProvider) *Service {
	return &Service{
		payouts: payouts,
		groups:  groups,
	}
}

const statementSheet = "Payout"

// BuildStatement renders the xlsx statement for a finalized cycle: one row
// per payout item plus per-currency totals.
func (s *Service) BuildStatement(ctx context.Context, groupID, cycleNumber int) ([]byte, error) {
	group, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	payout, items, err := s.payouts.GetPayoutByCycle(ctx, groupID, cycleNumber)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Warn("can't close xlsx file", zap.Error(err))
		}
	}()

	index, err := f.NewSheet(statementSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	row := 1
	setRow := func(values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(statementSheet, cell, &values); err != nil {
			return err
		}
		row++
		return nil
	}

	title := fmt.Sprintf("%s - cycle %d (%s)", group.Name, payout.CycleNumber, payout.PayoutDate.Format("2006-01-02"))
	if err := setRow(title); err != nil {
		return nil, err
	}
	if err := setRow("Member", "Currency", "Days", "Total saved", "Organizer fee", "Net payout", "Status"); err != nil {
		return nil, err
	}
	for _, item := range items {
		err := setRow(
			item.MemberName,
			item.Currency,
			item.DaysContributed,
			item.TotalSaved.InexactFloat64(),
			item.OrganizerFee.InexactFloat64(),
			item.NetPayout.InexactFloat64(),
			item.Status,
		)
		if err != nil {
			return nil, err
		}
	}

	row++
	for _, total := range TotalsFromItems(items) {
		err := setRow(
			fmt.Sprintf("Total (%d members)", total.Members),
			total.Currency,
			"",
			total.TotalSaved.InexactFloat64(),
			total.FeeTotal.InexactFloat64(),
			total.NetTotal.InexactFloat64(),
			"",
		)
		if err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		zap.L().Error("can't write xlsx statement", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}
