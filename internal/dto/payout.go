package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BreakdownDTO struct {
	MemberID        int             `json:"member_id" example:"7"`
	MemberName      string          `json:"member_name" example:"Alice Uwase"`
	Currency        string          `json:"currency" example:"RWF"`
	TotalSaved      decimal.Decimal `json:"total_saved" example:"4000"`
	OrganizerFee    decimal.Decimal `json:"organizer_fee" example:"2000"`
	NetPayout       decimal.Decimal `json:"net_payout" example:"2000"`
	DaysContributed int             `json:"days_contributed" example:"2"`
}

type CurrencyTotalDTO struct {
	Currency     string          `json:"currency" example:"RWF"`
	TotalSaved   decimal.Decimal `json:"total_saved" example:"12000"`
	OrganizerFee decimal.Decimal `json:"organizer_fee" example:"6000"`
	NetPayout    decimal.Decimal `json:"net_payout" example:"6000"`
}

type PayoutPreviewResponseDTO struct {
	CycleNumber int                `json:"cycle_number" example:"3"`
	WindowStart time.Time          `json:"window_start"`
	WindowEnd   time.Time          `json:"window_end"`
	Breakdowns  []BreakdownDTO     `json:"breakdowns"`
	Totals      []CurrencyTotalDTO `json:"totals"`
}

type FinalizeCycleRequestDTO struct {
	MinPayments int `json:"min_payments,omitempty" example:"1"`
}

type PayoutItemDTO struct {
	ID              int             `json:"id" example:"11"`
	MemberID        int             `json:"member_id" example:"7"`
	MemberName      string          `json:"member_name" example:"Alice Uwase"`
	Currency        string          `json:"currency" example:"RWF"`
	TotalSaved      decimal.Decimal `json:"total_saved" example:"4000"`
	OrganizerFee    decimal.Decimal `json:"organizer_fee" example:"2000"`
	NetPayout       decimal.Decimal `json:"net_payout" example:"2000"`
	DaysContributed int             `json:"days_contributed" example:"2"`
	Status          string          `json:"status" example:"PENDING"`
}

type PayoutResponseDTO struct {
	ID          int             `json:"id" example:"3"`
	CycleNumber int             `json:"cycle_number" example:"3"`
	PayoutDate  time.Time       `json:"payout_date"`
	FeeTotal    decimal.Decimal `json:"fee_total" example:"6000"`
	ItemCount   int             `json:"item_count" example:"3"`
	Items       []PayoutItemDTO `json:"items,omitempty"`
}

type MarkItemPaidRequestDTO struct {
	Status string `json:"status" example:"PAID"`
}
