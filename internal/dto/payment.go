package dto

import "github.com/shopspring/decimal"

type RecordPaymentRequestDTO struct {
	MemberID    int             `json:"member_id,omitempty" example:"7"`
	Amount      decimal.Decimal `json:"amount" example:"2000"`
	Currency    string          `json:"currency" example:"RWF"`
	PaymentDate string          `json:"payment_date" example:"2025-08-01"`
}

type UpdatePaymentRequestDTO struct {
	Amount      *decimal.Decimal `json:"amount,omitempty" example:"2500"`
	PaymentDate *string          `json:"payment_date,omitempty" example:"2025-08-02"`
}

type PaymentResponseDTO struct {
	ID          int             `json:"id" example:"42"`
	MemberID    int             `json:"member_id" example:"7"`
	Amount      decimal.Decimal `json:"amount" example:"2000"`
	Currency    string          `json:"currency" example:"RWF"`
	PaymentDate string          `json:"payment_date" example:"2025-08-01"`
	Status      string          `json:"status" example:"CONFIRMED"`
}

type RateRequestDTO struct {
	Currency  string          `json:"currency" example:"RWF"`
	DailyRate decimal.Decimal `json:"daily_rate" example:"2000"`
}
