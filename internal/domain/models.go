package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Group types mirror the two ways contributions get recorded: members enter
// their own payments, or the organizer enters cash payments on their behalf.
const (
	GroupTypeFullPlatform  string = "FULL_PLATFORM"
	GroupTypeOrganizerOnly string = "ORGANIZER_ONLY"
)

const (
	GroupStatusActive string = "ACTIVE"
	GroupStatusClosed string = "CLOSED"
)

type Group struct {
	ID              int       `db:"id"`
	OrganizerID     int       `db:"organizer_id"`
	Name            string    `db:"name"`
	JoinCode        string    `db:"join_code"`
	CycleDays       int       `db:"cycle_days"`
	CurrentCycle    int       `db:"current_cycle"`
	CycleStartDate  time.Time `db:"cycle_start_date"`
	GroupType       string    `db:"group_type"`
	DefaultCurrency string    `db:"default_currency"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}

// CycleWindow is the active contribution window:
// [CycleStartDate, CycleStartDate + CycleDays).
func (g *Group) CycleWindow() (time.Time, time.Time) {
	return g.CycleStartDate, g.CycleStartDate.AddDate(0, 0, g.CycleDays)
}

// Member is a group participant. UserID is set for full-platform memberships
// and zero for organizer-entered members, which are plain name+phone records.
// Members are deactivated, never deleted, so past payouts stay attributable.
type Member struct {
	ID       int       `db:"id"`
	GroupID  int       `db:"group_id"`
	UserID   int       `db:"user_id"`
	FullName string    `db:"full_name"`
	Phone    string    `db:"phone"`
	IsActive bool      `db:"is_active"`
	JoinedAt time.Time `db:"joined_at"`
}

const (
	ContributionConfirmed string = "CONFIRMED"
	ContributionArchived  string = "ARCHIVED"
)

type Contribution struct {
	ID          int             `db:"id"`
	MemberID    int             `db:"member_id"`
	GroupID     int             `db:"group_id"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	PaymentDate time.Time       `db:"payment_date"`
	Status      string          `db:"status"`
	RecordedBy  int             `db:"recorded_by"`
	CreatedAt   time.Time       `db:"created_at"`
}

// RateDeclaration is a member's declared one-day contribution value per
// currency. It feeds the organizer fee only; actual payments are independent.
// At most one active declaration per (member, currency).
type RateDeclaration struct {
	ID        int             `db:"id"`
	MemberID  int             `db:"member_id"`
	Currency  string          `db:"currency"`
	DailyRate decimal.Decimal `db:"daily_rate"`
	IsActive  bool            `db:"is_active"`
	StartDate time.Time       `db:"start_date"`
	EndDate   *time.Time      `db:"end_date"`
}

// PayoutBreakdown is the computed, not-yet-persisted payout for one member in
// one currency. NetPayout = TotalSaved - OrganizerFee, and may be negative
// when a member paid less than one day's declared rate.
type PayoutBreakdown struct {
	MemberID        int
	MemberName      string
	Currency        string
	TotalSaved      decimal.Decimal
	OrganizerFee    decimal.Decimal
	NetPayout       decimal.Decimal
	DaysContributed int
}

const (
	PayoutItemPending string = "PENDING"
	PayoutItemPaid    string = "PAID"
)

type Payout struct {
	ID          int             `db:"id"`
	GroupID     int             `db:"group_id"`
	CycleNumber int             `db:"cycle_number"`
	PayoutDate  time.Time       `db:"payout_date"`
	FeeTotal    decimal.Decimal `db:"fee_total"`
	ItemCount   int             `db:"item_count"`
}

type PayoutItem struct {
	ID              int             `db:"id"`
	PayoutID        int             `db:"payout_id"`
	MemberID        int             `db:"member_id"`
	MemberName      string          `db:"member_name"`
	Currency        string          `db:"currency"`
	TotalSaved      decimal.Decimal `db:"total_saved"`
	OrganizerFee    decimal.Decimal `db:"organizer_fee"`
	NetPayout       decimal.Decimal `db:"net_payout"`
	DaysContributed int             `db:"days_contributed"`
	Status          string          `db:"status"`
}
