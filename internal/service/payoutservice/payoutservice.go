package payoutservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/internal/notify"
	"github.com/mkarenzi/ikimina/internal/pg"
	grouprepo "github.com/mkarenzi/ikimina/internal/repo/group-repo"
)

//go:generate mockgen -source=payoutservice.go -destination=payoutservice_mock.go -package=payoutservice
type GroupRepo interface {
	FindByID(ctx context.Context, groupID int) (*domain.Group, error)
	FindByIDForUpdate(ctx context.Context, groupID int) (*domain.Group, error)
	AdvanceCycle(ctx context.Context, groupID, fromCycle int) error
}

type MemberRepo interface {
	FindByGroupID(ctx context.Context, groupID int, includeInactive bool) ([]domain.Member, error)
}

type ContributionRepo interface {
	FindConfirmedInWindow(ctx context.Context, groupID int, from, to time.Time) ([]domain.Contribution, error)
}

type RateRepo interface {
	FindActiveByGroup(ctx context.Context, groupID int) ([]domain.RateDeclaration, error)
}

type PayoutRepo interface {
	CreatePayout(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	CreateItems(ctx context.Context, payoutID int, items []domain.PayoutItem) error
	FindByID(ctx context.Context, payoutID int) (*domain.Payout, error)
	FindByGroupAndCycle(ctx context.Context, groupID, cycleNumber int) (*domain.Payout, error)
	FindByGroupID(ctx context.Context, groupID int) ([]domain.Payout, error)
	FindItemsByPayoutID(ctx context.Context, payoutID int) ([]domain.PayoutItem, error)
	FindItemByID(ctx context.Context, itemID int) (*domain.PayoutItem, error)
	UpdateItemStatus(ctx context.Context, itemID int, status string) error
}

type Notifier interface {
	CycleFinalized(event notify.Event)
}

var (
	ErrGroupNotFound         = errors.New("group not found")
	ErrNotOrganizer          = errors.New("caller is not the group organizer")
	ErrEmptyCycle            = errors.New("no contributions recorded this cycle")
	ErrCycleAlreadyFinalized = errors.New("cycle already finalized")
	ErrPayoutNotFound        = errors.New("payout not found")
	ErrItemNotFound          = errors.New("payout item not found")
	ErrWrongGroupType        = errors.New("operation not supported for this group type")
)

type Service struct {
	groupRepo        GroupRepo
	memberRepo       MemberRepo
	contributionRepo ContributionRepo
	rateRepo         RateRepo
	payoutRepo       PayoutRepo
	txManager        pg.TXManager
	notifier         Notifier
}

func New(groupRepo GroupRepo, memberRepo MemberRepo, contributionRepo ContributionRepo, rateRepo RateRepo, payoutRepo PayoutRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		groupRepo:        groupRepo,
		memberRepo:       memberRepo,
		contributionRepo: contributionRepo,
		rateRepo:         rateRepo,
		payoutRepo:       payoutRepo,
		txManager:        txManager,
		notifier:         notifier,
	}
}

// CyclePreview is the calculator output for the active window, shown to the
// organizer before the irreversible finalize confirmation.
type CyclePreview struct {
	Group       *domain.Group
	WindowStart time.Time
	WindowEnd   time.Time
	Breakdowns  []domain.PayoutBreakdown
}

func (s *Service) Preview(ctx context.Context, groupID, userID int) (*CyclePreview, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	if group.OrganizerID != userID {
		return nil, ErrNotOrganizer
	}

	breakdowns, _, err := s.compute(ctx, group, 1)
	if err != nil {
		return nil, err
	}

	start, end := group.CycleWindow()
	return &CyclePreview{
		Group:       group,
		WindowStart: start,
		WindowEnd:   end,
		Breakdowns:  breakdowns,
	}, nil
}

// Finalize persists the payout for the group's current cycle and advances the
// cycle counter, all inside one transaction behind a row lock on the group.
// The second of two concurrent calls fails with ErrCycleAlreadyFinalized
// instead of double-writing. The notification fan-out runs after commit.
func (s *Service) Finalize(ctx context.Context, groupID, userID, minPayments int) (*domain.Payout, error) {
	var payout *domain.Payout
	var group *domain.Group
	var members []domain.Member
	var netTotal decimal.Decimal

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		group, err = s.groupRepo.FindByIDForUpdate(ctx, groupID)
		if err != nil {
			return err
		}
		if group == nil {
			return ErrGroupNotFound
		}
		if group.OrganizerID != userID {
			return ErrNotOrganizer
		}

		existing, err := s.payoutRepo.FindByGroupAndCycle(ctx, groupID, group.CurrentCycle)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrCycleAlreadyFinalized
		}

		var breakdowns []domain.PayoutBreakdown
		breakdowns, members, err = s.compute(ctx, group, minPayments)
		if err != nil {
			return err
		}
		if !hasNonzeroSaving(breakdowns) {
			return ErrEmptyCycle
		}

		feeTotal := decimal.Zero
		netTotal = decimal.Zero
		items := make([]domain.PayoutItem, len(breakdowns))
		for i, b := range breakdowns {
			feeTotal = feeTotal.Add(b.OrganizerFee)
			if b.Currency == group.DefaultCurrency {
				netTotal = netTotal.Add(b.NetPayout)
			}
			items[i] = domain.PayoutItem{
				MemberID:        b.MemberID,
				MemberName:      b.MemberName,
				Currency:        b.Currency,
				TotalSaved:      b.TotalSaved,
				OrganizerFee:    b.OrganizerFee,
				NetPayout:       b.NetPayout,
				DaysContributed: b.DaysContributed,
				Status:          domain.PayoutItemPending,
			}
		}

		payout, err = s.payoutRepo.CreatePayout(ctx, &domain.Payout{
			GroupID:     groupID,
			CycleNumber: group.CurrentCycle,
			PayoutDate:  time.Now(),
			FeeTotal:    feeTotal,
			ItemCount:   len(items),
		})
		if err != nil {
			return err
		}
		if err := s.payoutRepo.CreateItems(ctx, payout.ID, items); err != nil {
			return err
		}

		if err := s.groupRepo.AdvanceCycle(ctx, groupID, group.CurrentCycle); err != nil {
			if errors.Is(err, grouprepo.ErrCycleMoved) {
				return ErrCycleAlreadyFinalized
			}
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("finalize cycle failed", zap.Int("groupID", groupID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("cycle finalized",
		zap.Int("groupID", groupID),
		zap.Int("cycle", payout.CycleNumber),
		zap.Int("items", payout.ItemCount),
	)
	s.notifier.CycleFinalized(buildEvent(group, payout, members, netTotal))
	return payout, nil
}

func (s *Service) GetPayouts(ctx context.Context, groupID, userID int) ([]domain.Payout, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	payouts, err := s.payoutRepo.FindByGroupID(ctx, groupID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

func (s *Service) GetPayoutItems(ctx context.Context, payoutID int) ([]domain.PayoutItem, error) {
	items, err := s.payoutRepo.FindItemsByPayoutID(ctx, payoutID)
	if err != nil {
		zap.L().Error("failed to fetch payout items", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *Service) GetPayoutByCycle(ctx context.Context, groupID, cycleNumber int) (*domain.Payout, []domain.PayoutItem, error) {
	payout, err := s.payoutRepo.FindByGroupAndCycle(ctx, groupID, cycleNumber)
	if err != nil {
		return nil, nil, err
	}
	if payout == nil {
		return nil, nil, ErrPayoutNotFound
	}
	items, err := s.payoutRepo.FindItemsByPayoutID(ctx, payout.ID)
	if err != nil {
		return nil, nil, err
	}
	return payout, items, nil
}

// MarkItemPaid flips a PENDING item to PAID once the organizer hands over the
// cash. Organizer-only groups track disbursement this way; full-platform
// payouts settle through the app and never transition manually.
func (s *Service) MarkItemPaid(ctx context.Context, itemID, userID int) error {
	item, err := s.payoutRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}

	payout, err := s.payoutRepo.FindByID(ctx, item.PayoutID)
	if err != nil {
		return err
	}
	if payout == nil {
		return ErrPayoutNotFound
	}

	group, err := s.groupRepo.FindByID(ctx, payout.GroupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}
	if group.OrganizerID != userID {
		return ErrNotOrganizer
	}
	if group.GroupType != domain.GroupTypeOrganizerOnly {
		return ErrWrongGroupType
	}

	return s.payoutRepo.UpdateItemStatus(ctx, itemID, domain.PayoutItemPaid)
}

// compute fetches the calculator inputs for the group's active window and
// runs the fee policy matching the group type. Inactive members stay in the
// name lookup so their historical contributions remain attributable.
func (s *Service) compute(ctx context.Context, group *domain.Group, minPayments int) ([]domain.PayoutBreakdown, []domain.Member, error) {
	members, err := s.memberRepo.FindByGroupID(ctx, group.ID, true)
	if err != nil {
		return nil, nil, err
	}

	start, end := group.CycleWindow()
	contributions, err := s.contributionRepo.FindConfirmedInWindow(ctx, group.ID, start, end)
	if err != nil {
		return nil, nil, err
	}

	var policy FeePolicy
	minDays := 1
	if group.GroupType == domain.GroupTypeOrganizerOnly {
		policy = AverageObservedPolicy{}
		if minPayments > minDays {
			minDays = minPayments
		}
	} else {
		declarations, err := s.rateRepo.FindActiveByGroup(ctx, group.ID)
		if err != nil {
			return nil, nil, err
		}
		policy = NewDeclaredRatePolicy(declarations)
	}

	return ComputeBreakdowns(members, contributions, policy, minDays), members, nil
}

func hasNonzeroSaving(breakdowns []domain.PayoutBreakdown) bool {
	for _, b := range breakdowns {
		if b.TotalSaved.IsPositive() {
			return true
		}
	}
	return false
}

// buildEvent reports the net payout total in the group's default currency.
func buildEvent(group *domain.Group, payout *domain.Payout, members []domain.Member, netTotal decimal.Decimal) notify.Event {
	var recipients []string
	for _, m := range members {
		if m.IsActive && m.Phone != "" {
			recipients = append(recipients, m.Phone)
		}
	}
	return notify.Event{
		ID:           uuid.New(),
		GroupID:      group.ID,
		GroupName:    group.Name,
		CycleNumber:  payout.CycleNumber,
		PayoutAmount: netTotal,
		Currency:     group.DefaultCurrency,
		Recipients:   recipients,
	}
}
