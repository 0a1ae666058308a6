package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkarenzi/ikimina/internal/domain"
)

//go:generate mockgen -source=paymentservice.go -destination=paymentservice_mock.go -package=paymentservice
type GroupRepo interface {
	FindByID(ctx context.Context, groupID int) (*domain.Group, error)
}

type MemberRepo interface {
	FindByID(ctx context.Context, memberID int) (*domain.Member, error)
	FindByGroupAndUser(ctx context.Context, groupID, userID int) (*domain.Member, error)
}

type ContributionRepo interface {
	Save(ctx context.Context, c *domain.Contribution) error
	FindByID(ctx context.Context, contributionID int) (*domain.Contribution, error)
	FindConfirmedInWindow(ctx context.Context, groupID int, from, to time.Time) ([]domain.Contribution, error)
	Update(ctx context.Context, c *domain.Contribution) error
	Archive(ctx context.Context, contributionID int) error
}

type RateRepo interface {
	Upsert(ctx context.Context, decl *domain.RateDeclaration) error
}

var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNotOrganizer    = errors.New("caller is not the group organizer")
	ErrNotMember       = errors.New("caller is not a member of this group")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrWrongGroupType  = errors.New("operation not supported for this group type")
)

type Service struct {
	groupRepo        GroupRepo
	memberRepo       MemberRepo
	contributionRepo ContributionRepo
	rateRepo         RateRepo
}

func New(groupRepo GroupRepo, memberRepo MemberRepo, contributionRepo ContributionRepo, rateRepo RateRepo) *Service {
	return &Service{
		groupRepo:        groupRepo,
		memberRepo:       memberRepo,
		contributionRepo: contributionRepo,
		rateRepo:         rateRepo,
	}
}

// RecordPayment saves a confirmed contribution. The organizer may record for
// any member of the group; everyone else only for themselves. memberID == 0
// means "the caller's own membership".
func (s *Service) RecordPayment(ctx context.Context, groupID, userID, memberID int, amount decimal.Decimal, currency string, paymentDate time.Time) (*domain.Contribution, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	member, err := s.resolveMember(ctx, group, userID, memberID)
	if err != nil {
		return nil, err
	}

	if currency == "" {
		currency = group.DefaultCurrency
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	contribution := &domain.Contribution{
		MemberID:    member.ID,
		GroupID:     groupID,
		Amount:      amount,
		Currency:    currency,
		PaymentDate: paymentDate,
		Status:      domain.ContributionConfirmed,
		RecordedBy:  userID,
	}
	if err := s.contributionRepo.Save(ctx, contribution); err != nil {
		zap.L().Error("can't save contribution", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment recorded",
		zap.Int("groupID", groupID),
		zap.Int("memberID", member.ID),
		zap.String("amount", amount.String()),
		zap.String("currency", currency))
	return contribution, nil
}

// ListPayments returns confirmed contributions in [from, to). A zero window
// defaults to the group's active cycle window.
func (s *Service) ListPayments(ctx context.Context, groupID, userID int, from, to time.Time) ([]domain.Contribution, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	if group.OrganizerID != userID {
		member, err := s.memberRepo.FindByGroupAndUser(ctx, groupID, userID)
		if err != nil {
			return nil, err
		}
		if member == nil {
			return nil, ErrNotMember
		}
	}

	if from.IsZero() || to.IsZero() {
		from, to = group.CycleWindow()
	}

	contributions, err := s.contributionRepo.FindConfirmedInWindow(ctx, groupID, from, to)
	if err != nil {
		zap.L().Error("failed to list contributions", zap.Error(err))
		return nil, err
	}
	return contributions, nil
}

// UpdatePayment corrects an entry's amount or date. Organizer only; on
// full-platform groups this is the audit-sensitive path, so self-recorded
// entries cannot be edited by their authors after the fact.
func (s *Service) UpdatePayment(ctx context.Context, paymentID, userID int, amount *decimal.Decimal, paymentDate *time.Time) (*domain.Contribution, error) {
	contribution, group, err := s.requireOrganizersPayment(ctx, paymentID, userID)
	if err != nil {
		return nil, err
	}
	if group.GroupType != domain.GroupTypeFullPlatform {
		// Organizer-only ledgers are append-only: archive and re-record.
		return nil, ErrWrongGroupType
	}

	if amount != nil {
		if !amount.IsPositive() {
			return nil, ErrInvalidAmount
		}
		contribution.Amount = *amount
	}
	if paymentDate != nil && !paymentDate.IsZero() {
		contribution.PaymentDate = *paymentDate
	}

	if err := s.contributionRepo.Update(ctx, contribution); err != nil {
		zap.L().Error("can't update contribution", zap.Error(err))
		return nil, err
	}
	return contribution, nil
}

// ArchivePayment soft-deletes the entry; archived rows never reach the
// calculator.
func (s *Service) ArchivePayment(ctx context.Context, paymentID, userID int) error {
	if _, _, err := s.requireOrganizersPayment(ctx, paymentID, userID); err != nil {
		return err
	}
	return s.contributionRepo.Archive(ctx, paymentID)
}

// DeclareRate upserts the member's declared daily rate for a currency,
// closing any previous active declaration for the same pair. A member may
// declare their own rate; the organizer may declare for anyone in the group.
func (s *Service) DeclareRate(ctx context.Context, groupID, memberID, userID int, currency string, dailyRate decimal.Decimal) (*domain.RateDeclaration, error) {
	if !dailyRate.IsPositive() {
		return nil, ErrInvalidAmount
	}

	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.GroupID != groupID {
		return nil, ErrMemberNotFound
	}
	if group.OrganizerID != userID && member.UserID != userID {
		return nil, ErrNotOrganizer
	}

	if currency == "" {
		currency = group.DefaultCurrency
	}

	decl := &domain.RateDeclaration{
		MemberID:  memberID,
		Currency:  currency,
		DailyRate: dailyRate,
	}
	if err := s.rateRepo.Upsert(ctx, decl); err != nil {
		zap.L().Error("can't upsert rate declaration", zap.Error(err))
		return nil, err
	}

	zap.L().Info("rate declared",
		zap.Int("memberID", memberID),
		zap.String("currency", currency),
		zap.String("dailyRate", dailyRate.String()))
	return decl, nil
}

func (s *Service) resolveMember(ctx context.Context, group *domain.Group, userID, memberID int) (*domain.Member, error) {
	if memberID != 0 {
		if group.OrganizerID != userID {
			return nil, ErrNotOrganizer
		}
		member, err := s.memberRepo.FindByID(ctx, memberID)
		if err != nil {
			return nil, err
		}
		if member == nil || member.GroupID != group.ID {
			return nil, ErrMemberNotFound
		}
		return member, nil
	}

	member, err := s.memberRepo.FindByGroupAndUser(ctx, group.ID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotMember
	}
	return member, nil
}

func (s *Service) requireOrganizersPayment(ctx context.Context, paymentID, userID int) (*domain.Contribution, *domain.Group, error) {
	contribution, err := s.contributionRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if contribution == nil || contribution.Status != domain.ContributionConfirmed {
		return nil, nil, ErrPaymentNotFound
	}

	group, err := s.groupRepo.FindByID(ctx, contribution.GroupID)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}
	if group.OrganizerID != userID {
		return nil, nil, ErrNotOrganizer
	}
	return contribution, group, nil
}
