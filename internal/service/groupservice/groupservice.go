package groupservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/pkg/joincode"
)

//go:generate mockgen -source=groupservice.go -destination=groupservice_mock.go -package=groupservice
type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type GroupRepo interface {
	Create(ctx context.Context, group *domain.Group) (*domain.Group, error)
	FindByID(ctx context.Context, groupID int) (*domain.Group, error)
	FindByJoinCode(ctx context.Context, joinCode string) (*domain.Group, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Group, error)
	Update(ctx context.Context, group *domain.Group) error
}

type MemberRepo interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	FindByID(ctx context.Context, memberID int) (*domain.Member, error)
	FindByGroupAndUser(ctx context.Context, groupID, userID int) (*domain.Member, error)
	FindByGroupID(ctx context.Context, groupID int, includeInactive bool) ([]domain.Member, error)
	Deactivate(ctx context.Context, memberID int) error
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrGroupNotFound   = errors.New("group not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrNotOrganizer    = errors.New("caller is not the group organizer")
	ErrInvalidJoinCode = errors.New("invalid join code")
	ErrAlreadyMember   = errors.New("user is already a member of this group")
	ErrWrongGroupType  = errors.New("operation not supported for this group type")
)

type Service struct {
	userRepo   UserRepo
	groupRepo  GroupRepo
	memberRepo MemberRepo
}

func New(userRepo UserRepo, groupRepo GroupRepo, memberRepo MemberRepo) *Service {
	return &Service{
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
	}
}

// CreateGroup generates the join code server-side; the organizer is also
// enrolled as the first member so their own contributions count.
func (s *Service) CreateGroup(ctx context.Context, userID int, name string, cycleDays int, groupType, defaultCurrency string) (*domain.Group, error) {
	organizer, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if groupType != domain.GroupTypeOrganizerOnly {
		groupType = domain.GroupTypeFullPlatform
	}
	if defaultCurrency == "" {
		defaultCurrency = "RWF"
	}

	code, err := joincode.Generate()
	if err != nil {
		zap.L().Error("can't generate join code", zap.Error(err))
		return nil, err
	}

	group, err := s.groupRepo.Create(ctx, &domain.Group{
		OrganizerID:     organizer.ID,
		Name:            name,
		JoinCode:        code,
		CycleDays:       cycleDays,
		GroupType:       groupType,
		DefaultCurrency: defaultCurrency,
	})
	if err != nil {
		zap.L().Error("can't create group", zap.Error(err))
		return nil, err
	}

	_, err = s.memberRepo.Create(ctx, &domain.Member{
		GroupID:  group.ID,
		UserID:   organizer.ID,
		FullName: organizer.Login,
		Phone:    organizer.Phone,
	})
	if err != nil {
		zap.L().Error("can't enroll organizer as member", zap.Error(err))
		return nil, err
	}

	zap.L().Info("group created", zap.Int("groupID", group.ID), zap.String("name", name))
	return group, nil
}

func (s *Service) GetGroup(ctx context.Context, groupID int) (*domain.Group, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

func (s *Service) GetGroupsForUser(ctx context.Context, userID int) ([]domain.Group, error) {
	groups, err := s.groupRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get groups", zap.Error(err))
		return nil, err
	}
	return groups, nil
}

func (s *Service) UpdateGroup(ctx context.Context, groupID, userID int, name *string, cycleDays *int) (*domain.Group, error) {
	group, err := s.requireOrganizer(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		group.Name = *name
	}
	if cycleDays != nil && *cycleDays > 0 {
		group.CycleDays = *cycleDays
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		zap.L().Error("can't update group", zap.Error(err))
		return nil, err
	}
	return group, nil
}

// JoinGroup enrolls the calling user via join code. The Luhn check rejects
// mistyped codes before the lookup. Organizer-only groups have no
// self-service join.
func (s *Service) JoinGroup(ctx context.Context, userID int, code string) (*domain.Member, error) {
	if !joincode.IsValid(code) {
		return nil, ErrInvalidJoinCode
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FindByJoinCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	if group.GroupType != domain.GroupTypeFullPlatform {
		return nil, ErrWrongGroupType
	}

	existing, err := s.memberRepo.FindByGroupAndUser(ctx, group.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyMember
	}

	member, err := s.memberRepo.Create(ctx, &domain.Member{
		GroupID:  group.ID,
		UserID:   user.ID,
		FullName: user.Login,
		Phone:    user.Phone,
	})
	if err != nil {
		zap.L().Error("can't create member", zap.Error(err))
		return nil, err
	}

	zap.L().Info("member joined group", zap.Int("groupID", group.ID), zap.Int("memberID", member.ID))
	return member, nil
}

// AddMember is the organizer-only path: a name+phone record with no account.
func (s *Service) AddMember(ctx context.Context, groupID, userID int, fullName, phone string) (*domain.Member, error) {
	group, err := s.requireOrganizer(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if group.GroupType != domain.GroupTypeOrganizerOnly {
		return nil, ErrWrongGroupType
	}

	member, err := s.memberRepo.Create(ctx, &domain.Member{
		GroupID:  groupID,
		FullName: fullName,
		Phone:    phone,
	})
	if err != nil {
		zap.L().Error("can't create member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (s *Service) GetMembers(ctx context.Context, groupID int, includeInactive bool) ([]domain.Member, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	members, err := s.memberRepo.FindByGroupID(ctx, groupID, includeInactive)
	if err != nil {
		zap.L().Error("failed to get members", zap.Error(err))
		return nil, err
	}
	return members, nil
}

// DeactivateMember soft-deletes so finished payouts keep pointing at a real
// member row.
func (s *Service) DeactivateMember(ctx context.Context, groupID, memberID, userID int) error {
	if _, err := s.requireOrganizer(ctx, groupID, userID); err != nil {
		return err
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil || member.GroupID != groupID {
		return ErrMemberNotFound
	}

	return s.memberRepo.Deactivate(ctx, memberID)
}

func (s *Service) JoinCodeQR(ctx context.Context, groupID, userID int) ([]byte, error) {
	group, err := s.requireOrganizer(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	return joincode.QRPNG(group.JoinCode, 256)
}

func (s *Service) findUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) requireOrganizer(ctx context.Context, groupID, userID int) (*domain.Group, error) {
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
	return group, nil
}
