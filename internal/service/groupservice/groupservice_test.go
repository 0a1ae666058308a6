package groupservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/pkg/joincode"
)

type serviceMocks struct {
	userRepo   *MockUserRepo
	groupRepo  *MockGroupRepo
	memberRepo *MockMemberRepo
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := &serviceMocks{
		userRepo:   NewMockUserRepo(ctrl),
		groupRepo:  NewMockGroupRepo(ctrl),
		memberRepo: NewMockMemberRepo(ctrl),
	}
	service := New(mocks.userRepo, mocks.groupRepo, mocks.memberRepo)
	return service, mocks
}

func testUser() *domain.User {
	return &domain.User{ID: 100, Login: "organizer", Phone: "+250788000001"}
}

func testGroup() *domain.Group {
	return &domain.Group{
		ID:              1,
		OrganizerID:     100,
		Name:            "Umurenge Savings",
		JoinCode:        "79927398713",
		CycleDays:       30,
		GroupType:       domain.GroupTypeFullPlatform,
		DefaultCurrency: "RWF",
	}
}

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates group and enrolls organizer", func(t *testing.T) {
		service, mocks := NewMock(t)
		organizer := testUser()

		mocks.userRepo.EXPECT().FindByID(ctx, organizer.ID).Return(organizer, nil)
		mocks.groupRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, g *domain.Group) (*domain.Group, error) {
				assert.Equal(t, organizer.ID, g.OrganizerID)
				assert.Equal(t, domain.GroupTypeFullPlatform, g.GroupType)
				assert.Equal(t, "RWF", g.DefaultCurrency)
				assert.True(t, joincode.IsValid(g.JoinCode))
				g.ID = 1
				return g, nil
			})
		mocks.memberRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.Member) (*domain.Member, error) {
				assert.Equal(t, 1, m.GroupID)
				assert.Equal(t, organizer.ID, m.UserID)
				assert.Equal(t, organizer.Login, m.FullName)
				m.ID = 10
				return m, nil
			})

		group, err := service.CreateGroup(ctx, organizer.ID, "Umurenge Savings", 30, "", "")
		assert.NoError(t, err)
		assert.Equal(t, 1, group.ID)
	})

	t.Run("keeps organizer-only type", func(t *testing.T) {
		service, mocks := NewMock(t)

		mocks.userRepo.EXPECT().FindByID(ctx, 100).Return(testUser(), nil)
		mocks.groupRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, g *domain.Group) (*domain.Group, error) {
				assert.Equal(t, domain.GroupTypeOrganizerOnly, g.GroupType)
				g.ID = 2
				return g, nil
			})
		mocks.memberRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Member{ID: 11}, nil)

		_, err := service.CreateGroup(ctx, 100, "Cash Group", 7, domain.GroupTypeOrganizerOnly, "RWF")
		assert.NoError(t, err)
	})

	t.Run("repo failure", func(t *testing.T) {
		service, mocks := NewMock(t)

		mocks.userRepo.EXPECT().FindByID(ctx, 100).Return(testUser(), nil)
		mocks.groupRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("db error"))

		group, err := service.CreateGroup(ctx, 100, "Broken", 30, "", "")
		assert.Error(t, err)
		assert.Nil(t, group)
	})
}

func TestGetGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		service, mocks := NewMock(t)
		mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(testGroup(), nil)

		group, err := service.GetGroup(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Umurenge Savings", group.Name)
	})

	t.Run("not found", func(t *testing.T) {
		service, mocks := NewMock(t)
		mocks.groupRepo.EXPECT().FindByID(ctx, 99).Return(nil, nil)

		group, err := service.GetGroup(ctx, 99)
		assert.ErrorIs(t, err, ErrGroupNotFound)
		assert.Nil(t, group)
	})
}

func TestUpdateGroup(t *testing.T) {
	ctx := context.Background()
	name := "Renamed"
	days := 14

	t.Run("success", func(t *testing.T) {
		service, mocks := NewMock(t)
		mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(testGroup(), nil)
		mocks.groupRepo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, g *domain.Group) error {
				assert.Equal(t, "Renamed", g.Name)
				assert.Equal(t, 14, g.CycleDays)
				return nil
			})

		group, err := service.UpdateGroup(ctx, 1, 100, &name, &days)
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", group.Name)
	})

	t.Run("not organizer", func(t *testing.T) {
		service, mocks := NewMock(t)
		mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(testGroup(), nil)

		_, err := service.UpdateGroup(ctx, 1, 200, &name, nil)
		assert.ErrorIs(t, err, ErrNotOrganizer)
	})

	t.Run("ignores non-positive cycle days", func(t *testing.T) {
		service, mocks := NewMock(t)
		bad := 0
		mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(testGroup(), nil)
		mocks.groupRepo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, g *domain.Group) error {
				assert.Equal(t, 30, g.CycleDays)
				return nil
			})

		_, err := service.UpdateGroup(ctx, 1, 100, nil, &bad)
		assert.NoError(t, err)
	})
}

func TestJoinGroup(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 7, Login: "alice", Phone: "+250788000002"}

	t.Run("success", func(t *testing.T) {
		service, mocks := NewMock(t)
		group := testGroup()

		mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		mocks.groupRepo.EXPECT().FindByJoinCode(ctx, group.JoinCode).Return(group, nil)
		mocks.memberRepo.EXPECT().FindByGroupAndUser(ctx, group.ID, user.ID).Return(nil, nil)
		mocks.memberRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.Member) (*domain.Member, error) {
				assert.Equal(t, group.ID, m.GroupID)
				assert.Equal(t, user.ID, m.UserID)
				m.ID = 55
				return m, nil
			})

		member, err := service.JoinGroup(ctx, user.ID, group.JoinCode)
		assert.NoError(t, err)
		assert.Equal(t, 55, member.ID)
	})

	t.Run("bad luhn code", func(t *testing.T) {
		service, _ := NewMock(t)

		member, err := service.JoinGroup(ctx, user.ID, "1234567890")
		assert.ErrorIs(t, err, ErrInvalidJoinCode)
		assert.Nil(t, member)
	})

	t.Run("unknown code", func(t *testing.T) {
		service, mocks := NewMock(t)
		mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		mocks.groupRepo.EXPECT().FindByJoinCode(ctx, "79927398713").Return(nil, nil)

		_, err := service.JoinGroup(ctx, user.ID, "79927398713")
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("organizer-only group rejects self-join", func(t *testing.T) {
		service, mocks := NewMock(t)
		group := testGroup()
		group.GroupType = domain.GroupTypeOrganizerOnly
		mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		mocks.groupRepo.EXPECT().FindByJoinCode(ctx, group.JoinCode).Return(group, nil)

		_, err := service.JoinGroup(ctx, user.ID, group.JoinCode)
		assert.ErrorIs(t, err, ErrWrongGroupType)
	})

	t.Run("already a member", func(t *testing.T) {
		service, mocks := NewMock(t)
		group := testGroup()
		mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		mocks.groupRepo.EXPECT().FindByJoinCode(ctx, group.JoinCode).Return(group, nil)
		mocks.memberRepo.EXPECT().FindByGroupAndUser(ctx, group.ID, user.ID).Return(&domain.Member{ID: 55}, nil)

		_, err := service.JoinGroup(ctx, user.ID, group.JoinCode)
		assert.ErrorIs(t, err, ErrAlreadyMember)
	})
}

func TestAddMember(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, mocks := NewMock(t)
		group := testGroup()
		group.GroupType = domain.GroupTypeOrganizerOnly

		mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(group, nil)
		mocks.memberRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.Member) (*domain.Member, error) {
				assert.Equal(t, 0, m.UserID)
				assert.Equal(t, "Jeanette", m.FullName)
				m.ID = 21
				return m, nil
			})

		member, err := service.AddMember(ctx, 1, 100, "Jeanette", "+250788000003")
		assert.NoError(t, err)
		assert.Equal(t, 21, member.ID)
	})

	t.Run("full-platform group rejects manual member", func(t *testing.T) {
		service, mocks := NewMock(t)
		mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(testGroup(), nil)

		_, err := service.AddMember(ctx, 1, 100, "Jeanette", "+250788000003")
		assert.ErrorIs(t, err, ErrWrongGroupType)
	})

	t.Run("not organizer", func(t *testing.T) {
		service, mocks := NewMock(t)
		mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(testGroup(), nil)

		_, err := service.AddMember(ctx, 1, 200, "Jeanette", "+250788000003")
		assert.ErrorIs(t, err, ErrNotOrganizer)
	})
}

func TestDeactivateMember(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, mocks := NewMock(t)
		mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(testGroup(), nil)
		mocks.memberRepo.EXPECT().FindByID(ctx, 21).Return(&domain.Member{ID: 21, GroupID: 1}, nil)
		mocks.memberRepo.EXPECT().Deactivate(ctx, 21).Return(nil)

		err := service.DeactivateMember(ctx, 1, 21, 100)
		assert.NoError(t, err)
	})

	t.Run("member from another group", func(t *testing.T) {
		service, mocks := NewMock(t)
		mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(testGroup(), nil)
		mocks.memberRepo.EXPECT().FindByID(ctx, 21).Return(&domain.Member{ID: 21, GroupID: 2}, nil)

		err := service.DeactivateMember(ctx, 1, 21, 100)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestJoinCodeQR(t *testing.T) {
	ctx := context.Background()

	service, mocks := NewMock(t)
	mocks.groupRepo.EXPECT().FindByID(ctx, 1).Return(testGroup(), nil)

	png, err := service.JoinCodeQR(ctx, 1, 100)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
