package payoutservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/internal/pg"
	grouprepo "github.com/mkarenzi/ikimina/internal/repo/group-repo"
)

type serviceMocks struct {
	groupRepo        *MockGroupRepo
	memberRepo       *MockMemberRepo
	contributionRepo *MockContributionRepo
	rateRepo         *MockRateRepo
	payoutRepo       *MockPayoutRepo
	txManager        *pg.MockTXManager
	notifier         *MockNotifier
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		groupRepo:        NewMockGroupRepo(ctrl),
		memberRepo:       NewMockMemberRepo(ctrl),
		contributionRepo: NewMockContributionRepo(ctrl),
		rateRepo:         NewMockRateRepo(ctrl),
		payoutRepo:       NewMockPayoutRepo(ctrl),
		txManager:        pg.NewMockTXManager(ctrl),
		notifier:         NewMockNotifier(ctrl),
	}
	service := New(m.groupRepo, m.memberRepo, m.contributionRepo, m.rateRepo, m.payoutRepo, m.txManager, m.notifier)
	defer ctrl.Finish()
	return service, m
}

func testGroup() *domain.Group {
	return &domain.Group{
		ID:              1,
		OrganizerID:     100,
		Name:            "Umurenge Savings",
		JoinCode:        "2377225624",
		CycleDays:       30,
		CurrentCycle:    3,
		CycleStartDate:  day(1),
		GroupType:       domain.GroupTypeFullPlatform,
		DefaultCurrency: "RWF",
		Status:          domain.GroupStatusActive,
	}
}

func passThroughTx(m *serviceMocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestPreview(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		userID      int
		prepareMock func()
		wantErr     error
		wantRows    int
	}{
		{
			name:   "Preview returns breakdowns for the active window",
			userID: 100,
			prepareMock: func() {
				group := testGroup()
				m.groupRepo.EXPECT().FindByID(gomock.Any(), 1).Return(group, nil)
				m.memberRepo.EXPECT().FindByGroupID(gomock.Any(), 1, true).Return(testMembers, nil)
				m.contributionRepo.EXPECT().FindConfirmedInWindow(gomock.Any(), 1, day(1), day(31)).Return([]domain.Contribution{
					contribution(7, "2000", day(1), "RWF"),
					contribution(7, "2000", day(2), "RWF"),
				}, nil)
				m.rateRepo.EXPECT().FindActiveByGroup(gomock.Any(), 1).Return([]domain.RateDeclaration{
					{MemberID: 7, Currency: "RWF", DailyRate: d("2000"), IsActive: true},
				}, nil)
			},
			wantRows: 1,
		},
		{
			name:   "Group not found",
			userID: 100,
			prepareMock: func() {
				m.groupRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			wantErr: ErrGroupNotFound,
		},
		{
			name:   "Caller is not the organizer",
			userID: 200,
			prepareMock: func() {
				m.groupRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testGroup(), nil)
			},
			wantErr: ErrNotOrganizer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			preview, err := service.Preview(context.Background(), 1, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, preview)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, preview.Breakdowns, tt.wantRows)
			assert.Equal(t, day(1), preview.WindowStart)
			assert.Equal(t, day(31), preview.WindowEnd)
			assert.True(t, d("2000").Equal(preview.Breakdowns[0].NetPayout))
		})
	}
}

func TestFinalize(t *testing.T) {
	t.Run("Successful finalization persists payout and advances cycle", func(t *testing.T) {
		service, m := NewMock(t)
		group := testGroup()

		passThroughTx(m)
		m.groupRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(group, nil)
		m.payoutRepo.EXPECT().FindByGroupAndCycle(gomock.Any(), 1, 3).Return(nil, nil)
		m.memberRepo.EXPECT().FindByGroupID(gomock.Any(), 1, true).Return(testMembers, nil)
		m.contributionRepo.EXPECT().FindConfirmedInWindow(gomock.Any(), 1, day(1), day(31)).Return([]domain.Contribution{
			contribution(7, "2000", day(1), "RWF"),
			contribution(7, "2000", day(2), "RWF"),
			contribution(8, "3000", day(2), "RWF"),
		}, nil)
		m.rateRepo.EXPECT().FindActiveByGroup(gomock.Any(), 1).Return([]domain.RateDeclaration{
			{MemberID: 7, Currency: "RWF", DailyRate: d("2000"), IsActive: true},
			{MemberID: 8, Currency: "RWF", DailyRate: d("1000"), IsActive: true},
		}, nil)
		m.payoutRepo.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
				assert.Equal(t, 1, p.GroupID)
				assert.Equal(t, 3, p.CycleNumber)
				assert.Equal(t, 2, p.ItemCount)
				assert.True(t, d("3000").Equal(p.FeeTotal), "feeTotal %s", p.FeeTotal)
				p.ID = 10
				return p, nil
			})
		m.payoutRepo.EXPECT().CreateItems(gomock.Any(), 10, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, items []domain.PayoutItem) error {
				assert.Len(t, items, 2)
				for _, it := range items {
					assert.Equal(t, domain.PayoutItemPending, it.Status)
					assert.True(t, it.NetPayout.Equal(it.TotalSaved.Sub(it.OrganizerFee)))
				}
				return nil
			})
		m.groupRepo.EXPECT().AdvanceCycle(gomock.Any(), 1, 3).Return(nil)
		m.notifier.EXPECT().CycleFinalized(gomock.Any())

		payout, err := service.Finalize(context.Background(), 1, 100, 1)

		assert.NoError(t, err)
		assert.Equal(t, 10, payout.ID)
		assert.Equal(t, 3, payout.CycleNumber)
	})

	t.Run("Empty cycle blocks finalization with no writes", func(t *testing.T) {
		service, m := NewMock(t)

		passThroughTx(m)
		m.groupRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(testGroup(), nil)
		m.payoutRepo.EXPECT().FindByGroupAndCycle(gomock.Any(), 1, 3).Return(nil, nil)
		m.memberRepo.EXPECT().FindByGroupID(gomock.Any(), 1, true).Return(testMembers, nil)
		m.contributionRepo.EXPECT().FindConfirmedInWindow(gomock.Any(), 1, day(1), day(31)).Return(nil, nil)
		m.rateRepo.EXPECT().FindActiveByGroup(gomock.Any(), 1).Return(nil, nil)

		payout, err := service.Finalize(context.Background(), 1, 100, 1)

		assert.ErrorIs(t, err, ErrEmptyCycle)
		assert.Nil(t, payout)
	})

	t.Run("Second finalization for the same cycle is refused", func(t *testing.T) {
		service, m := NewMock(t)

		passThroughTx(m)
		m.groupRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(testGroup(), nil)
		m.payoutRepo.EXPECT().FindByGroupAndCycle(gomock.Any(), 1, 3).Return(&domain.Payout{ID: 9, GroupID: 1, CycleNumber: 3}, nil)

		payout, err := service.Finalize(context.Background(), 1, 100, 1)

		assert.ErrorIs(t, err, ErrCycleAlreadyFinalized)
		assert.Nil(t, payout)
	})

	t.Run("Concurrent cycle advance maps to already finalized", func(t *testing.T) {
		service, m := NewMock(t)
		group := testGroup()

		passThroughTx(m)
		m.groupRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(group, nil)
		m.payoutRepo.EXPECT().FindByGroupAndCycle(gomock.Any(), 1, 3).Return(nil, nil)
		m.memberRepo.EXPECT().FindByGroupID(gomock.Any(), 1, true).Return(testMembers, nil)
		m.contributionRepo.EXPECT().FindConfirmedInWindow(gomock.Any(), 1, day(1), day(31)).Return([]domain.Contribution{
			contribution(7, "2000", day(1), "RWF"),
		}, nil)
		m.rateRepo.EXPECT().FindActiveByGroup(gomock.Any(), 1).Return(nil, nil)
		m.payoutRepo.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
				p.ID = 11
				return p, nil
			})
		m.payoutRepo.EXPECT().CreateItems(gomock.Any(), 11, gomock.Any()).Return(nil)
		m.groupRepo.EXPECT().AdvanceCycle(gomock.Any(), 1, 3).Return(grouprepo.ErrCycleMoved)

		payout, err := service.Finalize(context.Background(), 1, 100, 1)

		assert.ErrorIs(t, err, ErrCycleAlreadyFinalized)
		assert.Nil(t, payout)
	})

	t.Run("Not the organizer", func(t *testing.T) {
		service, m := NewMock(t)

		passThroughTx(m)
		m.groupRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(testGroup(), nil)

		payout, err := service.Finalize(context.Background(), 1, 999, 1)

		assert.ErrorIs(t, err, ErrNotOrganizer)
		assert.Nil(t, payout)
	})

	t.Run("Group not found", func(t *testing.T) {
		service, m := NewMock(t)

		passThroughTx(m)
		m.groupRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, nil)

		payout, err := service.Finalize(context.Background(), 1, 100, 1)

		assert.ErrorIs(t, err, ErrGroupNotFound)
		assert.Nil(t, payout)
	})

	t.Run("Item insert failure aborts the transaction", func(t *testing.T) {
		service, m := NewMock(t)
		group := testGroup()

		passThroughTx(m)
		m.groupRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(group, nil)
		m.payoutRepo.EXPECT().FindByGroupAndCycle(gomock.Any(), 1, 3).Return(nil, nil)
		m.memberRepo.EXPECT().FindByGroupID(gomock.Any(), 1, true).Return(testMembers, nil)
		m.contributionRepo.EXPECT().FindConfirmedInWindow(gomock.Any(), 1, day(1), day(31)).Return([]domain.Contribution{
			contribution(7, "2000", day(1), "RWF"),
		}, nil)
		m.rateRepo.EXPECT().FindActiveByGroup(gomock.Any(), 1).Return(nil, nil)
		m.payoutRepo.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
				p.ID = 12
				return p, nil
			})
		m.payoutRepo.EXPECT().CreateItems(gomock.Any(), 12, gomock.Any()).Return(errors.New("insert failed"))

		payout, err := service.Finalize(context.Background(), 1, 100, 1)

		assert.Error(t, err)
		assert.Nil(t, payout)
	})
}

func TestFinalize_OrganizerOnlyMinPayments(t *testing.T) {
	service, m := NewMock(t)
	group := testGroup()
	group.GroupType = domain.GroupTypeOrganizerOnly

	passThroughTx(m)
	m.groupRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(group, nil)
	m.payoutRepo.EXPECT().FindByGroupAndCycle(gomock.Any(), 1, 3).Return(nil, nil)
	m.memberRepo.EXPECT().FindByGroupID(gomock.Any(), 1, true).Return(testMembers, nil)
	m.contributionRepo.EXPECT().FindConfirmedInWindow(gomock.Any(), 1, day(1), day(31)).Return([]domain.Contribution{
		contribution(7, "1000", day(1), "RWF"),
		contribution(7, "3000", day(2), "RWF"),
		contribution(8, "2000", day(1), "RWF"),
	}, nil)
	m.payoutRepo.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
			// member 8 has one payment day, below the threshold of 2
			assert.Equal(t, 1, p.ItemCount)
			assert.True(t, d("2000").Equal(p.FeeTotal), "feeTotal %s", p.FeeTotal)
			p.ID = 13
			return p, nil
		})
	m.payoutRepo.EXPECT().CreateItems(gomock.Any(), 13, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, items []domain.PayoutItem) error {
			assert.Len(t, items, 1)
			assert.Equal(t, 7, items[0].MemberID)
			assert.True(t, d("2000").Equal(items[0].OrganizerFee))
			return nil
		})
	m.groupRepo.EXPECT().AdvanceCycle(gomock.Any(), 1, 3).Return(nil)
	m.notifier.EXPECT().CycleFinalized(gomock.Any())

	payout, err := service.Finalize(context.Background(), 1, 100, 2)

	assert.NoError(t, err)
	assert.Equal(t, 13, payout.ID)
}

func TestMarkItemPaid(t *testing.T) {
	organizerOnlyGroup := func() *domain.Group {
		g := testGroup()
		g.GroupType = domain.GroupTypeOrganizerOnly
		return g
	}

	tests := []struct {
		name        string
		userID      int
		prepareMock func(m *serviceMocks)
		wantErr     error
	}{
		{
			name:   "Organizer marks item paid",
			userID: 100,
			prepareMock: func(m *serviceMocks) {
				m.payoutRepo.EXPECT().FindItemByID(gomock.Any(), 5).Return(&domain.PayoutItem{ID: 5, PayoutID: 2, Status: domain.PayoutItemPending}, nil)
				m.payoutRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Payout{ID: 2, GroupID: 1, CycleNumber: 2}, nil)
				m.groupRepo.EXPECT().FindByID(gomock.Any(), 1).Return(organizerOnlyGroup(), nil)
				m.payoutRepo.EXPECT().UpdateItemStatus(gomock.Any(), 5, domain.PayoutItemPaid).Return(nil)
			},
		},
		{
			name:   "Item not found",
			userID: 100,
			prepareMock: func(m *serviceMocks) {
				m.payoutRepo.EXPECT().FindItemByID(gomock.Any(), 5).Return(nil, nil)
			},
			wantErr: ErrItemNotFound,
		},
		{
			name:   "Not the organizer",
			userID: 999,
			prepareMock: func(m *serviceMocks) {
				m.payoutRepo.EXPECT().FindItemByID(gomock.Any(), 5).Return(&domain.PayoutItem{ID: 5, PayoutID: 2}, nil)
				m.payoutRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Payout{ID: 2, GroupID: 1}, nil)
				m.groupRepo.EXPECT().FindByID(gomock.Any(), 1).Return(organizerOnlyGroup(), nil)
			},
			wantErr: ErrNotOrganizer,
		},
		{
			name:   "Full platform groups have no manual disbursement",
			userID: 100,
			prepareMock: func(m *serviceMocks) {
				m.payoutRepo.EXPECT().FindItemByID(gomock.Any(), 5).Return(&domain.PayoutItem{ID: 5, PayoutID: 2}, nil)
				m.payoutRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Payout{ID: 2, GroupID: 1}, nil)
				m.groupRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testGroup(), nil)
			},
			wantErr: ErrWrongGroupType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.MarkItemPaid(context.Background(), 5, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetPayouts(t *testing.T) {
	service, m := NewMock(t)

	m.groupRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testGroup(), nil)
	m.payoutRepo.EXPECT().FindByGroupID(gomock.Any(), 1).Return([]domain.Payout{
		{ID: 3, GroupID: 1, CycleNumber: 2, PayoutDate: time.Now()},
		{ID: 2, GroupID: 1, CycleNumber: 1, PayoutDate: time.Now()},
	}, nil)

	payouts, err := service.GetPayouts(context.Background(), 1, 100)

	assert.NoError(t, err)
	assert.Len(t, payouts, 2)
	assert.Equal(t, 2, payouts[0].CycleNumber)
}
