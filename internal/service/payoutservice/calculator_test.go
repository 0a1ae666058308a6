package payoutservice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mkarenzi/ikimina/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(n int) time.Time {
	return time.Date(2025, 8, n, 0, 0, 0, 0, time.UTC)
}

func contribution(memberID int, amount string, paymentDate time.Time, currency string) domain.Contribution {
	return domain.Contribution{
		MemberID:    memberID,
		GroupID:     1,
		Amount:      d(amount),
		Currency:    currency,
		PaymentDate: paymentDate,
		Status:      domain.ContributionConfirmed,
	}
}

var testMembers = []domain.Member{
	{ID: 7, GroupID: 1, FullName: "Alice Uwase", IsActive: true},
	{ID: 8, GroupID: 1, FullName: "Bosco Niyonzima", IsActive: true},
	{ID: 9, GroupID: 1, FullName: "Claudine Mukamana", IsActive: true},
}

func TestComputeBreakdowns_DeclaredRate(t *testing.T) {
	tests := []struct {
		name          string
		contributions []domain.Contribution
		declarations  []domain.RateDeclaration
		expected      []domain.PayoutBreakdown
	}{
		{
			name: "Two days at declared rate",
			contributions: []domain.Contribution{
				contribution(7, "2000", day(1), "RWF"),
				contribution(7, "2000", day(2), "RWF"),
			},
			declarations: []domain.RateDeclaration{
				{MemberID: 7, Currency: "RWF", DailyRate: d("2000"), IsActive: true},
			},
			expected: []domain.PayoutBreakdown{
				{MemberID: 7, MemberName: "Alice Uwase", Currency: "RWF", TotalSaved: d("4000"), OrganizerFee: d("2000"), NetPayout: d("2000"), DaysContributed: 2},
			},
		},
		{
			name: "Single payment below daily rate goes negative",
			contributions: []domain.Contribution{
				contribution(7, "500", day(1), "RWF"),
			},
			declarations: []domain.RateDeclaration{
				{MemberID: 7, Currency: "RWF", DailyRate: d("2000"), IsActive: true},
			},
			expected: []domain.PayoutBreakdown{
				{MemberID: 7, MemberName: "Alice Uwase", Currency: "RWF", TotalSaved: d("500"), OrganizerFee: d("2000"), NetPayout: d("-1500"), DaysContributed: 1},
			},
		},
		{
			name: "Same-day payments count one contributed day",
			contributions: []domain.Contribution{
				contribution(7, "1000", day(1), "RWF"),
				contribution(7, "1500", day(1), "RWF"),
			},
			declarations: []domain.RateDeclaration{
				{MemberID: 7, Currency: "RWF", DailyRate: d("2000"), IsActive: true},
			},
			expected: []domain.PayoutBreakdown{
				{MemberID: 7, MemberName: "Alice Uwase", Currency: "RWF", TotalSaved: d("2500"), OrganizerFee: d("2000"), NetPayout: d("500"), DaysContributed: 1},
			},
		},
		{
			name: "No declaration means explicit zero fee",
			contributions: []domain.Contribution{
				contribution(8, "3000", day(3), "RWF"),
			},
			declarations: nil,
			expected: []domain.PayoutBreakdown{
				{MemberID: 8, MemberName: "Bosco Niyonzima", Currency: "RWF", TotalSaved: d("3000"), OrganizerFee: d("0"), NetPayout: d("3000"), DaysContributed: 1},
			},
		},
		{
			name: "Only contributing members produce rows",
			contributions: []domain.Contribution{
				contribution(9, "2000", day(5), "RWF"),
			},
			declarations: []domain.RateDeclaration{
				{MemberID: 9, Currency: "RWF", DailyRate: d("1000"), IsActive: true},
			},
			expected: []domain.PayoutBreakdown{
				{MemberID: 9, MemberName: "Claudine Mukamana", Currency: "RWF", TotalSaved: d("2000"), OrganizerFee: d("1000"), NetPayout: d("1000"), DaysContributed: 1},
			},
		},
		{
			name: "One row per currency, fee looked up per currency",
			contributions: []domain.Contribution{
				contribution(7, "2000", day(1), "RWF"),
				contribution(7, "5", day(1), "USD"),
				contribution(7, "5", day(2), "USD"),
			},
			declarations: []domain.RateDeclaration{
				{MemberID: 7, Currency: "RWF", DailyRate: d("2000"), IsActive: true},
			},
			expected: []domain.PayoutBreakdown{
				{MemberID: 7, MemberName: "Alice Uwase", Currency: "RWF", TotalSaved: d("2000"), OrganizerFee: d("2000"), NetPayout: d("0"), DaysContributed: 1},
				{MemberID: 7, MemberName: "Alice Uwase", Currency: "USD", TotalSaved: d("10"), OrganizerFee: d("0"), NetPayout: d("10"), DaysContributed: 2},
			},
		},
		{
			name:          "No contributions yields empty result",
			contributions: nil,
			declarations:  nil,
			expected:      []domain.PayoutBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewDeclaredRatePolicy(tt.declarations)
			got := ComputeBreakdowns(testMembers, tt.contributions, policy, 1)

			assert.Len(t, got, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.MemberID, got[i].MemberID)
				assert.Equal(t, want.MemberName, got[i].MemberName)
				assert.Equal(t, want.Currency, got[i].Currency)
				assert.True(t, want.TotalSaved.Equal(got[i].TotalSaved), "totalSaved: want %s got %s", want.TotalSaved, got[i].TotalSaved)
				assert.True(t, want.OrganizerFee.Equal(got[i].OrganizerFee), "organizerFee: want %s got %s", want.OrganizerFee, got[i].OrganizerFee)
				assert.True(t, want.NetPayout.Equal(got[i].NetPayout), "netPayout: want %s got %s", want.NetPayout, got[i].NetPayout)
				assert.Equal(t, want.DaysContributed, got[i].DaysContributed)
			}
		})
	}
}

func TestComputeBreakdowns_AverageObserved(t *testing.T) {
	tests := []struct {
		name          string
		contributions []domain.Contribution
		minDays       int
		expected      []domain.PayoutBreakdown
	}{
		{
			name: "Fee is one average observed day",
			contributions: []domain.Contribution{
				contribution(7, "1000", day(1), "RWF"),
				contribution(7, "3000", day(2), "RWF"),
			},
			minDays: 1,
			expected: []domain.PayoutBreakdown{
				{MemberID: 7, MemberName: "Alice Uwase", Currency: "RWF", TotalSaved: d("4000"), OrganizerFee: d("2000"), NetPayout: d("2000"), DaysContributed: 2},
			},
		},
		{
			name: "Members below the minimum payments filter drop out entirely",
			contributions: []domain.Contribution{
				contribution(7, "2000", day(1), "RWF"),
				contribution(7, "2000", day(2), "RWF"),
				contribution(8, "2000", day(1), "RWF"),
			},
			minDays: 2,
			expected: []domain.PayoutBreakdown{
				{MemberID: 7, MemberName: "Alice Uwase", Currency: "RWF", TotalSaved: d("4000"), OrganizerFee: d("2000"), NetPayout: d("2000"), DaysContributed: 2},
			},
		},
		{
			name: "Single day fee equals the whole saving",
			contributions: []domain.Contribution{
				contribution(8, "1500", day(4), "RWF"),
			},
			minDays: 1,
			expected: []domain.PayoutBreakdown{
				{MemberID: 8, MemberName: "Bosco Niyonzima", Currency: "RWF", TotalSaved: d("1500"), OrganizerFee: d("1500"), NetPayout: d("0"), DaysContributed: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBreakdowns(testMembers, tt.contributions, AverageObservedPolicy{}, tt.minDays)

			assert.Len(t, got, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.MemberID, got[i].MemberID)
				assert.True(t, want.TotalSaved.Equal(got[i].TotalSaved), "totalSaved: want %s got %s", want.TotalSaved, got[i].TotalSaved)
				assert.True(t, want.OrganizerFee.Equal(got[i].OrganizerFee), "organizerFee: want %s got %s", want.OrganizerFee, got[i].OrganizerFee)
				assert.True(t, want.NetPayout.Equal(got[i].NetPayout), "netPayout: want %s got %s", want.NetPayout, got[i].NetPayout)
				assert.Equal(t, want.DaysContributed, got[i].DaysContributed)
			}
		})
	}
}

func TestComputeBreakdowns_StableOrder(t *testing.T) {
	contributions := []domain.Contribution{
		contribution(9, "100", day(1), "RWF"),
		contribution(7, "100", day(1), "RWF"),
		contribution(8, "100", day(1), "RWF"),
	}

	got := ComputeBreakdowns(testMembers, contributions, NewDeclaredRatePolicy(nil), 1)

	names := make([]string, len(got))
	for i, b := range got {
		names[i] = b.MemberName
	}
	assert.Equal(t, []string{"Alice Uwase", "Bosco Niyonzima", "Claudine Mukamana"}, names)
}

func TestComputeBreakdowns_DecimalExact(t *testing.T) {
	// Fractional amounts must not accumulate float drift across many adds.
	var contributions []domain.Contribution
	for i := 0; i < 10; i++ {
		contributions = append(contributions, contribution(7, "0.10", day(i+1), "USD"))
	}

	got := ComputeBreakdowns(testMembers, contributions, NewDeclaredRatePolicy(nil), 1)

	assert.Len(t, got, 1)
	assert.True(t, d("1.00").Equal(got[0].TotalSaved), "got %s", got[0].TotalSaved)
	assert.True(t, d("1.00").Equal(got[0].NetPayout), "got %s", got[0].NetPayout)
	assert.Equal(t, 10, got[0].DaysContributed)
}

func TestComputeBreakdowns_NetIdentity(t *testing.T) {
	// netPayout must equal totalSaved minus organizerFee for every row, under
	// both fee policies.
	contributions := []domain.Contribution{
		contribution(7, "333.33", day(1), "RWF"),
		contribution(7, "666.67", day(2), "RWF"),
		contribution(8, "123.45", day(1), "RWF"),
	}
	declarations := []domain.RateDeclaration{
		{MemberID: 7, Currency: "RWF", DailyRate: d("250.50"), IsActive: true},
	}

	for _, policy := range []FeePolicy{NewDeclaredRatePolicy(declarations), AverageObservedPolicy{}} {
		for _, b := range ComputeBreakdowns(testMembers, contributions, policy, 1) {
			assert.True(t, b.NetPayout.Equal(b.TotalSaved.Sub(b.OrganizerFee)),
				"member %d %s: %s != %s - %s", b.MemberID, b.Currency, b.NetPayout, b.TotalSaved, b.OrganizerFee)
		}
	}
}
