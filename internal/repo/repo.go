package repo

import (
	contributionrepo "github.com/mkarenzi/ikimina/internal/repo/contribution-repo"
	grouprepo "github.com/mkarenzi/ikimina/internal/repo/group-repo"
	memberrepo "github.com/mkarenzi/ikimina/internal/repo/member-repo"
	payoutrepo "github.com/mkarenzi/ikimina/internal/repo/payout-repo"
	raterepo "github.com/mkarenzi/ikimina/internal/repo/rate-repo"
	userrepo "github.com/mkarenzi/ikimina/internal/repo/user-repo"

	"github.com/mkarenzi/ikimina/internal/pg"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	GroupRepo        *grouprepo.Repository
	MemberRepo       *memberrepo.Repository
	ContributionRepo *contributionrepo.Repository
	RateRepo         *raterepo.Repository
	PayoutRepo       *payoutrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		GroupRepo:        grouprepo.New(conn, txManager),
		MemberRepo:       memberrepo.New(conn),
		ContributionRepo: contributionrepo.New(conn, txManager),
		RateRepo:         raterepo.New(conn, txManager),
		PayoutRepo:       payoutrepo.New(conn),
	}
}
