package service

import (
	"time"

	"github.com/mkarenzi/ikimina/internal/handlers/auth"
	"github.com/mkarenzi/ikimina/internal/handlers/groups"
	"github.com/mkarenzi/ikimina/internal/handlers/payments"
	"github.com/mkarenzi/ikimina/internal/handlers/payouts"

	pkgauth "github.com/mkarenzi/ikimina/pkg/auth"

	"github.com/mkarenzi/ikimina/internal/pg"
	"github.com/mkarenzi/ikimina/internal/repo"
	authservice "github.com/mkarenzi/ikimina/internal/service/authservice"
	groupservice "github.com/mkarenzi/ikimina/internal/service/groupservice"
	paymentservice "github.com/mkarenzi/ikimina/internal/service/paymentservice"
	payoutservice "github.com/mkarenzi/ikimina/internal/service/payoutservice"
	reportservice "github.com/mkarenzi/ikimina/internal/service/reportservice"
)

type Services struct {
	AuthService    auth.Service
	GroupService   groups.Service
	PaymentService payments.Service
	PayoutService  payouts.Service
	ReportService  payouts.Reports
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier payoutservice.Notifier, tokenTTL time.Duration) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, tokenTTL)
	groupService := groupservice.New(repo.UserRepo, repo.GroupRepo, repo.MemberRepo)
	paymentService := paymentservice.New(repo.GroupRepo, repo.MemberRepo, repo.ContributionRepo, repo.RateRepo)
	payoutService := payoutservice.New(repo.GroupRepo, repo.MemberRepo, repo.ContributionRepo, repo.RateRepo, repo.PayoutRepo, txManager, notifier)
	reportService := reportservice.New(payoutService, groupService)

	return &Services{
		AuthService:    authService,
		GroupService:   groupService,
		PaymentService: paymentService,
		PayoutService:  payoutService,
		ReportService:  reportService,
	}
}
