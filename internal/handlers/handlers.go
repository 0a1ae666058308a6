package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mkarenzi/ikimina/docs"
	authhandlers "github.com/mkarenzi/ikimina/internal/handlers/auth"
	grouphandlers "github.com/mkarenzi/ikimina/internal/handlers/groups"
	paymenthandlers "github.com/mkarenzi/ikimina/internal/handlers/payments"
	payouthandlers "github.com/mkarenzi/ikimina/internal/handlers/payouts"
	"github.com/mkarenzi/ikimina/internal/service"
	"github.com/mkarenzi/ikimina/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type GroupHandler interface {
	CreateGroup(w http.ResponseWriter, r *http.Request)
	GetGroups(w http.ResponseWriter, r *http.Request)
	GetGroup(w http.ResponseWriter, r *http.Request)
	UpdateGroup(w http.ResponseWriter, r *http.Request)
	JoinGroup(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	GetMembers(w http.ResponseWriter, r *http.Request)
	DeactivateMember(w http.ResponseWriter, r *http.Request)
	JoinCodeQR(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	RecordPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	UpdatePayment(w http.ResponseWriter, r *http.Request)
	ArchivePayment(w http.ResponseWriter, r *http.Request)
	DeclareRate(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	GetPayouts(w http.ResponseWriter, r *http.Request)
	DownloadStatement(w http.ResponseWriter, r *http.Request)
	MarkItemPaid(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	GroupHandler   GroupHandler
	PaymentHandler PaymentHandler
	PayoutHandler  PayoutHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		GroupHandler:   grouphandlers.New(s.GroupService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		PayoutHandler:  payouthandlers.New(s.PayoutService, s.ReportService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/api/groups", func(r chi.Router) {
			r.Post("/", h.GroupHandler.CreateGroup)
			r.Get("/", h.GroupHandler.GetGroups)
			r.Post("/join", h.GroupHandler.JoinGroup)
			r.Route("/{groupID}", func(r chi.Router) {
				r.Get("/", h.GroupHandler.GetGroup)
				r.Patch("/", h.GroupHandler.UpdateGroup)
				r.Get("/joincode/qr", h.GroupHandler.JoinCodeQR)
				r.Route("/members", func(r chi.Router) {
					r.Post("/", h.GroupHandler.AddMember)
					r.Get("/", h.GroupHandler.GetMembers)
					r.Delete("/{memberID}", h.GroupHandler.DeactivateMember)
					r.Put("/{memberID}/rate", h.PaymentHandler.DeclareRate)
				})
				r.Route("/payments", func(r chi.Router) {
					r.Post("/", h.PaymentHandler.RecordPayment)
					r.Get("/", h.PaymentHandler.ListPayments)
				})
				r.Route("/payouts", func(r chi.Router) {
					r.Post("/", h.PayoutHandler.Finalize)
					r.Get("/", h.PayoutHandler.GetPayouts)
					r.Get("/preview", h.PayoutHandler.Preview)
					r.Get("/{cycle}/report", h.PayoutHandler.DownloadStatement)
				})
			})
		})
		r.Route("/api/payments", func(r chi.Router) {
			r.Patch("/{paymentID}", h.PaymentHandler.UpdatePayment)
			r.Delete("/{paymentID}", h.PaymentHandler.ArchivePayment)
		})
		r.Patch("/api/payouts/items/{itemID}", h.PayoutHandler.MarkItemPaid)
	})

	return r
}
