package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundflow/internal/config/configs"
	"fundflow/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound adapter for
// HTTP: handlers decode requests, call the usecase ports and translate
// errors to status codes. Routes are registered on a chi.Router.
type Handler struct {
	disbursements port.DisbursementUseCase
	campaigns     port.CampaignUseCase
	milestones    port.MilestoneUseCase
	accounts      port.AccountUseCase
	gateway       port.PaymentGateway

	authCfg configs.Auth
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. Mutating routes
// sit behind the bearer token middleware; reads are public.
func NewHandler(
	disbursements port.DisbursementUseCase,
	campaigns port.CampaignUseCase,
	milestones port.MilestoneUseCase,
	accounts port.AccountUseCase,
	gateway port.PaymentGateway,
	authCfg configs.Auth,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		disbursements: disbursements,
		campaigns:     campaigns,
		milestones:    milestones,
		accounts:      accounts,
		gateway:       gateway,
		authCfg:       authCfg,
		logger:        logger,
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/milestones", h.handleListMilestones)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Get("/me", h.handleMe)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/approve", h.handleApproveCampaign)
			r.Delete("/campaigns/{id}", h.handleCloseCampaign)

			r.Post("/campaigns/{id}/milestones", h.handleCreateMilestone)
			r.Patch("/milestones/{id}", h.handleUpdateMilestone)
			r.Delete("/milestones/{id}", h.handleDeleteMilestone)
			r.Post("/milestones/{id}/vote", h.handleVote)

			r.Post("/payments/order", h.handleCreateOrder)
			r.Post("/payments/verify", h.handleVerifyPayment)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
