package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/afftrack/docs"
	affiliatehandlers "github.com/GlebRadaev/afftrack/internal/handlers/affiliates"
	invoicehandlers "github.com/GlebRadaev/afftrack/internal/handlers/invoices"
	ordershandlers "github.com/GlebRadaev/afftrack/internal/handlers/orders"
	statshandlers "github.com/GlebRadaev/afftrack/internal/handlers/stats"
	trackinghandlers "github.com/GlebRadaev/afftrack/internal/handlers/tracking"
	"github.com/GlebRadaev/afftrack/internal/metrics"
	"github.com/GlebRadaev/afftrack/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type TrackingHandler interface {
	RecordClick(w http.ResponseWriter, r *http.Request)
	RecordEvent(w http.ResponseWriter, r *http.Request)
	GetAttribution(w http.ResponseWriter, r *http.Request)
	ClearAttribution(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	FinalizeOrder(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	GetFunnelStats(w http.ResponseWriter, r *http.Request)
}

type AffiliateHandler interface {
	CreateAffiliate(w http.ResponseWriter, r *http.Request)
	GetAffiliate(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	CreateLink(w http.ResponseWriter, r *http.Request)
	ListLinks(w http.ResponseWriter, r *http.Request)
	DeleteLink(w http.ResponseWriter, r *http.Request)
	CreatePostbackConfig(w http.ResponseWriter, r *http.Request)
	ListPostbackConfigs(w http.ResponseWriter, r *http.Request)
	SetPostbackEnabled(w http.ResponseWriter, r *http.Request)
	DeletePostbackConfig(w http.ResponseWriter, r *http.Request)
	ListPostbackLogs(w http.ResponseWriter, r *http.Request)
	DispatchEvent(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	GenerateInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	DeleteInvoice(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListCorrections(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TrackingHandler  TrackingHandler
	OrderHandler     OrderHandler
	StatsHandler     StatsHandler
	AffiliateHandler AffiliateHandler
	InvoiceHandler   InvoiceHandler
}

func New(s *service.Services, dispatcher affiliatehandlers.Dispatcher) *Handlers {
	return &Handlers{
		TrackingHandler:  trackinghandlers.New(s.AttributionService, s.FunnelService),
		OrderHandler:     ordershandlers.New(s.CommissionService),
		StatsHandler:     statshandlers.New(s.StatsService),
		AffiliateHandler: affiliatehandlers.New(s.AffiliateService, dispatcher),
		InvoiceHandler:   invoicehandlers.New(s.InvoiceService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/track", func(r chi.Router) {
			r.Post("/click", h.TrackingHandler.RecordClick)
			r.Post("/event", h.TrackingHandler.RecordEvent)
			r.Get("/attribution/{visitorID}", h.TrackingHandler.GetAttribution)
			r.Delete("/attribution/{visitorID}", h.TrackingHandler.ClearAttribution)
		})
		r.Post("/orders/finalize", h.OrderHandler.FinalizeOrder)
		r.Get("/stats/funnel", h.StatsHandler.GetFunnelStats)

		r.Route("/affiliates", func(r chi.Router) {
			r.Post("/", h.AffiliateHandler.CreateAffiliate)
			r.Route("/{affiliateID}", func(r chi.Router) {
				r.Get("/", h.AffiliateHandler.GetAffiliate)
				r.Patch("/status", h.AffiliateHandler.UpdateStatus)
				r.Route("/links", func(r chi.Router) {
					r.Post("/", h.AffiliateHandler.CreateLink)
					r.Get("/", h.AffiliateHandler.ListLinks)
					r.Delete("/{linkID}", h.AffiliateHandler.DeleteLink)
				})
				r.Route("/postbacks", func(r chi.Router) {
					r.Post("/", h.AffiliateHandler.CreatePostbackConfig)
					r.Get("/", h.AffiliateHandler.ListPostbackConfigs)
				})
				r.Get("/postback-logs", h.AffiliateHandler.ListPostbackLogs)
				r.Route("/invoices", func(r chi.Router) {
					r.Post("/", h.InvoiceHandler.GenerateInvoice)
					r.Get("/", h.InvoiceHandler.ListInvoices)
				})
				r.Get("/balance", h.InvoiceHandler.GetBalance)
				r.Get("/corrections", h.InvoiceHandler.ListCorrections)
				r.Get("/payments", h.InvoiceHandler.ListPayments)
			})
		})

		r.Route("/postbacks/{configID}", func(r chi.Router) {
			r.Patch("/", h.AffiliateHandler.SetPostbackEnabled)
			r.Delete("/", h.AffiliateHandler.DeletePostbackConfig)
		})
		r.Post("/events/{eventID}/dispatch", h.AffiliateHandler.DispatchEvent)

		r.Route("/invoices/{invoiceID}", func(r chi.Router) {
			r.Get("/", h.InvoiceHandler.GetInvoice)
			r.Delete("/", h.InvoiceHandler.DeleteInvoice)
			r.Post("/payments", h.InvoiceHandler.RecordPayment)
		})
	})

	return r
}
