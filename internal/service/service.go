package service

import (
	"github.com/GlebRadaev/afftrack/internal/config"
	"github.com/GlebRadaev/afftrack/internal/handlers/affiliates"
	"github.com/GlebRadaev/afftrack/internal/handlers/invoices"
	"github.com/GlebRadaev/afftrack/internal/handlers/orders"
	"github.com/GlebRadaev/afftrack/internal/handlers/stats"
	"github.com/GlebRadaev/afftrack/internal/handlers/tracking"
	"github.com/GlebRadaev/afftrack/internal/repo"
	"github.com/GlebRadaev/afftrack/internal/service/affiliateservice"
	"github.com/GlebRadaev/afftrack/internal/service/attributionservice"
	"github.com/GlebRadaev/afftrack/internal/service/commissionservice"
	"github.com/GlebRadaev/afftrack/internal/service/funnelservice"
	"github.com/GlebRadaev/afftrack/internal/service/invoiceservice"
	pkgauth "github.com/GlebRadaev/afftrack/pkg/auth"
)

type Services struct {
	AttributionService tracking.AttributionService
	FunnelService      tracking.FunnelService
	StatsService       stats.Service
	CommissionService  orders.Service
	AffiliateService   affiliates.Service
	InvoiceService     invoices.Service
}

// New wires the services. cache and publisher are optional and may be nil.
func New(repo *repo.Repositories, cfg *config.Config, cache attributionservice.Cache, publisher funnelservice.Publisher) *Services {
	attributionService := attributionservice.New(repo.AttributionRepo, cache)
	funnelService := funnelservice.New(repo.EventRepo, attributionService, publisher)
	invoiceService := invoiceservice.New(repo.InvoiceRepo, repo.CommissionRepo, repo.TxManager)
	commissionService := commissionservice.New(repo.CommissionRepo, repo.AffiliateRepo, attributionService,
		funnelService, invoiceService, repo.TxManager, cfg.RequireActive)
	affiliateService := affiliateservice.New(repo.AffiliateRepo, repo.PostbackRepo, &pkgauth.BcryptHasher{}, cfg.PublicBaseURL)

	return &Services{
		AttributionService: attributionService,
		FunnelService:      funnelService,
		StatsService:       funnelService,
		CommissionService:  commissionService,
		AffiliateService:   affiliateService,
		InvoiceService:     invoiceService,
	}
}
