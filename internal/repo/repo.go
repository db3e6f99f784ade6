package repo

import (
	"github.com/GlebRadaev/afftrack/internal/pg"
	affiliaterepo "github.com/GlebRadaev/afftrack/internal/repo/affiliate-repo"
	attributionrepo "github.com/GlebRadaev/afftrack/internal/repo/attribution-repo"
	commissionrepo "github.com/GlebRadaev/afftrack/internal/repo/commission-repo"
	eventrepo "github.com/GlebRadaev/afftrack/internal/repo/event-repo"
	invoicerepo "github.com/GlebRadaev/afftrack/internal/repo/invoice-repo"
	postbackrepo "github.com/GlebRadaev/afftrack/internal/repo/postback-repo"
)

// Repositories are shared by several services and the postback dispatcher,
// so they are kept as concrete types.
type Repositories struct {
	AttributionRepo *attributionrepo.Repository
	EventRepo       *eventrepo.Repository
	AffiliateRepo   *affiliaterepo.Repository
	CommissionRepo  *commissionrepo.Repository
	PostbackRepo    *postbackrepo.Repository
	InvoiceRepo     *invoicerepo.Repository
	TxManager       pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AttributionRepo: attributionrepo.New(conn),
		EventRepo:       eventrepo.New(conn),
		AffiliateRepo:   affiliaterepo.New(conn, txManager),
		CommissionRepo:  commissionrepo.New(conn),
		PostbackRepo:    postbackrepo.New(conn),
		InvoiceRepo:     invoicerepo.New(conn),
		TxManager:       txManager,
	}
}
