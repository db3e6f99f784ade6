package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// AttributionWindow is the fixed last-click window; attributions are purged on read after it elapses.
const AttributionWindow = 30 * 24 * time.Hour

// InvoiceDueIn is the delay between invoice creation and its due date.
const InvoiceDueIn = 30 * 24 * time.Hour

type EventType string

const (
	EventPageView              EventType = "page_view"
	EventFormFill              EventType = "form_fill"
	EventCheckoutView          EventType = "checkout_view"
	EventAddedMultiplePackages EventType = "added_multiple_packages"
	EventPaymentSubmit         EventType = "payment_submit"
	EventSale                  EventType = "sale"
)

// FunnelOrder is the canonical stage sequence used for funnel statistics.
var FunnelOrder = []EventType{
	EventPageView,
	EventFormFill,
	EventCheckoutView,
	EventAddedMultiplePackages,
	EventPaymentSubmit,
	EventSale,
}

func (e EventType) Valid() bool {
	for _, t := range FunnelOrder {
		if t == e {
			return true
		}
	}
	return false
}

type AffiliateStatus string

const (
	AffiliateActive    AffiliateStatus = "active"
	AffiliatePending   AffiliateStatus = "pending"
	AffiliateSuspended AffiliateStatus = "suspended"
)

func (s AffiliateStatus) Valid() bool {
	return s == AffiliateActive || s == AffiliatePending || s == AffiliateSuspended
}

type PayoutType string

const (
	PayoutCPA        PayoutType = "cpa"
	PayoutPercentage PayoutType = "percentage"
)

func (p PayoutType) Valid() bool {
	return p == PayoutCPA || p == PayoutPercentage
}

type OrderStatus string

const (
	OrderCompleted  OrderStatus = "completed"
	OrderRefunded   OrderStatus = "refunded"
	OrderChargeback OrderStatus = "chargeback"
	OrderDeclined   OrderStatus = "declined"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderCompleted, OrderRefunded, OrderChargeback, OrderDeclined:
		return true
	}
	return false
}

type DeliveryStatus string

const (
	DeliverySuccess DeliveryStatus = "success"
	DeliveryFailed  DeliveryStatus = "failed"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

type CommissionKind string

const (
	CommissionSale     CommissionKind = "sale"
	CommissionReversal CommissionKind = "reversal"
)

// SubIDs holds up to five sub-identifiers keyed sub, sub2..sub5.
type SubIDs map[string]string

type Attribution struct {
	VisitorID   string    `db:"visitor_id"`
	AffiliateID string    `db:"affiliate_id"`
	SubIDs      SubIDs    `db:"sub_ids"`
	Campaign    string    `db:"campaign"`
	SetAt       time.Time `db:"set_at"`
	ExpiresAt   time.Time `db:"expires_at"`
}

// Expired reports whether the attribution is no longer live at now.
func (a *Attribution) Expired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}

type FunnelEvent struct {
	EventID       string           `db:"event_id"`
	VisitorID     string           `db:"visitor_id"`
	EventType     EventType        `db:"event_type"`
	AffiliateID   string           `db:"affiliate_id"`
	SubIDs        SubIDs           `db:"sub_ids"`
	OrderID       string           `db:"order_id"`
	PackageCount  int              `db:"package_count"`
	Amount        *decimal.Decimal `db:"amount"`
	Commission    *decimal.Decimal `db:"commission"`
	TransactionID string           `db:"transaction_id"`
	OccurredAt    time.Time        `db:"occurred_at"`
	DispatchedAt  *time.Time       `db:"dispatched_at"`
}

type AffiliateAccount struct {
	AffiliateID         string          `db:"affiliate_id"`
	Name                string          `db:"name"`
	Email               string          `db:"email"`
	Status              AffiliateStatus `db:"status"`
	DefaultPayoutType   PayoutType      `db:"default_payout_type"`
	DefaultPayoutAmount decimal.Decimal `db:"default_payout_amount"`
	CredentialHash      string          `db:"credential_hash"`
	CreatedAt           time.Time       `db:"created_at"`
}

type AffiliateLink struct {
	LinkID       string           `db:"link_id"`
	AffiliateID  string           `db:"affiliate_id"`
	Name         string           `db:"name"`
	PayoutType   PayoutType       `db:"payout_type"`
	PayoutAmount decimal.Decimal  `db:"payout_amount"`
	CustomPrice  *decimal.Decimal `db:"custom_price"`
	IsDefault    bool             `db:"is_default"`
	TrackingURL  string           `db:"tracking_url"`
	CreatedAt    time.Time        `db:"created_at"`
}

type Order struct {
	OrderID                string          `db:"order_id"`
	VisitorID              string          `db:"visitor_id"`
	AffiliateID            string          `db:"affiliate_id"`
	LinkID                 string          `db:"link_id"`
	SubIDs                 SubIDs          `db:"sub_ids"`
	TransactionID          string          `db:"transaction_id"`
	Amount                 decimal.Decimal `db:"amount"`
	PackageCount           int             `db:"package_count"`
	IsFirstSaleForCustomer bool            `db:"is_first_sale"`
	Status                 OrderStatus     `db:"status"`
	CreatedAt              time.Time       `db:"created_at"`
	UpdatedAt              time.Time       `db:"updated_at"`
}

// Commission is one invoice line item: a recognized sale or its reversal.
type Commission struct {
	CommissionID string          `db:"commission_id"`
	OrderID      string          `db:"order_id"`
	AffiliateID  string          `db:"affiliate_id"`
	LinkID       string          `db:"link_id"`
	Kind         CommissionKind  `db:"kind"`
	Amount       decimal.Decimal `db:"amount"`
	InvoiceID    *string         `db:"invoice_id"`
	CreatedAt    time.Time       `db:"created_at"`
}

type PostbackConfig struct {
	ID          string    `db:"id"`
	AffiliateID string    `db:"affiliate_id"`
	EventType   EventType `db:"event_type"`
	URLTemplate string    `db:"url_template"`
	Enabled     bool      `db:"enabled"`
	CreatedAt   time.Time `db:"created_at"`
}

type PostbackLog struct {
	PostbackID  string         `db:"postback_id"`
	ConfigID    string         `db:"config_id"`
	AffiliateID string         `db:"affiliate_id"`
	EventID     string         `db:"event_id"`
	EventType   EventType      `db:"event_type"`
	OrderID     string         `db:"order_id"`
	RenderedURL string         `db:"rendered_url"`
	Status      DeliveryStatus `db:"status"`
	StatusCode  *int           `db:"status_code"`
	Error       *string        `db:"error"`
	CreatedAt   time.Time      `db:"created_at"`
}

type Invoice struct {
	InvoiceID       string          `db:"invoice_id"`
	AffiliateID     string          `db:"affiliate_id"`
	InvoiceNumber   string          `db:"invoice_number"`
	PeriodStart     time.Time       `db:"period_start"`
	PeriodEnd       time.Time       `db:"period_end"`
	TotalCommission decimal.Decimal `db:"total_commission"`
	AmountPaid      decimal.Decimal `db:"amount_paid"`
	AmountOwed      decimal.Decimal `db:"amount_owed"`
	Status          InvoiceStatus   `db:"status"`
	DueDate         time.Time       `db:"due_date"`
	PaidDate        *time.Time      `db:"paid_date"`
	CreatedAt       time.Time       `db:"created_at"`
	DeletedAt       *time.Time      `db:"deleted_at"`
}

type InvoicePayment struct {
	PaymentID   string          `db:"payment_id"`
	InvoiceID   string          `db:"invoice_id"`
	AffiliateID string          `db:"affiliate_id"`
	Amount      decimal.Decimal `db:"amount"`
	Applied     decimal.Decimal `db:"applied"`
	Overpayment decimal.Decimal `db:"overpayment"`
	CreatedAt   time.Time       `db:"created_at"`
}

// InvoiceCorrection is a credit note raised when a chargeback reverses commission
// the affiliate has already been paid for.
type InvoiceCorrection struct {
	CorrectionID string          `db:"correction_id"`
	InvoiceID    string          `db:"invoice_id"`
	AffiliateID  string          `db:"affiliate_id"`
	CommissionID string          `db:"commission_id"`
	Amount       decimal.Decimal `db:"amount"`
	CreatedAt    time.Time       `db:"created_at"`
}

type AffiliateBalance struct {
	AffiliateID   string          `db:"affiliate_id"`
	OpenBalance   decimal.Decimal `db:"open_balance"`
	PrepaidCredit decimal.Decimal `db:"prepaid_credit"`
	Clawback      decimal.Decimal `db:"clawback"`
}

type FunnelStage struct {
	EventType      EventType
	Count          int64
	ConversionRate float64
}

type FunnelStats struct {
	AffiliateID string
	From        time.Time
	To          time.Time
	Stages      []FunnelStage
}

// JSON encodes the sub-ids for a jsonb column; nil encodes as an empty object.
func (s SubIDs) JSON() []byte {
	if s == nil {
		return []byte("{}")
	}
	b, err := json.Marshal(map[string]string(s))
	if err != nil {
		return []byte("{}")
	}
	return b
}

func ParseSubIDs(b []byte) (SubIDs, error) {
	ids := SubIDs{}
	if len(b) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(b, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
