package domain

import "errors"

// Configuration errors are rejected when affiliates, links or postbacks are written.
var (
	ErrInvalidPayout       = errors.New("payout amount must be positive and percentage payouts at most 100")
	ErrInvalidPayoutType   = errors.New("unknown payout type")
	ErrInvalidStatus       = errors.New("unknown affiliate status")
	ErrMissingDefaultLink  = errors.New("affiliate has no default link")
	ErrDefaultLinkDelete   = errors.New("default link cannot be deleted")
	ErrUnknownEventType    = errors.New("unknown event type")
	ErrEmptyTemplate       = errors.New("postback template is empty")
	ErrAffiliateExists     = errors.New("affiliate already exists")
	ErrInvalidAffiliateID  = errors.New("affiliate id is required")
	ErrInvalidCustomPrice  = errors.New("custom price must be positive")
	ErrInvalidOrder        = errors.New("order id, status and non-negative amount are required")
	ErrInvalidVisitor      = errors.New("visitor id is required")
	ErrInvalidPeriod       = errors.New("period end must be after period start")
	ErrInvalidInvoiceTotal = errors.New("invoice total must be positive")
)

var (
	ErrAffiliateNotFound = errors.New("affiliate not found")
	ErrLinkNotFound      = errors.New("link not found")
	ErrConfigNotFound    = errors.New("postback config not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")
)

var (
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	// ErrLedgerInvariant aborts the mutating transaction instead of persisting an inconsistent invoice.
	ErrLedgerInvariant = errors.New("ledger invariant violated: amount paid + amount owed != total commission")
)
