package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/afftrack/internal/service/commissionservice"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

type FinalizeOrderRequestDTO struct {
	OrderID                string            `json:"order_id" example:"ORD-1001"`
	VisitorID              string            `json:"visitor_id,omitempty" example:"3f0c9a52-visitor"`
	AffiliateID            string            `json:"affiliate_id,omitempty" example:"9004"`
	LinkID                 string            `json:"link_id,omitempty" example:"lnk_1"`
	SubIDs                 map[string]string `json:"sub_ids,omitempty"`
	TransactionID          string            `json:"transaction_id,omitempty" example:"ch_3Nk"`
	Amount                 decimal.Decimal   `json:"amount" swaggertype:"string" example:"22.95"`
	PackageCount           int               `json:"package_count" example:"1"`
	IsFirstSaleForCustomer bool              `json:"is_first_sale_for_customer" example:"true"`
	Status                 string            `json:"status" example:"completed"`
}

type FinalizeOrderResponseDTO struct {
	OrderID     string `json:"order_id" example:"ORD-1001"`
	Status      string `json:"status" example:"completed"`
	AffiliateID string `json:"affiliate_id,omitempty" example:"9004"`
	LinkID      string `json:"link_id,omitempty" example:"lnk_1"`
	Attributed  bool   `json:"attributed" example:"true"`
	Commission  string `json:"commission" example:"4.59"`
	EventID     string `json:"event_id,omitempty" example:"evt_6c1f"`
}

func NewFinalizeOrderResponse(r *commissionservice.Result) FinalizeOrderResponseDTO {
	return FinalizeOrderResponseDTO{
		OrderID:     r.Order.OrderID,
		Status:      string(r.Order.Status),
		AffiliateID: r.Order.AffiliateID,
		LinkID:      r.Order.LinkID,
		Attributed:  r.Attributed,
		Commission:  money.Format(r.Commission),
		EventID:     r.EventID,
	}
}
