package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

type CreateAffiliateRequestDTO struct {
	AffiliateID         string          `json:"affiliate_id" example:"9004"`
	Name                string          `json:"name" example:"Acme Media"`
	Email               string          `json:"email" example:"ops@acme.example"`
	Status              string          `json:"status,omitempty" example:"active"`
	DefaultPayoutType   string          `json:"default_payout_type" example:"percentage"`
	DefaultPayoutAmount decimal.Decimal `json:"default_payout_amount" swaggertype:"string" example:"20"`
	Credential          string          `json:"credential,omitempty" example:"s3cret"`
}

type AffiliateResponseDTO struct {
	AffiliateID         string           `json:"affiliate_id" example:"9004"`
	Name                string           `json:"name" example:"Acme Media"`
	Email               string           `json:"email" example:"ops@acme.example"`
	Status              string           `json:"status" example:"active"`
	DefaultPayoutType   string           `json:"default_payout_type" example:"percentage"`
	DefaultPayoutAmount string           `json:"default_payout_amount" example:"20.00"`
	CreatedAt           time.Time        `json:"created_at" example:"2026-05-01T12:00:00Z"`
	DefaultLink         *LinkResponseDTO `json:"default_link,omitempty"`
}

func NewAffiliateResponse(a *domain.AffiliateAccount, defaultLink *domain.AffiliateLink) AffiliateResponseDTO {
	resp := AffiliateResponseDTO{
		AffiliateID:         a.AffiliateID,
		Name:                a.Name,
		Email:               a.Email,
		Status:              string(a.Status),
		DefaultPayoutType:   string(a.DefaultPayoutType),
		DefaultPayoutAmount: money.Format(a.DefaultPayoutAmount),
		CreatedAt:           a.CreatedAt,
	}
	if defaultLink != nil {
		link := NewLinkResponse(defaultLink)
		resp.DefaultLink = &link
	}
	return resp
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" example:"suspended"`
}

type CreateLinkRequestDTO struct {
	Name         string           `json:"name" example:"Spring promo"`
	PayoutType   string           `json:"payout_type,omitempty" example:"cpa"`
	PayoutAmount decimal.Decimal  `json:"payout_amount,omitempty" swaggertype:"string" example:"5"`
	CustomPrice  *decimal.Decimal `json:"custom_price,omitempty" swaggertype:"string" example:"29.95"`
}

type LinkResponseDTO struct {
	LinkID       string    `json:"link_id" example:"lnk_1"`
	AffiliateID  string    `json:"affiliate_id" example:"9004"`
	Name         string    `json:"name" example:"Spring promo"`
	PayoutType   string    `json:"payout_type" example:"cpa"`
	PayoutAmount string    `json:"payout_amount" example:"5.00"`
	CustomPrice  string    `json:"custom_price,omitempty" example:"29.95"`
	IsDefault    bool      `json:"is_default" example:"false"`
	TrackingURL  string    `json:"tracking_url" example:"https://shop.example.com/?link=lnk_1&ref=9004"`
	CreatedAt    time.Time `json:"created_at" example:"2026-05-01T12:00:00Z"`
}

func NewLinkResponse(l *domain.AffiliateLink) LinkResponseDTO {
	resp := LinkResponseDTO{
		LinkID:       l.LinkID,
		AffiliateID:  l.AffiliateID,
		Name:         l.Name,
		PayoutType:   string(l.PayoutType),
		PayoutAmount: money.Format(l.PayoutAmount),
		IsDefault:    l.IsDefault,
		TrackingURL:  l.TrackingURL,
		CreatedAt:    l.CreatedAt,
	}
	if l.CustomPrice != nil {
		resp.CustomPrice = money.Format(*l.CustomPrice)
	}
	return resp
}

type PostbackConfigRequestDTO struct {
	EventType   string `json:"event_type" example:"sale"`
	URLTemplate string `json:"url_template" example:"https://tracker.example.com/pb?clickid={sub}&amount={amount}"`
}

type SetEnabledRequestDTO struct {
	Enabled bool `json:"enabled" example:"false"`
}

type PostbackConfigResponseDTO struct {
	ID          string    `json:"id" example:"pbc_1"`
	AffiliateID string    `json:"affiliate_id" example:"9004"`
	EventType   string    `json:"event_type" example:"sale"`
	URLTemplate string    `json:"url_template" example:"https://tracker.example.com/pb?clickid={sub}&amount={amount}"`
	Enabled     bool      `json:"enabled" example:"true"`
	CreatedAt   time.Time `json:"created_at" example:"2026-05-01T12:00:00Z"`
}

func NewPostbackConfigResponse(c *domain.PostbackConfig) PostbackConfigResponseDTO {
	return PostbackConfigResponseDTO{
		ID:          c.ID,
		AffiliateID: c.AffiliateID,
		EventType:   string(c.EventType),
		URLTemplate: c.URLTemplate,
		Enabled:     c.Enabled,
		CreatedAt:   c.CreatedAt,
	}
}

type PostbackLogResponseDTO struct {
	PostbackID  string    `json:"postback_id" example:"pb_1"`
	ConfigID    string    `json:"config_id" example:"pbc_1"`
	AffiliateID string    `json:"affiliate_id" example:"9004"`
	EventID     string    `json:"event_id" example:"evt_6c1f"`
	EventType   string    `json:"event_type" example:"sale"`
	OrderID     string    `json:"order_id,omitempty" example:"ORD-1001"`
	RenderedURL string    `json:"rendered_url" example:"https://tracker.example.com/pb?clickid=fb1&amount=17.95"`
	Status      string    `json:"status" example:"success"`
	StatusCode  *int      `json:"status_code,omitempty" example:"200"`
	Error       *string   `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at" example:"2026-05-01T12:00:00Z"`
}

func NewPostbackLogResponses(logs []domain.PostbackLog) []PostbackLogResponseDTO {
	resp := make([]PostbackLogResponseDTO, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, PostbackLogResponseDTO{
			PostbackID:  l.PostbackID,
			ConfigID:    l.ConfigID,
			AffiliateID: l.AffiliateID,
			EventID:     l.EventID,
			EventType:   string(l.EventType),
			OrderID:     l.OrderID,
			RenderedURL: l.RenderedURL,
			Status:      string(l.Status),
			StatusCode:  l.StatusCode,
			Error:       l.Error,
			CreatedAt:   l.CreatedAt,
		})
	}
	return resp
}
