package dto

import (
	"time"

	"github.com/GlebRadaev/afftrack/internal/domain"
)

type ClickRequestDTO struct {
	VisitorID   string            `json:"visitor_id" example:"3f0c9a52-visitor"`
	AffiliateID string            `json:"ref" example:"9004"`
	SubIDs      map[string]string `json:"sub_ids,omitempty"`
	Campaign    string            `json:"campaign,omitempty" example:"spring"`
}

type AttributionResponseDTO struct {
	VisitorID   string            `json:"visitor_id" example:"3f0c9a52-visitor"`
	AffiliateID string            `json:"affiliate_id" example:"9004"`
	SubIDs      map[string]string `json:"sub_ids"`
	Campaign    string            `json:"campaign,omitempty" example:"spring"`
	SetAt       time.Time         `json:"set_at" example:"2026-05-01T12:00:00Z"`
	ExpiresAt   time.Time         `json:"expires_at" example:"2026-05-31T12:00:00Z"`
}

func NewAttributionResponse(a *domain.Attribution) AttributionResponseDTO {
	return AttributionResponseDTO{
		VisitorID:   a.VisitorID,
		AffiliateID: a.AffiliateID,
		SubIDs:      a.SubIDs,
		Campaign:    a.Campaign,
		SetAt:       a.SetAt,
		ExpiresAt:   a.ExpiresAt,
	}
}

type EventRequestDTO struct {
	EventType    string            `json:"event_type" example:"checkout_view"`
	VisitorID    string            `json:"visitor_id" example:"3f0c9a52-visitor"`
	AffiliateID  string            `json:"affiliate_id,omitempty" example:"9004"`
	SubIDs       map[string]string `json:"sub_ids,omitempty"`
	OrderID      string            `json:"order_id,omitempty" example:"ORD-1001"`
	PackageCount int               `json:"package_count,omitempty" example:"2"`
}

type EventResponseDTO struct {
	Recorded bool   `json:"recorded" example:"true"`
	EventID  string `json:"event_id,omitempty" example:"evt_6c1f"`
}
