package dto

import (
	"time"

	"github.com/GlebRadaev/afftrack/internal/domain"
)

type FunnelStageDTO struct {
	EventType      string  `json:"event_type" example:"form_fill"`
	Count          int64   `json:"count" example:"42"`
	ConversionRate float64 `json:"conversion_rate" example:"0.42"`
}

type FunnelStatsResponseDTO struct {
	AffiliateID string           `json:"affiliate_id,omitempty" example:"9004"`
	From        time.Time        `json:"from" example:"2026-04-01T00:00:00Z"`
	To          time.Time        `json:"to" example:"2026-05-01T00:00:00Z"`
	Stages      []FunnelStageDTO `json:"stages"`
}

func NewFunnelStatsResponse(s *domain.FunnelStats) FunnelStatsResponseDTO {
	resp := FunnelStatsResponseDTO{
		AffiliateID: s.AffiliateID,
		From:        s.From,
		To:          s.To,
		Stages:      make([]FunnelStageDTO, 0, len(s.Stages)),
	}
	for _, st := range s.Stages {
		resp.Stages = append(resp.Stages, FunnelStageDTO{
			EventType:      string(st.EventType),
			Count:          st.Count,
			ConversionRate: st.ConversionRate,
		})
	}
	return resp
}
