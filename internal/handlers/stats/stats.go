package stats

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/dto"
	"github.com/GlebRadaev/afftrack/pkg/utils"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=stats

const defaultRange = 30 * 24 * time.Hour

type Service interface {
	ComputeFunnelStats(ctx context.Context, affiliateID string, from, to time.Time) (*domain.FunnelStats, error)
}

type StatsHandler struct {
	statsService Service
	now          func() time.Time
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		now:          time.Now,
	}
}

// GetFunnelStats godoc
//
//	@Summary		Funnel statistics
//	@Description	Event counts per funnel stage and their conversion rate against page views. Without affiliate_id all affiliates are counted. The range defaults to the last 30 days.
//	@Tags			Stats
//	@Produce		json
//	@Param			affiliate_id	query		string	false	"Affiliate ID"
//	@Param			from			query		string	false	"Range start, RFC3339 or YYYY-MM-DD"
//	@Param			to				query		string	false	"Range end, RFC3339 or YYYY-MM-DD (inclusive day)"
//	@Success		200				{object}	dto.FunnelStatsResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid range"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/stats/funnel [get]
func (h *StatsHandler) GetFunnelStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	to := h.now().UTC()
	if v := q.Get("to"); v != "" {
		t, err := utils.ParseTime(v, true)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "to: "+err.Error())
			return
		}
		to = t
	}
	from := to.Add(-defaultRange)
	if v := q.Get("from"); v != "" {
		t, err := utils.ParseTime(v, false)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "from: "+err.Error())
			return
		}
		from = t
	}

	stats, err := h.statsService.ComputeFunnelStats(r.Context(), q.Get("affiliate_id"), from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPeriod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFunnelStatsResponse(stats))
}
