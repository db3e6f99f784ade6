package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/dto"
	"github.com/GlebRadaev/afftrack/internal/service/funnelservice"
	"github.com/GlebRadaev/afftrack/pkg/utils"
)

//go:generate mockgen -source=tracking.go -destination=mock_tracking.go -package=tracking

type AttributionService interface {
	Set(ctx context.Context, visitorID, affiliateID string, subIDs domain.SubIDs, campaign string) (*domain.Attribution, error)
	Get(ctx context.Context, visitorID string) (*domain.Attribution, error)
	Clear(ctx context.Context, visitorID string) error
}

type FunnelService interface {
	RecordEvent(ctx context.Context, req funnelservice.RecordRequest) (*domain.FunnelEvent, error)
}

type TrackingHandler struct {
	attributionService AttributionService
	funnelService      FunnelService
}

func New(attributionService AttributionService, funnelService FunnelService) *TrackingHandler {
	return &TrackingHandler{
		attributionService: attributionService,
		funnelService:      funnelService,
	}
}

// RecordClick godoc
//
//	@Summary		Record an affiliate click
//	@Description	Credit the visitor to the affiliate in `ref`. A later click overwrites the earlier one.
//	@Tags			Tracking
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClickRequestDTO			true	"Click payload"
//	@Success		200		{object}	dto.AttributionResponseDTO	"Attribution stored"
//	@Failure		400		{object}	utils.Response				"Missing visitor or affiliate"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/track/click [post]
func (h *TrackingHandler) RecordClick(w http.ResponseWriter, r *http.Request) {
	var req dto.ClickRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.attributionService.Set(r.Context(), req.VisitorID, req.AffiliateID, req.SubIDs, req.Campaign)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidVisitor), errors.Is(err, domain.ErrInvalidAffiliateID):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAttributionResponse(a))
}

// RecordEvent godoc
//
//	@Summary		Record a funnel event
//	@Description	Append a funnel event for the visitor. Events of visitors without a live attribution are skipped.
//	@Tags			Tracking
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EventRequestDTO		true	"Event payload"
//	@Success		201		{object}	dto.EventResponseDTO	"Event recorded"
//	@Success		200		{object}	dto.EventResponseDTO	"No attribution, event skipped"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		422		{object}	utils.Response			"Unknown event type"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/track/event [post]
func (h *TrackingHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.EventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.funnelService.RecordEvent(r.Context(), funnelservice.RecordRequest{
		EventType:    domain.EventType(req.EventType),
		VisitorID:    req.VisitorID,
		AffiliateID:  req.AffiliateID,
		SubIDs:       req.SubIDs,
		OrderID:      req.OrderID,
		PackageCount: req.PackageCount,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownEventType):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if e == nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.EventResponseDTO{Recorded: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.EventResponseDTO{Recorded: true, EventID: e.EventID})
}

// GetAttribution godoc
//
//	@Summary		Get the live attribution of a visitor
//	@Tags			Tracking
//	@Produce		json
//	@Param			visitorID	path		string						true	"Visitor ID"
//	@Success		200			{object}	dto.AttributionResponseDTO	"Live attribution"
//	@Failure		404			{object}	utils.Response				"No live attribution"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/track/attribution/{visitorID} [get]
func (h *TrackingHandler) GetAttribution(w http.ResponseWriter, r *http.Request) {
	a, err := h.attributionService.Get(r.Context(), chi.URLParam(r, "visitorID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if a == nil {
		utils.RespondWithError(w, http.StatusNotFound, "attribution not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAttributionResponse(a))
}

// ClearAttribution godoc
//
//	@Summary		Forget the attribution of a visitor
//	@Tags			Tracking
//	@Param			visitorID	path	string	true	"Visitor ID"
//	@Success		204			"Attribution cleared"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/track/attribution/{visitorID} [delete]
func (h *TrackingHandler) ClearAttribution(w http.ResponseWriter, r *http.Request) {
	if err := h.attributionService.Clear(r.Context(), chi.URLParam(r, "visitorID")); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
