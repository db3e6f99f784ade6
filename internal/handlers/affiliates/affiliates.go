package affiliates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/dto"
	"github.com/GlebRadaev/afftrack/internal/service/affiliateservice"
	"github.com/GlebRadaev/afftrack/pkg/utils"
)

//go:generate mockgen -source=affiliates.go -destination=mock_affiliates.go -package=affiliates

type Service interface {
	CreateAffiliate(ctx context.Context, req affiliateservice.CreateAffiliateRequest) (*domain.AffiliateAccount, *domain.AffiliateLink, error)
	GetAffiliate(ctx context.Context, affiliateID string) (*domain.AffiliateAccount, error)
	UpdateStatus(ctx context.Context, affiliateID string, status domain.AffiliateStatus) (*domain.AffiliateAccount, error)
	CreateLink(ctx context.Context, affiliateID string, req affiliateservice.CreateLinkRequest) (*domain.AffiliateLink, error)
	ListLinks(ctx context.Context, affiliateID string) ([]domain.AffiliateLink, error)
	DeleteLink(ctx context.Context, affiliateID, linkID string) error
	CreatePostbackConfig(ctx context.Context, affiliateID string, eventType domain.EventType, template string) (*domain.PostbackConfig, error)
	ListPostbackConfigs(ctx context.Context, affiliateID string) ([]domain.PostbackConfig, error)
	SetPostbackEnabled(ctx context.Context, configID string, enabled bool) (*domain.PostbackConfig, error)
	DeletePostbackConfig(ctx context.Context, configID string) error
	ListPostbackLogs(ctx context.Context, affiliateID string, limit int) ([]domain.PostbackLog, error)
}

type Dispatcher interface {
	DispatchByID(ctx context.Context, eventID string) ([]domain.PostbackLog, error)
}

type AffiliateHandler struct {
	affiliateService Service
	dispatcher       Dispatcher
}

func New(affiliateService Service, dispatcher Dispatcher) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateService: affiliateService,
		dispatcher:       dispatcher,
	}
}

// respondError maps directory errors to status codes.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAffiliateID):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAffiliateNotFound),
		errors.Is(err, domain.ErrLinkNotFound),
		errors.Is(err, domain.ErrConfigNotFound),
		errors.Is(err, domain.ErrEventNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAffiliateExists),
		errors.Is(err, domain.ErrDefaultLinkDelete):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidPayout),
		errors.Is(err, domain.ErrInvalidPayoutType),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidCustomPrice),
		errors.Is(err, domain.ErrUnknownEventType),
		errors.Is(err, domain.ErrEmptyTemplate):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateAffiliate godoc
//
//	@Summary		Create an affiliate
//	@Description	Create the account with its default link and an empty balance. Status defaults to pending.
//	@Tags			Affiliates
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAffiliateRequestDTO	true	"Affiliate"
//	@Success		201		{object}	dto.AffiliateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Affiliate already exists"
//	@Failure		422		{object}	utils.Response	"Invalid payout or status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates [post]
func (h *AffiliateHandler) CreateAffiliate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAffiliateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, link, err := h.affiliateService.CreateAffiliate(r.Context(), affiliateservice.CreateAffiliateRequest{
		AffiliateID:         req.AffiliateID,
		Name:                req.Name,
		Email:               req.Email,
		Status:              domain.AffiliateStatus(req.Status),
		DefaultPayoutType:   domain.PayoutType(req.DefaultPayoutType),
		DefaultPayoutAmount: req.DefaultPayoutAmount,
		Credential:          req.Credential,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAffiliateResponse(account, link))
}

// GetAffiliate godoc
//
//	@Summary	Get an affiliate
//	@Tags		Affiliates
//	@Produce	json
//	@Param		affiliateID	path		string	true	"Affiliate ID"
//	@Success	200			{object}	dto.AffiliateResponseDTO
//	@Failure	404			{object}	utils.Response	"Affiliate not found"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates/{affiliateID} [get]
func (h *AffiliateHandler) GetAffiliate(w http.ResponseWriter, r *http.Request) {
	account, err := h.affiliateService.GetAffiliate(r.Context(), chi.URLParam(r, "affiliateID"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAffiliateResponse(account, nil))
}

// UpdateStatus godoc
//
//	@Summary	Change affiliate status
//	@Tags		Affiliates
//	@Accept		json
//	@Produce	json
//	@Param		affiliateID	path		string						true	"Affiliate ID"
//	@Param		request		body		dto.UpdateStatusRequestDTO	true	"New status"
//	@Success	200			{object}	dto.AffiliateResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid request body"
//	@Failure	404			{object}	utils.Response	"Affiliate not found"
//	@Failure	422			{object}	utils.Response	"Unknown status"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates/{affiliateID}/status [patch]
func (h *AffiliateHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.affiliateService.UpdateStatus(r.Context(), chi.URLParam(r, "affiliateID"), domain.AffiliateStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAffiliateResponse(account, nil))
}

// CreateLink godoc
//
//	@Summary		Create a tracking link
//	@Description	Payout fields override the affiliate's defaults for orders that reference the link. Omitted payout fields inherit the defaults.
//	@Tags			Links
//	@Accept			json
//	@Produce		json
//	@Param			affiliateID	path		string						true	"Affiliate ID"
//	@Param			request		body		dto.CreateLinkRequestDTO	true	"Link"
//	@Success		201			{object}	dto.LinkResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Affiliate not found"
//	@Failure		422			{object}	utils.Response	"Invalid payout"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{affiliateID}/links [post]
func (h *AffiliateHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLinkRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := h.affiliateService.CreateLink(r.Context(), chi.URLParam(r, "affiliateID"), affiliateservice.CreateLinkRequest{
		Name:         req.Name,
		PayoutType:   domain.PayoutType(req.PayoutType),
		PayoutAmount: req.PayoutAmount,
		CustomPrice:  req.CustomPrice,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewLinkResponse(link))
}

// ListLinks godoc
//
//	@Summary	List tracking links
//	@Tags		Links
//	@Produce	json
//	@Param		affiliateID	path	string	true	"Affiliate ID"
//	@Success	200			{array}	dto.LinkResponseDTO
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates/{affiliateID}/links [get]
func (h *AffiliateHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.affiliateService.ListLinks(r.Context(), chi.URLParam(r, "affiliateID"))
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.LinkResponseDTO, 0, len(links))
	for i := range links {
		resp = append(resp, dto.NewLinkResponse(&links[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DeleteLink godoc
//
//	@Summary	Delete a tracking link
//	@Tags		Links
//	@Param		affiliateID	path	string	true	"Affiliate ID"
//	@Param		linkID		path	string	true	"Link ID"
//	@Success	204			"Link deleted"
//	@Failure	404			{object}	utils.Response	"Link not found"
//	@Failure	409			{object}	utils.Response	"Default link cannot be deleted"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates/{affiliateID}/links/{linkID} [delete]
func (h *AffiliateHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	if err := h.affiliateService.DeleteLink(r.Context(), chi.URLParam(r, "affiliateID"), chi.URLParam(r, "linkID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreatePostbackConfig godoc
//
//	@Summary		Configure a postback
//	@Description	Templates starting with http:// or https:// are requested with GET. Anything else is rendered as pixel markup.
//	@Tags			Postbacks
//	@Accept			json
//	@Produce		json
//	@Param			affiliateID	path		string							true	"Affiliate ID"
//	@Param			request		body		dto.PostbackConfigRequestDTO	true	"Postback config"
//	@Success		201			{object}	dto.PostbackConfigResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Affiliate not found"
//	@Failure		422			{object}	utils.Response	"Unknown event type or empty template"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{affiliateID}/postbacks [post]
func (h *AffiliateHandler) CreatePostbackConfig(w http.ResponseWriter, r *http.Request) {
	var req dto.PostbackConfigRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.affiliateService.CreatePostbackConfig(r.Context(), chi.URLParam(r, "affiliateID"), domain.EventType(req.EventType), req.URLTemplate)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPostbackConfigResponse(c))
}

// ListPostbackConfigs godoc
//
//	@Summary	List postback configs
//	@Tags		Postbacks
//	@Produce	json
//	@Param		affiliateID	path	string	true	"Affiliate ID"
//	@Success	200			{array}	dto.PostbackConfigResponseDTO
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates/{affiliateID}/postbacks [get]
func (h *AffiliateHandler) ListPostbackConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.affiliateService.ListPostbackConfigs(r.Context(), chi.URLParam(r, "affiliateID"))
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.PostbackConfigResponseDTO, 0, len(configs))
	for i := range configs {
		resp = append(resp, dto.NewPostbackConfigResponse(&configs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// SetPostbackEnabled godoc
//
//	@Summary	Enable or disable a postback config
//	@Tags		Postbacks
//	@Accept		json
//	@Produce	json
//	@Param		configID	path		string						true	"Config ID"
//	@Param		request		body		dto.SetEnabledRequestDTO	true	"Enabled flag"
//	@Success	200			{object}	dto.PostbackConfigResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid request body"
//	@Failure	404			{object}	utils.Response	"Config not found"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/postbacks/{configID} [patch]
func (h *AffiliateHandler) SetPostbackEnabled(w http.ResponseWriter, r *http.Request) {
	var req dto.SetEnabledRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.affiliateService.SetPostbackEnabled(r.Context(), chi.URLParam(r, "configID"), req.Enabled)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPostbackConfigResponse(c))
}

// DeletePostbackConfig godoc
//
//	@Summary	Delete a postback config
//	@Tags		Postbacks
//	@Param		configID	path	string	true	"Config ID"
//	@Success	204			"Config deleted"
//	@Failure	404			{object}	utils.Response	"Config not found"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/postbacks/{configID} [delete]
func (h *AffiliateHandler) DeletePostbackConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.affiliateService.DeletePostbackConfig(r.Context(), chi.URLParam(r, "configID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPostbackLogs godoc
//
//	@Summary	Postback delivery log
//	@Tags		Postbacks
//	@Produce	json
//	@Param		affiliateID	path	string	true	"Affiliate ID"
//	@Param		limit		query	int		false	"Maximum rows, newest first"
//	@Success	200			{array}	dto.PostbackLogResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid limit"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates/{affiliateID}/postback-logs [get]
func (h *AffiliateHandler) ListPostbackLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	logs, err := h.affiliateService.ListPostbackLogs(r.Context(), chi.URLParam(r, "affiliateID"), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPostbackLogResponses(logs))
}

// DispatchEvent godoc
//
//	@Summary		Fire the postbacks of an event
//	@Description	Deliver the stored event to its affiliate's enabled postbacks. Pairs already delivered are skipped.
//	@Tags			Postbacks
//	@Produce		json
//	@Param			eventID	path	string	true	"Event ID"
//	@Success		200		{array}	dto.PostbackLogResponseDTO
//	@Failure		404		{object}	utils.Response	"Event not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/events/{eventID}/dispatch [post]
func (h *AffiliateHandler) DispatchEvent(w http.ResponseWriter, r *http.Request) {
	logs, err := h.dispatcher.DispatchByID(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPostbackLogResponses(logs))
}
