package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/dto"
	"github.com/GlebRadaev/afftrack/internal/service/commissionservice"
	"github.com/GlebRadaev/afftrack/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	FinalizeOrderCommission(ctx context.Context, order domain.Order) (*commissionservice.Result, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// FinalizeOrder godoc
//
//	@Summary		Finalize an order
//	@Description	Store the order outcome reported by checkout and book its commission. A chargeback reverses the commission recognized for the order.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FinalizeOrderRequestDTO		true	"Order outcome"
//	@Success		200		{object}	dto.FinalizeOrderResponseDTO	"Order stored"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		422		{object}	utils.Response					"Invalid order"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/orders/finalize [post]
func (h *OrderHandler) FinalizeOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.FinalizeOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.orderService.FinalizeOrderCommission(r.Context(), domain.Order{
		OrderID:                req.OrderID,
		VisitorID:              req.VisitorID,
		AffiliateID:            req.AffiliateID,
		LinkID:                 req.LinkID,
		SubIDs:                 req.SubIDs,
		TransactionID:          req.TransactionID,
		Amount:                 req.Amount,
		PackageCount:           req.PackageCount,
		IsFirstSaleForCustomer: req.IsFirstSaleForCustomer,
		Status:                 domain.OrderStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOrder):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFinalizeOrderResponse(result))
}
