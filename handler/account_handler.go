package handler

import (
	"go-bankist/common"
	"go-bankist/service"
	"net/http"
)

// AccountHandler serves the read side of the logged-in account.
type AccountHandler struct {
	ledger *service.LedgerService
}

func NewAccountHandler(ledger *service.LedgerService) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// GetSummary godoc
// @Summary      Get the logged-in account
// @Description  Returns balance, summary figures and movements of the logged-in account in the current view order.
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Summary
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Router       /api/account [get]
func (h *AccountHandler) GetSummary(w http.ResponseWriter, r *http.Request) *common.AppError {
	summary, err := h.ledger.Summary(r.Context())
	if err != nil {
		return mapServiceError(err)
	}
	writeJSON(w, http.StatusOK, summary)
	return nil
}

// ListMovements godoc
// @Summary      List movements
// @Description  Returns the numbered movement rows of the logged-in account in the current view order.
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.MovementRow
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Router       /api/movements [get]
func (h *AccountHandler) ListMovements(w http.ResponseWriter, r *http.Request) *common.AppError {
	rows, err := h.ledger.Movements(r.Context())
	if err != nil {
		return mapServiceError(err)
	}
	writeJSON(w, http.StatusOK, rows)
	return nil
}

// ToggleSort godoc
// @Summary      Toggle sorted movements
// @Description  Flips the movement view between insertion order and ascending order. Stored movements are not reordered.
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Summary
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Router       /api/movements/sort [post]
func (h *AccountHandler) ToggleSort(w http.ResponseWriter, r *http.Request) *common.AppError {
	summary, err := h.ledger.ToggleSort(r.Context())
	if err != nil {
		return mapServiceError(err)
	}
	writeJSON(w, http.StatusOK, summary)
	return nil
}
