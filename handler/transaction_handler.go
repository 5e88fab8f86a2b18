package handler

import (
	"go-bankist/common"
	"go-bankist/logger"
	"go-bankist/model"
	"go-bankist/service"
	"net/http"

	"github.com/sirupsen/logrus"
)

// TransactionHandler holds dependencies for the mutating ledger endpoints.
type TransactionHandler struct {
	ledger *service.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(ledger *service.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// CreateTransfer godoc
// @Summary      Transfer money to another account
// @Description  Moves the amount from the logged-in account to the account with the given username.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer body model.TransferRequest true "Receiver username and amount"
// @Success      200  {object}  model.Summary
// @Failure      400  {object}  common.AppError "Invalid amount, insufficient funds or self transfer"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      404  {object}  common.AppError "Receiver account not found"
// @Router       /api/transfers [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	username, _ := r.Context().Value(UsernameKey).(string)
	logger.Log.WithFields(logrus.Fields{
		"username": username,
		"to":       req.To,
	}).Info("Transfer request received")

	summary, err := h.ledger.Transfer(r.Context(), req.To, req.Amount)
	if err != nil {
		return mapServiceError(err)
	}

	writeJSON(w, http.StatusOK, summary)
	return nil
}

// RequestLoan godoc
// @Summary      Request a loan
// @Description  Credits the amount when some movement of the logged-in account is at least 10% of it.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        loan body model.LoanRequest true "Loan amount"
// @Success      200  {object}  model.Summary
// @Failure      400  {object}  common.AppError "Invalid amount or loan not covered"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Router       /api/loans [post]
func (h *TransactionHandler) RequestLoan(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoanRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	summary, err := h.ledger.RequestLoan(r.Context(), req.Amount)
	if err != nil {
		return mapServiceError(err)
	}

	writeJSON(w, http.StatusOK, summary)
	return nil
}
