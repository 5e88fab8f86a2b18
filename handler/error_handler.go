package handler

import (
	"encoding/json"
	"go-bankist/common"
	"go-bankist/service"
	"net/http"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// mapServiceError maps engine errors to HTTP status codes.
func mapServiceError(err error) *common.AppError {
	switch err {
	case service.ErrNotLoggedIn, service.ErrAuthenticationFailed, service.ErrReauthenticationFailed:
		return common.NewAppError(http.StatusUnauthorized, err.Error(), err)
	case service.ErrUnknownRecipient:
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case service.ErrInvalidAmount, service.ErrInsufficientFunds, service.ErrSelfTransferRejected, service.ErrLoanIneligible:
		return common.NewAppError(http.StatusBadRequest, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Could not process request", err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
