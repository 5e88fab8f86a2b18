package handler

import (
	"go-bankist/common"
	"go-bankist/model"
	"go-bankist/service"
	"net/http"
)

// AuthHandler serves login, logout and account closure.
type AuthHandler struct {
	ledger *service.LedgerService
	tokens *service.TokenService
}

func NewAuthHandler(ledger *service.LedgerService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{ledger: ledger, tokens: tokens}
}

// Login godoc
// @Summary      Log in to an account
// @Description  Opens the session for the account with the given username and pin and returns a bearer token with the account summary.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Username and pin"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError "Invalid request body"
// @Failure      401  {object}  common.AppError "Unknown username or wrong pin"
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	summary, sessionID, err := h.ledger.Authenticate(r.Context(), req.Username, req.Pin)
	if err != nil {
		return mapServiceError(err)
	}

	token, err := h.tokens.Generate(summary.Username, sessionID)
	if err != nil {
		h.ledger.Logout(r.Context())
		return common.NewAppError(http.StatusInternalServerError, "Could not issue token", err)
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{Token: token, Summary: *summary})
	return nil
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	h.ledger.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// CloseAccount godoc
// @Summary      Close the logged-in account
// @Description  Re-checks the username and pin of the logged-in account, removes it and ends the session.
// @Tags         auth
// @Accept       json
// @Security     BearerAuth
// @Param        credentials body model.CloseAccountRequest true "Username and pin of the logged-in account"
// @Success      204
// @Failure      400  {object}  common.AppError "Invalid request body"
// @Failure      401  {object}  common.AppError "Credentials do not match the logged-in account"
// @Router       /api/account/close [post]
func (h *AuthHandler) CloseAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CloseAccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	if err := h.ledger.CloseAccount(r.Context(), req.Username, req.Pin); err != nil {
		return mapServiceError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
