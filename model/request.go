// file: model/request.go

package model

// Amounts and PINs arrive as raw strings; the service layer owns numeric
// coercion so that bad input surfaces as a domain error instead of a decode error.

// LoginRequest defines the payload for opening a session.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Pin      string `json:"pin" validate:"required"`
}

// TransferRequest moves Amount from the logged-in account to the account named To.
type TransferRequest struct {
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// LoanRequest asks for Amount to be credited to the logged-in account.
type LoanRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// CloseAccountRequest re-supplies the credentials of the logged-in account.
type CloseAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Pin      string `json:"pin" validate:"required"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token   string  `json:"token"`
	Summary Summary `json:"summary"`
}
