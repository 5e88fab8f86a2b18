package service

import "errors"

// Every rejected engine operation returns exactly one of these; the ledger is
// left unchanged whenever one is returned.
var (
	ErrNotLoggedIn            = errors.New("no account is logged in")
	ErrAuthenticationFailed   = errors.New("unknown username or wrong pin")
	ErrInvalidAmount          = errors.New("amount must be a number greater than zero")
	ErrUnknownRecipient       = errors.New("receiver account not found")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrSelfTransferRejected   = errors.New("cannot transfer money to the same account")
	ErrLoanIneligible         = errors.New("no movement covers 10% of the requested loan")
	ErrReauthenticationFailed = errors.New("username or pin does not match the logged-in account")
)

var outcomeLabels = map[error]string{
	ErrNotLoggedIn:            "not_logged_in",
	ErrAuthenticationFailed:   "authentication_failed",
	ErrInvalidAmount:          "invalid_amount",
	ErrUnknownRecipient:       "unknown_recipient",
	ErrInsufficientFunds:      "insufficient_funds",
	ErrSelfTransferRejected:   "self_transfer_rejected",
	ErrLoanIneligible:         "loan_ineligible",
	ErrReauthenticationFailed: "reauthentication_failed",
}

func outcomeOf(err error) string {
	if err == nil {
		return "success"
	}
	if label, ok := outcomeLabels[err]; ok {
		return label
	}
	return "error"
}
