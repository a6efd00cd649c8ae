package ledger

import "errors"

// Service errors
var (
	ErrInvalidDraft        = errors.New("invalid transaction data")
	ErrInsufficientBalance = errors.New("selected wallet doesn't have enough balance")
	ErrNegativeBalance     = errors.New("reverting this transaction would make the wallet balance negative")
	ErrUnknownCategory     = errors.New("unknown expense category")
)
