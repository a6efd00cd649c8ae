package wallet

import "errors"

var (
	ErrInvalidWallet = errors.New("invalid wallet data")
)

// errNoCache is what NoopCache reports on reads so callers fall through to
// the database.
var errNoCache = errors.New("cache disabled")
