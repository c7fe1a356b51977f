package purchases

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid purchase input")
	ErrUnknownReference = errors.New("unknown payment reference")
	ErrNotPaid          = errors.New("payment not completed")
	ErrGatewayFailed    = errors.New("payment gateway unavailable")
)
