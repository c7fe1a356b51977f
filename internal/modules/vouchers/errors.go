package vouchers

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("voucher not found")

type OutOfStockError struct {
	Type      string
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("out of stock: %s requested=%d available=%d", e.Type, e.Requested, e.Available)
}
