package httpio

import "errors"

var (
	ErrMalformedBody  = errors.New("malformed request body")
	ErrItemsCount     = errors.New("order must contain exactly one item")
	ErrMalformedID    = errors.New("malformed order id")
	ErrMissingOrderID = errors.New("order id is required")
)
