package domain

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid contact status")
	ErrMissingContactFields = errors.New("full name, email, and message are required")
	ErrStoreTimeout         = errors.New("data store timeout")
)
