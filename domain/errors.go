package domain

import "errors"

// Request-scoped failures. Nothing in the core is fatal; handlers map these
// to 4xx responses.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidFeedback = errors.New("productId and feedback are required")
	ErrEmptyBatch      = errors.New("feedback batch must be a non-empty list")
	ErrUserNotFound    = errors.New("user not found")
)
