package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrDuplicateOrder indicates the item is already in the order queue
	ErrDuplicateOrder = errors.New("item is already in the orders")

	// ErrOrderNotFound indicates the order id is not in the queue
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmptyQuery indicates a blank search query that was rejected
	// locally without reaching the provider
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrCredentialMismatch is the single generic sign-in failure.
	// Unknown user and wrong password are deliberately indistinguishable.
	ErrCredentialMismatch = errors.New("no such user exists or incorrect password")

	// Validation failures. The error text is user-facing.
	ErrFieldsRequired = errors.New("all fields are required")
	ErrInvalidEmail   = errors.New("please enter a valid email address")
	ErrWeakPassword   = errors.New("password must be at least 6 characters long, contain at least 2 digits, and 1 uppercase letter")
)
