package model

import "errors"

// Error codes for inventory operations.
const (
	ErrCodeInvalidArgument      = "INVALID_ARGUMENT"
	ErrCodeDuplicateProduct     = "DUPLICATE_PRODUCT"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeInsufficientQuantity = "INSUFFICIENT_QUANTITY"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so that a
// detailed error created with NewDomainError matches the sentinel of its kind.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidArgument      = NewDomainError(ErrCodeInvalidArgument, "Price and quantity must be non-negative")
	ErrDuplicateProduct     = NewDomainError(ErrCodeDuplicateProduct, "Product already exists")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInsufficientQuantity = NewDomainError(ErrCodeInsufficientQuantity, "Not enough quantity to remove")
)

// IsSoft reports whether err is a condition that declined a mutation without
// being a failure. State is unchanged and the caller only needs to be told.
func IsSoft(err error) bool {
	return errors.Is(err, ErrInsufficientQuantity)
}

// CodeOf returns the domain error code carried by err, or "" if err is not a
// DomainError.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
