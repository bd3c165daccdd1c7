package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrBusy will throw while another mutating call from the same session has not settled
	ErrBusy = errors.New("another transaction is still pending")
	// ErrNetworkMismatch will throw when the session chain differs from the target chain
	ErrNetworkMismatch = errors.New("connected network does not match the marketplace chain")
	// ErrNotSeller will throw when offer acceptance is attempted by a non-seller
	ErrNotSeller = errors.New("only the seller can accept offers")

	ErrInvalidAmount       = errors.New("amount must be a positive decimal number")
	ErrInvalidListingKind  = errors.New("invalid listing kind")
	ErrInvalidDraftState   = errors.New("draft is not in a submittable state")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("Invalid address")
)
