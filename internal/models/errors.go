package models

import "errors"

// Error kinds. Concrete errors wrap one of these so the API layer can pick a status code.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrBusinessRule = errors.New("business rule violation")
)

var (
	ErrUserNotFound        = fmtKind(ErrNotFound, "user not found")
	ErrDuplicateName       = fmtKind(ErrBusinessRule, "user name already taken")
	ErrMissingWallet       = fmtKind(ErrBusinessRule, "user has no wallet")
	ErrInvalidAmount       = fmtKind(ErrBusinessRule, "amount must be positive")
	ErrCreditLimitExceeded = fmtKind(ErrBusinessRule, "credit limit exceeded")
)

type kindError struct {
	kind error
	msg  string
}

func fmtKind(kind error, msg string) error { return &kindError{kind: kind, msg: msg} }

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }
