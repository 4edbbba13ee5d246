package types

import (
	"errors"

	"github.com/wheval/vault/common/check"
)

// Vault operations fail with code-carrying errors. Each failure kind is
// identified by an ErrorCode; the name of the constant doubles as its string
// representation, e.g. ErrorReentrantCall.String() => "ReentrantCall".

type ErrorCode uint32

const (
	ErrorSuccess ErrorCode = iota
	ErrorUnknown

	// ErrorReentrantCall is returned when a guarded operation is invoked
	// while another guarded operation is still in flight.
	ErrorReentrantCall

	// ErrorInsufficientBalance is returned when a debit exceeds the recorded
	// balance of the account.
	ErrorInsufficientBalance

	// ErrorArithmeticOverflow is returned when a credit would overflow the
	// 256-bit integer domain of a balance or of the aggregate total.
	ErrorArithmeticOverflow
)

type VaultError interface {
	error
	Code() ErrorCode
}

var _ VaultError = new(BaseError)

type BaseError struct {
	code ErrorCode
}

type VerboseError struct {
	BaseError
	detail string
}

type WrapError struct {
	BaseError
	inner error
}

func NewError(code ErrorCode) VaultError {
	return &BaseError{code}
}

func NewVerboseError(code ErrorCode, detail string) VaultError {
	return &VerboseError{BaseError{code}, detail}
}

func NewWrapError(code ErrorCode, err error) VaultError {
	// Nested code-carrying errors are not allowed because the code must be unique.
	check.PanicIfNotf(!IsValidError(err), "nested errors are prohibited")
	return &WrapError{BaseError{code}, err}
}

func IsValidError(err error) bool {
	return ToError(err) != nil
}

func ToError(err error) VaultError {
	var e VaultError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func GetErrorCode(err error) ErrorCode {
	if e := ToError(err); e != nil {
		return e.Code()
	}
	return ErrorUnknown
}

func (e *BaseError) Error() string {
	return e.Code().String()
}

func (e *BaseError) Code() ErrorCode {
	return e.code
}

func (e *VerboseError) Error() string {
	return e.BaseError.Error() + ": " + e.detail
}

func (e *VerboseError) Unwrap() error {
	return &e.BaseError
}

func (e *WrapError) Error() string {
	return e.BaseError.Error() + ": " + e.inner.Error()
}

func (e *WrapError) Unwrap() error {
	return e.inner
}

//go:generate stringer -type=ErrorCode -trimprefix=Error
