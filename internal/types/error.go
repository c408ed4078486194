package types

import (
	"errors"
	"fmt"
)

// ErrorCode discriminates repository failures. Callers branch only on the code.
type ErrorCode string

const (
	NotFound              ErrorCode = "NotFound"
	DuplicateKeyInsert    ErrorCode = "DuplicateKeyInsert"
	InvalidConfiguration  ErrorCode = "InvalidConfiguration"
	FailedGoldTransaction ErrorCode = "FailedGoldTransaction"
	Unknown               ErrorCode = "Unknown"
)

// CustomError is an HTTP facing error carrying a status code and an error type
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// RepositoryError is the single error type surfaced by the repository layer
type RepositoryError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// Is matches any RepositoryError with the same code, so errors.Is(err, &RepositoryError{Code: NotFound}) works.
func (e *RepositoryError) Is(target error) bool {
	t, ok := target.(*RepositoryError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError builds a RepositoryError with a formatted message
func NewError(code ErrorCode, err error, format string, args ...interface{}) *RepositoryError {
	return &RepositoryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

func NotFoundError(format string, args ...interface{}) *RepositoryError {
	return NewError(NotFound, nil, format, args...)
}

func DuplicateKeyError(format string, args ...interface{}) *RepositoryError {
	return NewError(DuplicateKeyInsert, nil, format, args...)
}

func ConfigurationError(format string, args ...interface{}) *RepositoryError {
	return NewError(InvalidConfiguration, nil, format, args...)
}

func GoldTransactionError(err error, format string, args ...interface{}) *RepositoryError {
	return NewError(FailedGoldTransaction, err, format, args...)
}

func UnknownError(err error, format string, args ...interface{}) *RepositoryError {
	return NewError(Unknown, err, format, args...)
}

// CodeOf returns the code of the first RepositoryError in the chain, or Unknown
func CodeOf(err error) ErrorCode {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Code
	}
	return Unknown
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}
