package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError carries a code alongside the message so handlers can map
// failures to HTTP statuses without string matching.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidArg(msg string) error {
	return New(CodeInvalidArgument, msg)
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func AlreadyExists(msg string) error {
	return New(CodeAlreadyExists, msg)
}

func Unauthorized(msg string) error {
	return New(CodeUnauthenticated, msg)
}

func Forbidden(msg string) error {
	return New(CodePermissionDenied, msg)
}

func Internal(msg string) error {
	return New(CodeInternal, msg)
}

// CodeOf extracts the machine code from any error in the chain,
// defaulting to UNKNOWN for plain errors.
func CodeOf(err error) Code {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}
