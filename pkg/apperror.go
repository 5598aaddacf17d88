package pkg

import "fmt"

// AppError carries a stable machine code alongside the human message so API
// clients can branch on Code without parsing text.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainErrorSimple builds an AppError with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewDomainError wraps an underlying error. The cause stays out of the HTTP
// payload; it is only for logs and errors.Is/As chains.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// HTTPError is the JSON error envelope returned by every handler.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
