package models

import "fmt"

// Error codes used in API responses and internal error handling.
const (
	ErrCodeSolver         = "SOLVER_ERROR"
	ErrCodeSolverProtocol = "SOLVER_PROTOCOL_ERROR"
	ErrCodeParse          = "PARSE_ERROR"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// ErrorDetail is the structured error in API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SolverError reports that the page renderer could not deliver the page:
// a non-2xx answer, a failure it reported itself, or a transport error.
// StatusCode is 0 when no HTTP response was received.
type SolverError struct {
	Engine     string
	StatusCode int
	Message    string
	Err        error // wrapped original error
}

func (e *SolverError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Engine, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: HTTP %d: %s", e.Engine, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *SolverError) Unwrap() error {
	return e.Err
}

// ToDetail converts the error to an API-facing ErrorDetail.
func (e *SolverError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: ErrCodeSolver, Message: e.Error()}
}

// NewSolverError creates a new SolverError.
func NewSolverError(engine string, statusCode int, message string, err error) *SolverError {
	return &SolverError{Engine: engine, StatusCode: statusCode, Message: message, Err: err}
}

// SolverProtocolError reports a solver response that does not have the
// expected shape.
type SolverProtocolError struct {
	Message string
	Err     error
}

func (e *SolverProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("solver protocol: %s: %v", e.Message, e.Err)
	}
	return "solver protocol: " + e.Message
}

func (e *SolverProtocolError) Unwrap() error {
	return e.Err
}

// ToDetail converts the error to an API-facing ErrorDetail.
func (e *SolverProtocolError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: ErrCodeSolverProtocol, Message: e.Error()}
}

// NewSolverProtocolError creates a new SolverProtocolError.
func NewSolverProtocolError(message string, err error) *SolverProtocolError {
	return &SolverProtocolError{Message: message, Err: err}
}

// ParseError reports that the lookup page lacks an expected table or cell.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return "parse: " + e.Message
}

// ToDetail converts the error to an API-facing ErrorDetail.
func (e *ParseError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: ErrCodeParse, Message: e.Error()}
}

// NewParseError creates a new ParseError with a formatted message.
func NewParseError(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// InputError reports a VIN that cannot be looked up.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Message
}

// ToDetail converts the error to an API-facing ErrorDetail.
func (e *InputError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: ErrCodeInvalidInput, Message: e.Error()}
}

// NewInputError creates a new InputError with a formatted message.
func NewInputError(format string, args ...any) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}
