package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents a specific error type for categorization and metrics
type ErrorCode string

const (
	// Validation errors
	ErrInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrMissingField     ErrorCode = "MISSING_FIELD"
	ErrValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Stripe API errors
	ErrStripeAPIFailed ErrorCode = "STRIPE_API_FAILED"
	ErrStripeAuth      ErrorCode = "STRIPE_AUTH_FAILED"
	ErrStripeNotFound  ErrorCode = "STRIPE_NOT_FOUND"
	ErrStripeRateLimit ErrorCode = "STRIPE_RATE_LIMIT"
	ErrStripeTimeout   ErrorCode = "STRIPE_TIMEOUT"

	// Account errors
	ErrAccountNotFound ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrNoAccounts      ErrorCode = "NO_ACCOUNTS"

	// Pagination errors
	ErrPaginationStalled ErrorCode = "PAGINATION_STALLED"

	// System errors
	ErrConfigurationError ErrorCode = "CONFIGURATION_ERROR"
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrorSeverity indicates the severity level of an error
type ErrorSeverity string

const (
	SeverityLow      ErrorSeverity = "LOW"
	SeverityMedium   ErrorSeverity = "MEDIUM"
	SeverityHigh     ErrorSeverity = "HIGH"
	SeverityCritical ErrorSeverity = "CRITICAL"
)

// RetryPolicy defines whether an error is retryable and retry configuration.
// Advisory only: this server performs a single attempt per call, the metadata
// is surfaced so callers can decide whether re-invoking a tool is sensible.
type RetryPolicy struct {
	Retryable     bool          `json:"retryable"`
	MaxRetries    int           `json:"max_retries,omitempty"`
	BackoffDelay  time.Duration `json:"backoff_delay,omitempty"`
	ExponentialBO bool          `json:"exponential_backoff,omitempty"`
}

// AppError represents a structured application error with rich context
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Severity   ErrorSeverity          `json:"severity"`
	HTTPStatus int                    `json:"http_status"`
	Context    map[string]interface{} `json:"context,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Retry      RetryPolicy            `json:"retry_policy"`
	Cause      error                  `json:"-"` // Original error, not serialized
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for Go 1.13+ error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds contextual information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithAccount adds account context to the error
func (e *AppError) WithAccount(account string) *AppError {
	return e.WithContext("account", account)
}

// IsRetryable returns whether this error should be retried
func (e *AppError) IsRetryable() bool {
	return e.Retry.Retryable
}

// NewError creates a new AppError with the given code and message
func NewError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  SeverityMedium,
		Timestamp: time.Now(),
	}
}

// NewErrorWithCause creates a new AppError wrapping an existing error
func NewErrorWithCause(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  SeverityMedium,
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

// NewValidationError creates a validation error with details
func NewValidationError(field, reason string) *AppError {
	return &AppError{
		Code:       ErrValidationFailed,
		Message:    fmt.Sprintf("Validation failed for field '%s'", field),
		Details:    reason,
		Severity:   SeverityLow,
		HTTPStatus: http.StatusBadRequest,
		Timestamp:  time.Now(),
		Retry:      RetryPolicy{Retryable: false},
	}
}

// NewAccountNotFoundError creates an error for a missing account name
func NewAccountNotFoundError(account string) *AppError {
	return &AppError{
		Code:      ErrAccountNotFound,
		Message:   fmt.Sprintf("Account '%s' is not configured", account),
		Severity:  SeverityMedium,
		Timestamp: time.Now(),
		Retry:     RetryPolicy{Retryable: false},
	}
}

// NewStripeError creates a Stripe API specific error from an HTTP status
func NewStripeError(operation string, statusCode int, responseBody string) *AppError {
	var code ErrorCode
	var severity ErrorSeverity
	var retryable bool

	switch statusCode {
	case 401, 403:
		code = ErrStripeAuth
		severity = SeverityHigh
		retryable = false
	case 404:
		code = ErrStripeNotFound
		severity = SeverityMedium
		retryable = false
	case 429:
		code = ErrStripeRateLimit
		severity = SeverityMedium
		retryable = true
	case 500, 502, 503, 504:
		code = ErrStripeAPIFailed
		severity = SeverityHigh
		retryable = true
	default:
		code = ErrStripeAPIFailed
		severity = SeverityMedium
		retryable = false
	}

	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf("Stripe API %s failed", operation),
		Details:    fmt.Sprintf("HTTP %d: %s", statusCode, responseBody),
		Severity:   severity,
		HTTPStatus: statusCode,
		Timestamp:  time.Now(),
		Retry: RetryPolicy{
			Retryable:     retryable,
			MaxRetries:    3,
			BackoffDelay:  time.Second * 2,
			ExponentialBO: true,
		},
	}
}

// NewPaginationStalledError reports a cursor that failed to advance after a
// non-empty page. This is a defect in the upstream response, not a valid
// traversal state, and must surface with its full context.
func NewPaginationStalledError(cursor string) *AppError {
	return &AppError{
		Code:      ErrPaginationStalled,
		Message:   "Pagination cursor failed to advance",
		Details:   fmt.Sprintf("cursor %q repeated after a non-empty page", cursor),
		Severity:  SeverityHigh,
		Timestamp: time.Now(),
		Retry:     RetryPolicy{Retryable: false},
	}
}
