package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this store"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// BadRequestError represents a request missing required resolution input,
// e.g. neither X-Store-Domain nor Host was present.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// ForbiddenError represents a denied request: inactive or suspended store,
// or insufficient role in the store.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// PaymentRequiredError represents an expired store subscription.
type PaymentRequiredError struct {
	Message string
}

func (e *PaymentRequiredError) Error() string {
	return e.Message
}

// RateLimitedError signals that an OTP resend came too soon. WaitSeconds
// carries the remaining wait so callers can surface it to the client.
type RateLimitedError struct {
	WaitSeconds int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("please wait %d seconds before requesting a new code", e.WaitSeconds)
}

// UnauthenticatedError represents a missing, invalid or expired token.
type UnauthenticatedError struct {
	Message string
}

func (e *UnauthenticatedError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrStoreNotFound   = &NotFoundError{Entity: "store"}
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrProductNotFound = &NotFoundError{Entity: "product"}
	ErrBrandNotFound   = &NotFoundError{Entity: "brand"}
	ErrOrderNotFound   = &NotFoundError{Entity: "order"}
	ErrPaymentNotFound = &NotFoundError{Entity: "payment"}
	ErrMemberNotFound  = &NotFoundError{Entity: "store member"}
)

// Already Exists Errors
var (
	ErrUserExists      = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrStoreExists     = &AlreadyExistsError{Entity: "store", Context: "with this domain"}
	ErrSubdomainExists = &AlreadyExistsError{Entity: "store", Context: "with this subdomain"}
	ErrProductExists   = &AlreadyExistsError{Entity: "product", Context: "with this slug in this store"}
	ErrMemberExists    = &AlreadyExistsError{Entity: "store member", Context: "for this user and store"}
)

// Tenancy Errors
var (
	ErrMissingStoreDomain = &BadRequestError{Message: "missing store domain"}
	ErrStoreInactive      = &ForbiddenError{Message: "store is inactive"}
	ErrSubscriptionLapsed = &PaymentRequiredError{Message: "store subscription has expired"}
	ErrInsufficientRole   = &ForbiddenError{Message: "insufficient role for this store"}
)

// Identity Errors
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountNotVerified  = &ForbiddenError{Message: "account not verified"}
	ErrInvalidOTP          = errors.New("invalid or expired code")
	ErrInvalidRefreshToken = &UnauthenticatedError{Message: "invalid refresh token"}
	ErrNotAuthenticated    = &UnauthenticatedError{Message: "not authenticated"}
	ErrOldPasswordMismatch = errors.New("old password is incorrect")
)

// Business Logic Errors
var (
	ErrEmptyOrder          = errors.New("order must contain items")
	ErrOrderTotalNotSet    = errors.New("order total must be greater than 0")
	ErrProductLimitReached = errors.New("store has reached its product limit")
	ErrOrderLimitReached   = errors.New("store has reached its monthly order limit")
	ErrOAuthNotConfigured  = errors.New("google oauth is not configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsBadRequest checks if an error is a BadRequestError
func IsBadRequest(err error) bool {
	var badReqErr *BadRequestError
	return errors.As(err, &badReqErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsPaymentRequired checks if an error is a PaymentRequiredError
func IsPaymentRequired(err error) bool {
	var paymentErr *PaymentRequiredError
	return errors.As(err, &paymentErr)
}

// IsRateLimited checks if an error is a RateLimitedError
func IsRateLimited(err error) bool {
	var rateErr *RateLimitedError
	return errors.As(err, &rateErr)
}

// IsUnauthenticated checks if an error is an UnauthenticatedError
func IsUnauthenticated(err error) bool {
	var unauthErr *UnauthenticatedError
	return errors.As(err, &unauthErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewSuspendedStoreError builds the ForbiddenError for a suspended store,
// including the suspension reason when one was recorded.
func NewSuspendedStoreError(reason string) error {
	if reason == "" {
		reason = "Contact support"
	}
	return &ForbiddenError{Message: fmt.Sprintf("store is suspended: %s", reason)}
}

// NewRateLimitedError creates a RateLimitedError carrying the wait time
func NewRateLimitedError(waitSeconds int) error {
	return &RateLimitedError{WaitSeconds: waitSeconds}
}

// NewUnauthenticatedError creates a new UnauthenticatedError
func NewUnauthenticatedError(message string) error {
	return &UnauthenticatedError{Message: message}
}
