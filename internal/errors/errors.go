package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrProtected     = errors.New("protected")
)

// NotFoundError indicates a resource doesn't exist.
type NotFoundError struct {
	Resource string // "directory", "group", "terminal"
	ID       string // The identifier that wasn't found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AlreadyExistsError indicates a resource already exists.
type AlreadyExistsError struct {
	Resource string
	ID       string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.ID)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ProtectedError indicates an operation not allowed on a built-in resource.
type ProtectedError struct {
	Resource string
	ID       string
	Action   string
}

func (e *ProtectedError) Error() string {
	return fmt.Sprintf("cannot %s built-in %s: %s", e.Action, e.Resource, e.ID)
}

func (e *ProtectedError) Unwrap() error {
	return ErrProtected
}

// Helper constructors for common cases

func DirectoryNotFound(id string) error {
	return &NotFoundError{Resource: "directory", ID: id}
}

func GroupNotFound(id string) error {
	return &NotFoundError{Resource: "group", ID: id}
}

func TerminalNotFound(id string) error {
	return &NotFoundError{Resource: "terminal", ID: id}
}

func DirectoryAlreadyExists(id string) error {
	return &AlreadyExistsError{Resource: "directory", ID: id}
}

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func BuiltinTerminalProtected(id, action string) error {
	return &ProtectedError{Resource: "terminal", ID: id, Action: action}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsProtected checks if an error is a protected-resource error.
func IsProtected(err error) bool {
	return errors.Is(err, ErrProtected)
}
