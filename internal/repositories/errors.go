package repositories

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound   = errors.New("entity not found")
	ErrInvalidID  = errors.New("invalid ID")
	ErrValidation = errors.New("validation error")
	ErrConnection = errors.New("database connection error")
	ErrConstraint = errors.New("constraint violation")
)

// Entity names used in repository errors and user-facing messages.
const (
	EntityCommissionProfile = "Commission profile"
	EntityPersonnel         = "Personnel"
	EntitySalesRecord       = "Sales record"
)

// ConstraintKind names the store constraint a write tripped.
type ConstraintKind string

const (
	ConstraintForeignKey ConstraintKind = "foreign key"
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintOther      ConstraintKind = "other"
)

// RepositoryError carries the operation, entity and ID a store call failed
// on. Message, when set, is safe to show to API clients.
type RepositoryError struct {
	Op         string
	Entity     string
	ID         string
	Constraint ConstraintKind
	Err        error
	Message    string
}

func (e *RepositoryError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.ID != "":
		return fmt.Sprintf("%s %s (ID %s): %v", e.Entity, e.Op, e.ID, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Entity, e.Op, e.Err)
	}
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func (e *RepositoryError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// FormatID renders an entity ID for error context; zero means none.
func FormatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// NewRepositoryError wraps a store failure with its context.
func NewRepositoryError(op, entity string, id int64, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     FormatID(id),
		Err:    err,
	}
}

// NotFoundError builds the "{Entity} with ID {id} not found" error returned
// by lookups, updates and deletes of missing rows.
func NotFoundError(entity string, id int64) *RepositoryError {
	return &RepositoryError{
		Op:      "get",
		Entity:  entity,
		ID:      FormatID(id),
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s with ID %d not found", entity, id),
	}
}

// ValidationError rejects an entity before it reaches the store.
func ValidationError(entity string, id int64, err error) *RepositoryError {
	return &RepositoryError{
		Op:      "validate",
		Entity:  entity,
		ID:      FormatID(id),
		Err:     fmt.Errorf("%w: %v", ErrValidation, err),
		Message: fmt.Sprintf("invalid %s: %v", entity, err),
	}
}

// ConstraintError reports a write the store refused.
func ConstraintError(op, entity string, kind ConstraintKind, err error) *RepositoryError {
	return &RepositoryError{
		Op:         op,
		Entity:     entity,
		Constraint: kind,
		Err:        fmt.Errorf("%w: %v", ErrConstraint, err),
		Message:    fmt.Sprintf("%s %s violates a %s constraint", entity, op, kind),
	}
}

// ConnectionError reports that the store could not be reached.
func ConnectionError(err error) *RepositoryError {
	return &RepositoryError{
		Op:      "connect",
		Entity:  "database",
		Err:     fmt.Errorf("%w: %v", ErrConnection, err),
		Message: fmt.Sprintf("database unavailable: %v", err),
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}

// ConstraintOf returns the constraint a write violated, or "" when err is not
// a constraint failure.
func ConstraintOf(err error) ConstraintKind {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) && IsConstraint(repoErr) {
		return repoErr.Constraint
	}
	return ""
}
