package store

import "fmt"

// NotFoundError is returned when an operation names an entity id that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("store error: %s %q not found", e.Kind, e.ID)
}

// InvalidInputError is returned when an entity fails model validation.
type InvalidInputError struct {
	Kind    string
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: invalid %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("store error: invalid %s: %s", e.Kind, e.Message)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

// PersistError is returned when the snapshot could not be written.
// The in-memory state is left unchanged.
type PersistError struct {
	Message string
	Cause   error
}

func (e *PersistError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persist error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("persist error: %s", e.Message)
}

func (e *PersistError) Unwrap() error {
	return e.Cause
}

// MigrationError is returned when persisted state cannot be decoded, upgraded, or validated.
type MigrationError struct {
	Version int
	Message string
	Cause   error
}

func (e *MigrationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("migration error: version %d: %s: %v", e.Version, e.Message, e.Cause)
	}
	return fmt.Sprintf("migration error: version %d: %s", e.Version, e.Message)
}

func (e *MigrationError) Unwrap() error {
	return e.Cause
}
