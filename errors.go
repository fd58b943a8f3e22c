package entmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes of model generation. Every error
// returned by the generator matches exactly one of these via errors.Is.
var (
	// ErrMissingName is returned when an entity, embeddable value, or
	// reference target lacks a required display name.
	ErrMissingName = errors.New("entmap: missing name")

	// ErrInvalidShape is returned when an entity-tagged schema is not an
	// object schema.
	ErrInvalidShape = errors.New("entmap: entity must be an object")

	// ErrIllegalEmbedding is returned when a field's resolved schema is
	// itself an entity. Entities must be pointed at with a reference, never
	// embedded.
	ErrIllegalEmbedding = errors.New("entmap: entities cannot be embedded directly")

	// ErrInvalidReference is returned when a reference points at a schema
	// that is not tagged as an entity.
	ErrInvalidReference = errors.New("entmap: reference target must be an entity")

	// ErrUnsupportedType is returned when a field's resolved schema matches
	// none of the known property kinds.
	ErrUnsupportedType = errors.New("entmap: unsupported field type")
)

// EntityError reports a structural problem with an entity schema as a whole.
type EntityError struct {
	Entity string // Entity name; may be empty when the name itself is missing.
	Err    error  // One of the sentinel errors above.
}

// Error returns the error string.
func (e *EntityError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("entity schema must have a name: %v", e.Err)
	}
	return fmt.Sprintf("entity %q: %v", e.Entity, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *EntityError) Unwrap() error {
	return e.Err
}

// NewEntityError returns a new EntityError for the given entity.
func NewEntityError(entity string, err error) *EntityError {
	return &EntityError{Entity: entity, Err: err}
}

// FieldError reports a classification failure on a single field. The first
// FieldError aborts generation for the whole input set.
type FieldError struct {
	Entity string // Owning entity name.
	Field  string // Offending field name.
	Err    error  // One of the sentinel errors above.
	Reason string // Optional detail, e.g. the unsupported kind.
}

// Error returns the error string.
func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("field %q on entity %q: %v: %s", e.Field, e.Entity, e.Err, e.Reason)
	}
	return fmt.Sprintf("field %q on entity %q: %v", e.Field, e.Entity, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError returns a new FieldError for the given field.
func NewFieldError(entity, field string, err error) *FieldError {
	return &FieldError{Entity: entity, Field: field, Err: err}
}

// IsMissingName reports whether the error is a missing-name failure.
func IsMissingName(err error) bool {
	return errors.Is(err, ErrMissingName)
}

// IsInvalidShape reports whether the error is an invalid-shape failure.
func IsInvalidShape(err error) bool {
	return errors.Is(err, ErrInvalidShape)
}

// IsIllegalEmbedding reports whether the error is an illegal-embedding
// failure.
func IsIllegalEmbedding(err error) bool {
	return errors.Is(err, ErrIllegalEmbedding)
}

// IsInvalidReference reports whether the error is an invalid-reference
// failure.
func IsInvalidReference(err error) bool {
	return errors.Is(err, ErrInvalidReference)
}

// IsUnsupportedType reports whether the error is an unsupported-field-type
// failure.
func IsUnsupportedType(err error) bool {
	return errors.Is(err, ErrUnsupportedType)
}
