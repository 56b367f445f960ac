package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is the base of every "record or metadata is missing" error.
	ErrNotFound = errors.New("not found")

	// ErrDeleted is returned when retrieving a record that was deleted earlier
	// in the same test.
	ErrDeleted = errors.New("the record was previously removed")

	// ErrNotImplemented is returned for request or query shapes the fake does
	// not know how to serve.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownService is returned by a ServiceProvider for unsupported types.
	ErrUnknownService = errors.New("unknown service type")

	// ErrInvalidQuery is returned for malformed queries (bad FetchXML,
	// mismatched attribute/value lists).
	ErrInvalidQuery = errors.New("invalid query")
)

// RecordNotFoundError reports a missing record.
type RecordNotFoundError struct {
	EntityName string
	ID         uuid.UUID
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("Record %q with ID = %s is not found", e.EntityName, e.ID)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *RecordNotFoundError) Unwrap() error { return ErrNotFound }

// MetadataKind distinguishes entity from attribute metadata lookups.
type MetadataKind string

const (
	// MetadataEntity marks an entity metadata lookup.
	MetadataEntity MetadataKind = "Entity"
	// MetadataAttribute marks an attribute metadata lookup.
	MetadataAttribute MetadataKind = "Attribute"
)

// MetadataNotFoundError reports missing entity or attribute metadata.
type MetadataNotFoundError struct {
	Kind        MetadataKind
	LogicalName string
}

func (e *MetadataNotFoundError) Error() string {
	return fmt.Sprintf("%s metadata with logical name = %s is not found", e.Kind, e.LogicalName)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *MetadataNotFoundError) Unwrap() error { return ErrNotFound }

// NotImplementedError names the request, query or operator that is not supported.
type NotImplementedError struct {
	What string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotImplemented, e.What)
}

// Unwrap allows errors.Is(err, ErrNotImplemented).
func (e *NotImplementedError) Unwrap() error { return ErrNotImplemented }
