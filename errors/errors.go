/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when attempting to create a record that already exists
	ErrAlreadyExists = errors.New("record already exists")

	// ErrConditionFailed is returned when a conditional write fails
	ErrConditionFailed = errors.New("condition check failed")

	// ErrIncorrectOwner is returned when the acting user does not own the record
	ErrIncorrectOwner = errors.New("incorrect owner")

	// ErrNoUpdateData is returned when an update is requested with no changed fields
	ErrNoUpdateData = errors.New("no update data")

	// ErrSchemaMismatch is returned when a stored record is missing required fields
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrMissingIdentifier is returned when a key template placeholder has no bound value
	ErrMissingIdentifier = errors.New("missing key identifier")

	// ErrStorageUnavailable is returned when the storage backend cannot be reached
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Kind    string
	PartKey string
	SortKey string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q/%q not found", e.Kind, e.PartKey, e.SortKey)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a record already exists
type AlreadyExistsError struct {
	Kind    string
	PartKey string
	SortKey string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q/%q already exists", e.Kind, e.PartKey, e.SortKey)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ConditionFailedError represents a failed conditional operation
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// IncorrectOwnerError represents an ownership predicate failure on a guarded write
type IncorrectOwnerError struct {
	Kind     string
	UserUUID string
}

func (e *IncorrectOwnerError) Error() string {
	return fmt.Sprintf("user %q is not the owner of %s", e.UserUUID, e.Kind)
}

func (e *IncorrectOwnerError) Is(target error) bool {
	return target == ErrIncorrectOwner
}

// SchemaMismatchError represents a stored record missing fields the codec requires
type SchemaMismatchError struct {
	Kind  string
	Field string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("stored %s record is missing required field %q", e.Kind, e.Field)
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// MissingIdentifierError represents a key template placeholder with no bound value
type MissingIdentifierError struct {
	Kind        string
	Placeholder string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("key template for %s has no value for placeholder %q", e.Kind, e.Placeholder)
}

func (e *MissingIdentifierError) Is(target error) bool {
	return target == ErrMissingIdentifier
}

// StorageUnavailableError wraps a transport or connectivity failure
type StorageUnavailableError struct {
	Operation string
	Err       error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Operation, e.Err)
}

func (e *StorageUnavailableError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, partKey, sortKey string) error {
	return &NotFoundError{Kind: kind, PartKey: partKey, SortKey: sortKey}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, partKey, sortKey string) error {
	return &AlreadyExistsError{Kind: kind, PartKey: partKey, SortKey: sortKey}
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// NewIncorrectOwnerError creates a new IncorrectOwnerError
func NewIncorrectOwnerError(kind, userUUID string) error {
	return &IncorrectOwnerError{Kind: kind, UserUUID: userUUID}
}

// NewSchemaMismatchError creates a new SchemaMismatchError
func NewSchemaMismatchError(kind, field string) error {
	return &SchemaMismatchError{Kind: kind, Field: field}
}

// NewMissingIdentifierError creates a new MissingIdentifierError
func NewMissingIdentifierError(kind, placeholder string) error {
	return &MissingIdentifierError{Kind: kind, Placeholder: placeholder}
}

// NewStorageUnavailableError creates a new StorageUnavailableError
func NewStorageUnavailableError(operation string, err error) error {
	return &StorageUnavailableError{Operation: operation, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}

// IsIncorrectOwner checks if an error is an incorrect owner error
func IsIncorrectOwner(err error) bool {
	return errors.Is(err, ErrIncorrectOwner)
}

// IsNoUpdateData checks if an error is a no update data error
func IsNoUpdateData(err error) bool {
	return errors.Is(err, ErrNoUpdateData)
}

// IsSchemaMismatch checks if an error is a schema mismatch error
func IsSchemaMismatch(err error) bool {
	return errors.Is(err, ErrSchemaMismatch)
}

// IsMissingIdentifier checks if an error is a missing identifier error
func IsMissingIdentifier(err error) bool {
	return errors.Is(err, ErrMissingIdentifier)
}

// IsStorageUnavailable checks if an error is a storage unavailable error
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
