package model

import "errors"

// Input validation errors.
// These are fatal input errors: they are surfaced to the caller before any
// computation starts and callers match them with errors.Is().
var (
	// ErrEmptyName is returned when a person has no name.
	ErrEmptyName = errors.New("person name must not be empty")

	// ErrDuplicatePerson is returned when two people share a name.
	ErrDuplicatePerson = errors.New("duplicate person")

	// ErrUnknownParent is returned when a parent name does not match any person.
	ErrUnknownParent = errors.New("unknown parent")

	// ErrIncompleteParents is returned when only one parent is recorded.
	// Mother and father must both be present or both be absent.
	ErrIncompleteParents = errors.New("mother and father must both be set or both be empty")

	// ErrSelfParent is returned when a person is listed as their own parent.
	ErrSelfParent = errors.New("person cannot be their own parent")
)
