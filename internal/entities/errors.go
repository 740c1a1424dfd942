// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEngineerNotFound is returned when an engineer does not exist.
	ErrEngineerNotFound = errors.New("engineer not found")
	// ErrEngineerExists signals engineer id or email conflict.
	ErrEngineerExists = errors.New("engineer exists")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectExists signals duplicate project id.
	ErrProjectExists = errors.New("project exists")
	// ErrAssignmentNotFound signals missing assignment.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrAssignmentExists signals duplicate assignment id.
	ErrAssignmentExists = errors.New("assignment exists")
	// ErrCapacityExceeded signals that an assignment would push an engineer over the allocation ceiling.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
