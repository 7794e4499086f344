package workspace

import (
	"errors"
)

// Failure taxonomy for every workspace operation. Handlers map these to
// HTTP statuses with errors.Is, everything else is a storage error.
var (
	// ErrForbidden - the actor's role does not permit the action.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidState - the mission status disallows the transition.
	ErrInvalidState = errors.New("invalid mission state")
	// ErrCapacity - the crew is full.
	ErrCapacity = errors.New("mission is full")
	// ErrNotMember - the actor is not on the crew.
	ErrNotMember = errors.New("not a crew member")
	// ErrNotFound - the referenced entity does not exist (or is soft
	// deleted).
	ErrNotFound = errors.New("not found")
	// ErrUpstream - an external collaborator (upload) failed.
	ErrUpstream = errors.New("upstream failure")
)
