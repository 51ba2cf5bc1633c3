package tracker

import (
	"errors"

	"github.com/intellitask/intellitask-cli/internal/store"
)

// Common errors. Callers match them with errors.Is; none of them is ever
// retried by the tracker itself.
var (
	// ErrValidation covers malformed caller input: empty identifiers,
	// empty required text fields, unknown enum values. Shared with the
	// store layer so a single errors.Is check covers both.
	ErrValidation = store.ErrValidation

	// ErrNotFound means an operation referenced an identifier that does
	// not resolve in the relevant store.
	ErrNotFound = errors.New("not found")

	// ErrAssociation means an attempt to remove a relationship that does
	// not exist, such as detaching a label that was never attached.
	ErrAssociation = errors.New("association does not exist")
)
