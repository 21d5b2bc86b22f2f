package clients

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError reports a lookup for a client that does not exist.
type NotFoundError struct {
	ID uuid.UUID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("client %s not found", e.ID)
}

// ValidationError reports a record that cannot be stored.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("client validation failed: %s", e.Reason)
}
