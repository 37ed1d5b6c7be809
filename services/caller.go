package services

import "github.com/google/uuid"

// Caller is the authenticated identity every operation receives. The engine
// trusts the asserted organizer capability; authentication itself happens at
// the transport layer.
type Caller struct {
	ID          uuid.UUID
	IsOrganizer bool
}
