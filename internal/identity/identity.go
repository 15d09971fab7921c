package identity

import "github.com/google/uuid"

// NewActorID issues an opaque anonymous actor id, stable for as long as the
// caller holds on to it. The engine treats it as an opaque string key.
func NewActorID() string {
	return uuid.NewString()
}
