package model

import (
	"strings"
	"time"
)

// Submission is a player's bluff for a round, keyed by (round, actor) and
// owned exclusively by its author until reveal.
type Submission struct {
	ActorID     string    `json:"actorId"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// IsBluff reports whether the submission counts as a real bluff. Empty and
// whitespace-only texts are stored but never offered for voting.
func (s Submission) IsBluff() bool {
	return strings.TrimSpace(s.Text) != ""
}
