package model

import "time"

// Vote is keyed by (round, actor); last write wins until reveal.
type Vote struct {
	ActorID  string    `json:"actorId"`
	ChoiceID string    `json:"choiceId"`
	VotedAt  time.Time `json:"votedAt"`
}
