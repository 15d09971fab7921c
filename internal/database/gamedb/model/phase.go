package model

// Phase is the room/round state machine position. While a round is active
// the room status mirrors the round phase.
type Phase string

const (
	PhaseLobby      Phase = "lobby"
	PhaseWordSelect Phase = "word_select"
	PhaseReview     Phase = "review"
	PhaseWriting    Phase = "writing"
	PhaseVoting     Phase = "voting"
	PhaseReveal     Phase = "reveal"
	PhaseFinished   Phase = "finished"
)

func (p Phase) String() string {
	return string(p)
}
