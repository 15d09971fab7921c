package dictio

import (
	"context"
	"fmt"
	"strings"
	"time"

	gamedb "github.com/dictio-games/dictio/internal/database/gamedb/database"
	"github.com/dictio-games/dictio/internal/database/gamedb/model"
)

// SubmitDefinition upserts the actor's bluff for the round. Resubmitting
// before reveal is last-write-wins; the stored text is trimmed, and an
// empty result is kept but never counts as a bluff. The classic-mode
// reader has nothing to bluff and is rejected.
func (e *Engine) SubmitDefinition(ctx context.Context, roomID, roundID, actorID, text string) error {
	trimmed := strings.TrimSpace(text)

	return e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		room, err := tx.Room(roomID)
		if err != nil {
			return storeErr("room "+roomID, err)
		}
		round, err := tx.Round(roomID, roundID)
		if err != nil {
			return storeErr("round "+roundID, err)
		}

		if room.IsClassic() && round.ReaderID == actorID {
			return fmt.Errorf("the reader does not submit a bluff: %w", ErrValidation)
		}

		return tx.PutSubmission(roomID, roundID, model.Submission{
			ActorID:     actorID,
			Text:        trimmed,
			SubmittedAt: time.Now(),
		})
	})
}

// CastVote upserts the actor's vote, mutable until reveal. Voting for your
// own bluff is impossible by construction (an actor id doubles as the
// choice id of that actor's bluff), and the classic-mode reader never
// votes.
func (e *Engine) CastVote(ctx context.Context, roomID, roundID, actorID, choiceID string) error {
	if choiceID == actorID {
		return fmt.Errorf("cannot vote for your own definition: %w", ErrValidation)
	}

	return e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		room, err := tx.Room(roomID)
		if err != nil {
			return storeErr("room "+roomID, err)
		}
		round, err := tx.Round(roomID, roundID)
		if err != nil {
			return storeErr("round "+roundID, err)
		}

		if room.IsClassic() && round.ReaderID == actorID {
			return fmt.Errorf("the reader does not vote: %w", ErrUnauthorized)
		}

		return tx.PutVote(roomID, roundID, model.Vote{
			ActorID:  actorID,
			ChoiceID: choiceID,
			VotedAt:  time.Now(),
		})
	})
}

// SubmittedCount counts valid bluffs for UI gating; empty submissions are
// stored but not counted.
func (e *Engine) SubmittedCount(ctx context.Context, roomID, roundID string) (int, error) {
	subs, err := e.db.SubmissionsSnapshot(roomID, roundID)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, s := range subs {
		if s.IsBluff() {
			n++
		}
	}
	return n, nil
}
