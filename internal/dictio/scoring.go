package dictio

import (
	"context"
	"fmt"
	"time"

	gamedb "github.com/dictio-games/dictio/internal/database/gamedb/database"
	"github.com/dictio-games/dictio/internal/database/gamedb/model"
	"github.com/dictio-games/dictio/internal/logging"
)

// RealChoiceID tags the real definition on the reveal board.
const RealChoiceID = "REAL"

// RevealAndScore resolves a voting phase: builds the option board, shuffles
// it once and persists the order, applies score deltas as atomic
// increments, and moves round and room to reveal. Authorization mirrors
// OpenVoting; any phase other than voting means a racing caller already
// revealed, which is a no-op. The VOTING->REVEAL guard is what makes
// scoring exactly-once: only one caller can win it.
//
// Scoring: +2 to each voter who chose the real definition, +1 to a bluff's
// author per vote that bluff received, and in classic mode +1 to the
// reader per voter who did not choose the real definition.
func (e *Engine) RevealAndScore(ctx context.Context, roomID, roundID, actorID string) error {
	logger := logging.FromContext(ctx).Named("dictio.RevealAndScore")

	if err := e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		room, err := tx.Room(roomID)
		if err != nil {
			return storeErr("room "+roomID, err)
		}
		round, err := tx.Round(roomID, roundID)
		if err != nil {
			return storeErr("round "+roundID, err)
		}

		rules := rulesFor(&room)
		if !rules.canOpenVoting(&room, &round, actorID) {
			return fmt.Errorf("actor %s may not reveal: %w", actorID, ErrUnauthorized)
		}
		if round.Phase != model.PhaseVoting {
			logger.Debugf("round %s in phase %s, reveal is a no-op", roundID, round.Phase)
			return nil
		}

		subs, err := tx.Submissions(roomID, roundID)
		if err != nil {
			return err
		}
		votes, err := tx.Votes(roomID, roundID)
		if err != nil {
			return err
		}

		// the board: the real definition plus every valid bluff; reader
		// submissions are ignored in classic mode (shouldn't exist)
		options := []model.Option{{ChoiceID: RealChoiceID, Text: round.RealDefinition}}
		bluffAuthors := map[string]string{}
		for _, s := range subs {
			if !s.IsBluff() {
				continue
			}
			if room.IsClassic() && s.ActorID == round.ReaderID {
				continue
			}
			options = append(options, model.Option{ChoiceID: s.ActorID, AuthorID: s.ActorID, Text: s.Text})
			bluffAuthors[s.ActorID] = s.ActorID
		}

		e.rnd.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		realVotes := 0
		for _, v := range votes {
			if v.ChoiceID == RealChoiceID {
				realVotes++
				if err := tx.AddScore(roomID, v.ActorID, 2); err != nil {
					return err
				}
			}
			if author, ok := bluffAuthors[v.ChoiceID]; ok {
				if err := tx.AddScore(roomID, author, 1); err != nil {
					return err
				}
			}
		}

		if room.IsClassic() {
			if bonus := len(votes) - realVotes; bonus > 0 {
				if err := tx.AddScore(roomID, round.ReaderID, bonus); err != nil {
					return err
				}
			}
		}

		now := time.Now()
		round.Phase = model.PhaseReveal
		round.Options = options
		round.RealChoiceID = RealChoiceID
		round.ScoredAt = now

		room.Status = model.PhaseReveal
		room.UpdatedAt = now

		if err := tx.PutRound(round); err != nil {
			return err
		}
		if err := tx.PutRoom(room); err != nil {
			return err
		}

		logger.Infof("round %s revealed in room %s, %d votes, %d real", roundID, roomID, len(votes), realVotes)
		return nil
	}); err != nil {
		return err
	}

	return e.checkGameOver(ctx, roomID)
}

// checkGameOver marks the room game-over once some player reaches the
// target score. The flag only ever goes false->true. When several players
// share the maximum, the first encountered in scan order wins (an open
// issue inherited from the rules, not a deliberate tie-break).
func (e *Engine) checkGameOver(ctx context.Context, roomID string) error {
	logger := logging.FromContext(ctx).Named("dictio.checkGameOver")

	room, err := e.db.RoomSnapshot(roomID)
	if err != nil {
		return storeErr("room "+roomID, err)
	}
	if room.GameOver {
		return nil
	}

	players, err := e.db.PlayersSnapshot(roomID)
	if err != nil {
		return err
	}

	winnerID := ""
	top := -1
	for _, p := range players {
		if p.Score > top {
			top = p.Score
			winnerID = p.ID
		}
	}

	if top < room.Settings.TargetScore {
		return nil
	}

	return e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		cur, err := tx.Room(roomID)
		if err != nil {
			return storeErr("room "+roomID, err)
		}
		if cur.GameOver {
			return nil
		}

		cur.GameOver = true
		cur.WinnerID = winnerID
		cur.UpdatedAt = time.Now()

		logger.Infof("game over in room %s, winner %s with %d points", roomID, winnerID, top)
		return tx.PutRoom(cur)
	})
}
