package dictio

import (
	"context"
	"fmt"
	"time"

	gamedb "github.com/dictio-games/dictio/internal/database/gamedb/database"
	"github.com/dictio-games/dictio/internal/database/gamedb/model"
	"github.com/dictio-games/dictio/internal/logging"
)

// StartGame moves a lobby room into its first round. Host-only, and the
// room needs at least two players. The lobby guard and the first round
// creation are two separate transactions; a crash between them can leave
// the room status inconsistent with round existence (known hardening gap).
func (e *Engine) StartGame(ctx context.Context, roomID, hostID string) error {
	logger := logging.FromContext(ctx).Named("dictio.StartGame")

	started := false
	if err := e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		room, err := tx.Room(roomID)
		if err != nil {
			return storeErr("room "+roomID, err)
		}

		if room.HostID != hostID {
			return fmt.Errorf("only the host can start the game: %w", ErrUnauthorized)
		}
		if room.Status != model.PhaseLobby {
			// someone already started it
			return nil
		}
		if len(room.PlayerOrder) < 2 {
			return fmt.Errorf("at least 2 players required: %w", ErrValidation)
		}

		started = true
		room.UpdatedAt = time.Now()
		return tx.PutRoom(room)
	}); err != nil {
		return err
	}

	if !started {
		logger.Debugf("room %s not in lobby, start is a no-op", roomID)
		return nil
	}

	return e.CreateNextRound(ctx, roomID)
}

// CreateNextRound creates the next round and points the room at it. Valid
// only from lobby (game start) or reveal (advance); any other phase means
// a racing caller already advanced, which resolves as a no-op.
func (e *Engine) CreateNextRound(ctx context.Context, roomID string) error {
	logger := logging.FromContext(ctx).Named("dictio.CreateNextRound")

	return e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		room, err := tx.Room(roomID)
		if err != nil {
			return storeErr("room "+roomID, err)
		}

		if room.Status != model.PhaseLobby && room.Status != model.PhaseReveal {
			logger.Debugf("room %s in phase %s, round creation is a no-op", roomID, room.Status)
			return nil
		}
		if len(room.PlayerOrder) < 2 {
			return fmt.Errorf("at least 2 players required: %w", ErrValidation)
		}

		rules := rulesFor(&room)

		readerID := ""
		if rules.hasReader {
			readerID = room.PlayerOrder[room.ReaderIndex%len(room.PlayerOrder)]
		}

		lang := roundLang(room.Settings.LangMode, room.RoundIndex)
		draw := e.draw(room.UsedWordIDs, lang)

		now := time.Now()
		round := model.Round{
			ID:        fmt.Sprintf("r%d", room.RoundIndex+1),
			RoomID:    roomID,
			Index:     room.RoundIndex + 1,
			ReaderID:  readerID,
			Lang:      lang,
			PoolReset: draw.poolReset,
			CreatedAt: now,
		}

		room.RoundIndex++
		room.ReaderIndex = (room.ReaderIndex + 1) % len(room.PlayerOrder)
		room.CurrentRoundID = round.ID
		room.UpdatedAt = now

		if rules.hasReader && !room.Settings.ReaderChoiceDisabled {
			// the reader picks; the word commits in ChooseWord
			round.Candidates = draw.candidates
			round.Phase = model.PhaseWordSelect
			room.Status = model.PhaseWordSelect
		} else {
			// the first shuffled candidate is reused as the committed
			// choice rather than drawn independently
			chosen := draw.candidates[0]
			entry, ok := e.entryByID(chosen.ID)
			if !ok {
				return fmt.Errorf("word %s: %w", chosen.ID, ErrNotFound)
			}
			text := entry.Localized(lang)
			round.WordID = entry.ID
			round.Word = text.Word
			round.RealDefinition = text.Def
			round.Phase = model.PhaseWriting
			room.Status = model.PhaseWriting
			room.UsedWordIDs = commitUsed(room.UsedWordIDs, entry.ID, draw.poolReset)
		}

		if err := tx.PutRound(round); err != nil {
			return err
		}
		if err := tx.PutRoom(room); err != nil {
			return err
		}

		logger.Infof("round %s created in room %s, phase %s, reader %q", round.ID, roomID, round.Phase, readerID)
		return nil
	})
}

// ChooseWord commits the reader's pick from the offered candidates and
// opens the writing phase.
func (e *Engine) ChooseWord(ctx context.Context, roomID, roundID, actorID, wordID string) error {
	logger := logging.FromContext(ctx).Named("dictio.ChooseWord")

	return e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		room, err := tx.Room(roomID)
		if err != nil {
			return storeErr("room "+roomID, err)
		}
		round, err := tx.Round(roomID, roundID)
		if err != nil {
			return storeErr("round "+roundID, err)
		}

		if round.ReaderID != actorID {
			return fmt.Errorf("only the reader can choose the word: %w", ErrUnauthorized)
		}
		if round.Phase != model.PhaseWordSelect {
			logger.Debugf("round %s in phase %s, word choice is a no-op", roundID, round.Phase)
			return nil
		}
		if _, ok := round.Candidate(wordID); !ok {
			return fmt.Errorf("word %s is not among the offered candidates: %w", wordID, ErrValidation)
		}

		entry, ok := e.entryByID(wordID)
		if !ok {
			return fmt.Errorf("word %s: %w", wordID, ErrNotFound)
		}

		now := time.Now()
		text := entry.Localized(round.Lang)
		round.WordID = entry.ID
		round.Word = text.Word
		round.RealDefinition = text.Def
		round.Phase = model.PhaseWriting
		round.ChosenAt = now

		room.UsedWordIDs = commitUsed(room.UsedWordIDs, entry.ID, round.PoolReset)
		room.Status = model.PhaseWriting
		room.UpdatedAt = now

		if err := tx.PutRound(round); err != nil {
			return err
		}
		return tx.PutRoom(room)
	})
}

// OpenReaderReview gives the classic-mode reader a private look at current
// submissions before opening voting. Partial submissions are fine; no
// minimum count is enforced here.
func (e *Engine) OpenReaderReview(ctx context.Context, roomID, roundID, actorID string) error {
	logger := logging.FromContext(ctx).Named("dictio.OpenReaderReview")

	return e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		room, err := tx.Room(roomID)
		if err != nil {
			return storeErr("room "+roomID, err)
		}
		round, err := tx.Round(roomID, roundID)
		if err != nil {
			return storeErr("round "+roundID, err)
		}

		if !room.IsClassic() {
			return fmt.Errorf("review exists only in classic mode: %w", ErrInvalidState)
		}
		if round.ReaderID != actorID {
			return fmt.Errorf("only the reader can review: %w", ErrUnauthorized)
		}
		if round.Phase != model.PhaseWriting {
			logger.Debugf("round %s in phase %s, review is a no-op", roundID, round.Phase)
			return nil
		}

		now := time.Now()
		round.Phase = model.PhaseReview
		room.Status = model.PhaseReview
		room.UpdatedAt = now

		if err := tx.PutRound(round); err != nil {
			return err
		}
		return tx.PutRoom(room)
	})
}

// OpenVoting transitions to the voting phase. Classic rounds may come from
// review or straight from writing (review is skippable); no_reader rounds
// only from writing.
func (e *Engine) OpenVoting(ctx context.Context, roomID, roundID, actorID string) error {
	logger := logging.FromContext(ctx).Named("dictio.OpenVoting")

	return e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
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
			return fmt.Errorf("actor %s may not open voting: %w", actorID, ErrUnauthorized)
		}
		if !phaseIn(round.Phase, rules.votingSources) {
			logger.Debugf("round %s in phase %s, voting open is a no-op", roundID, round.Phase)
			return nil
		}

		now := time.Now()
		round.Phase = model.PhaseVoting
		room.Status = model.PhaseVoting
		room.UpdatedAt = now

		if err := tx.PutRound(round); err != nil {
			return err
		}
		return tx.PutRoom(room)
	})
}

// FinishGame moves the room to the terminal finished phase unconditionally.
func (e *Engine) FinishGame(ctx context.Context, roomID, actorID string) error {
	return e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		room, err := tx.Room(roomID)
		if err != nil {
			return storeErr("room "+roomID, err)
		}

		readerID := ""
		if room.CurrentRoundID != "" {
			round, err := tx.Round(roomID, room.CurrentRoundID)
			if err == nil {
				readerID = round.ReaderID
			}
		}

		rules := rulesFor(&room)
		if !rules.canAdvance(&room, readerID, actorID) {
			return fmt.Errorf("actor %s may not finish the game: %w", actorID, ErrUnauthorized)
		}

		room.Status = model.PhaseFinished
		room.UpdatedAt = time.Now()
		return tx.PutRoom(room)
	})
}

// AdvanceOrFinish creates the next round, or reports that the game is over
// without creating one. Duplicate advances from racing observers resolve
// inside CreateNextRound's phase guard.
func (e *Engine) AdvanceOrFinish(ctx context.Context, roomID, actorID string) (bool, error) {
	room, err := e.db.RoomSnapshot(roomID)
	if err != nil {
		return false, storeErr("room "+roomID, err)
	}

	if room.GameOver {
		return true, nil
	}

	readerID := ""
	if room.CurrentRoundID != "" {
		if round, err := e.db.RoundSnapshot(roomID, room.CurrentRoundID); err == nil {
			readerID = round.ReaderID
		}
	}

	rules := rulesFor(&room)
	if !rules.canAdvance(&room, readerID, actorID) {
		return false, fmt.Errorf("actor %s may not advance the game: %w", actorID, ErrUnauthorized)
	}

	if err := e.CreateNextRound(ctx, roomID); err != nil {
		return false, err
	}
	return false, nil
}
