package dictio

import (
	"context"

	"github.com/dictio-games/dictio/internal/corpus"
	gamedb "github.com/dictio-games/dictio/internal/database/gamedb/database"
	"github.com/dictio-games/dictio/internal/database/gamedb/model"
	"github.com/dictio-games/dictio/internal/random"
)

// Engine is the authoritative game core. Every state-changing method runs
// as one atomic transaction against the document store; guards that find
// the transition already performed by a racing caller resolve as silent
// no-ops rather than errors.
type Engine struct {
	db    *gamedb.DB
	rnd   random.Provider
	words []corpus.Entry
}

// New builds the engine over the document store. words is the immutable
// corpus; pass corpus.All() outside of tests.
func New(db *gamedb.DB, rnd random.Provider, words []corpus.Entry) *Engine {
	return &Engine{db: db, rnd: rnd, words: words}
}

func (e *Engine) entryByID(id string) (corpus.Entry, bool) {
	for _, w := range e.words {
		if w.ID == id {
			return w, true
		}
	}
	return corpus.Entry{}, false
}

// Read-side snapshot accessors, consumed by watch-hub bootstrapping and
// rendering.

func (e *Engine) Room(ctx context.Context, roomID string) (model.Room, error) {
	room, err := e.db.RoomSnapshot(roomID)
	if err != nil {
		return room, storeErr("room "+roomID, err)
	}
	return room, nil
}

func (e *Engine) Players(ctx context.Context, roomID string) ([]model.Player, error) {
	return e.db.PlayersSnapshot(roomID)
}

func (e *Engine) Round(ctx context.Context, roomID, roundID string) (model.Round, error) {
	round, err := e.db.RoundSnapshot(roomID, roundID)
	if err != nil {
		return round, storeErr("round "+roundID, err)
	}
	return round, nil
}

func (e *Engine) Submissions(ctx context.Context, roomID, roundID string) ([]model.Submission, error) {
	return e.db.SubmissionsSnapshot(roomID, roundID)
}

func (e *Engine) Votes(ctx context.Context, roomID, roundID string) ([]model.Vote, error) {
	return e.db.VotesSnapshot(roomID, roundID)
}
