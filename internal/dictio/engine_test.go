package dictio

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/dictio-games/dictio/internal/cache/cachelru"
	"github.com/dictio-games/dictio/internal/corpus"
	"github.com/dictio-games/dictio/internal/database"
	gamedb "github.com/dictio-games/dictio/internal/database/gamedb/database"
	"github.com/dictio-games/dictio/internal/database/gamedb/model"
	"github.com/dictio-games/dictio/internal/random"
	"github.com/dictio-games/dictio/internal/watch"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, words []corpus.Entry, seed int64) *Engine {
	t.Helper()

	ctx := context.Background()
	sdb, err := database.NewFromEnv(ctx, &database.Config{
		FilePath: filepath.Join(t.TempDir(), "dictio.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sdb.Close(ctx) })

	codes, err := cachelru.NewLRU(32)
	require.NoError(t, err)

	return New(gamedb.New(sdb, codes, watch.NewHub()), random.NewSeeded(seed), words)
}

func testWords(n int) []corpus.Entry {
	words := make([]corpus.Entry, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("w%03d", i+1)
		words = append(words, corpus.Entry{
			ID: id,
			EN: corpus.Text{Word: "word-" + id, Def: "english definition of " + id},
			ES: corpus.Text{Word: "palabra-" + id, Def: "definición de " + id},
		})
	}
	return words
}

// setupRoom creates a room with the given settings, a host "H" and extra
// players P1..Pn, all joined through the public join path.
func setupRoom(t *testing.T, e *Engine, settings model.Settings, extra int) (string, []string) {
	t.Helper()
	ctx := context.Background()

	roomID, code, err := e.CreateRoom(ctx, "H", "Hanna", settings)
	require.NoError(t, err)

	actors := []string{"H"}
	for i := 1; i <= extra; i++ {
		id := fmt.Sprintf("P%d", i)
		joined, err := e.JoinRoomByCode(ctx, code, id, "Player "+id)
		require.NoError(t, err)
		require.Equal(t, roomID, joined)
		actors = append(actors, id)
	}

	return roomID, actors
}

func classicSettings(target int) model.Settings {
	return model.Settings{
		TargetScore: target,
		LangMode:    model.LangModeEN,
		GameMode:    model.GameModeClassic,
	}
}

func noReaderSettings(target int) model.Settings {
	return model.Settings{
		TargetScore: target,
		LangMode:    model.LangModeEN,
		GameMode:    model.GameModeNoReader,
	}
}

// currentRound fetches the round the room currently points at.
func currentRound(t *testing.T, e *Engine, roomID string) model.Round {
	t.Helper()
	ctx := context.Background()

	room, err := e.Room(ctx, roomID)
	require.NoError(t, err)
	require.NotEmpty(t, room.CurrentRoundID)

	round, err := e.Round(ctx, roomID, room.CurrentRoundID)
	require.NoError(t, err)
	return round
}

// playRound drives the current round from its initial phase through reveal:
// reader picks the first candidate if needed, every non-reader submits a
// bluff and votes for the real definition, then the controller reveals.
func playRound(t *testing.T, e *Engine, roomID string, actors []string) {
	t.Helper()
	ctx := context.Background()

	round := currentRound(t, e, roomID)
	room, err := e.Room(ctx, roomID)
	require.NoError(t, err)

	controller := room.HostID
	if round.ReaderID != "" {
		controller = round.ReaderID
	}

	if round.Phase == model.PhaseWordSelect {
		require.NotEmpty(t, round.Candidates)
		require.NoError(t, e.ChooseWord(ctx, roomID, round.ID, round.ReaderID, round.Candidates[0].ID))
	}

	for _, actor := range actors {
		if actor == round.ReaderID {
			continue
		}
		require.NoError(t, e.SubmitDefinition(ctx, roomID, round.ID, actor, "a plausible fake for "+actor))
	}

	require.NoError(t, e.OpenVoting(ctx, roomID, round.ID, controller))

	for _, actor := range actors {
		if actor == round.ReaderID {
			continue
		}
		require.NoError(t, e.CastVote(ctx, roomID, round.ID, actor, RealChoiceID))
	}

	require.NoError(t, e.RevealAndScore(ctx, roomID, round.ID, controller))
}
