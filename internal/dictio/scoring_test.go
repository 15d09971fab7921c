package dictio

import (
	"context"
	"testing"

	"github.com/dictio-games/dictio/internal/database/gamedb/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scores(t *testing.T, e *Engine, roomID string) map[string]int {
	t.Helper()
	players, err := e.Players(context.Background(), roomID)
	require.NoError(t, err)
	byID := make(map[string]int, len(players))
	for _, p := range players {
		byID[p.ID] = p.Score
	}
	return byID
}

func TestRevealAndScoreClassic(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, testWords(10), 1)
	ctx := context.Background()

	roomID, _ := setupRoom(t, e, classicSettings(15), 2)
	require.NoError(t, e.StartGame(ctx, roomID, "H"))
	round := currentRound(t, e, roomID)
	reader := round.ReaderID
	require.Equal(t, "H", reader)

	require.NoError(t, e.ChooseWord(ctx, roomID, round.ID, reader, round.Candidates[0].ID))
	require.NoError(t, e.SubmitDefinition(ctx, roomID, round.ID, "P1", "fake by P1"))
	require.NoError(t, e.SubmitDefinition(ctx, roomID, round.ID, "P2", "fake by P2"))
	require.NoError(t, e.OpenVoting(ctx, roomID, round.ID, reader))

	require.NoError(t, e.CastVote(ctx, roomID, round.ID, "P1", RealChoiceID))
	require.NoError(t, e.CastVote(ctx, roomID, round.ID, "P2", "P1"))

	require.NoError(t, e.RevealAndScore(ctx, roomID, round.ID, reader))

	// P1: +2 for the real definition, +1 for P2's vote on the bluff.
	// The reader collects one point for the one fooled voter.
	got := scores(t, e, roomID)
	assert.Equal(t, 3, got["P1"])
	assert.Equal(t, 0, got["P2"])
	assert.Equal(t, 1, got["H"])

	// every vote mints exactly two points in classic mode
	assert.Equal(t, 4, got["P1"]+got["P2"]+got["H"])

	round = currentRound(t, e, roomID)
	assert.Equal(t, model.PhaseReveal, round.Phase)
	assert.Equal(t, RealChoiceID, round.RealChoiceID)
	require.Len(t, round.Options, 3, "the real definition plus both bluffs")

	choiceIDs := map[string]bool{}
	for _, o := range round.Options {
		choiceIDs[o.ChoiceID] = true
	}
	assert.True(t, choiceIDs[RealChoiceID])
	assert.True(t, choiceIDs["P1"])
	assert.True(t, choiceIDs["P2"])
}

func TestRevealAndScoreIdempotent(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, testWords(10), 1)
	ctx := context.Background()

	roomID, _ := setupRoom(t, e, classicSettings(15), 2)
	require.NoError(t, e.StartGame(ctx, roomID, "H"))
	round := currentRound(t, e, roomID)
	reader := round.ReaderID

	require.NoError(t, e.ChooseWord(ctx, roomID, round.ID, reader, round.Candidates[0].ID))
	require.NoError(t, e.SubmitDefinition(ctx, roomID, round.ID, "P1", "fake by P1"))
	require.NoError(t, e.OpenVoting(ctx, roomID, round.ID, reader))
	require.NoError(t, e.CastVote(ctx, roomID, round.ID, "P2", "P1"))

	require.NoError(t, e.RevealAndScore(ctx, roomID, round.ID, reader))
	before := scores(t, e, roomID)
	board := currentRound(t, e, roomID).Options

	// a second reveal finds the round past voting and changes nothing
	require.NoError(t, e.RevealAndScore(ctx, roomID, round.ID, reader))
	assert.Equal(t, before, scores(t, e, roomID))
	assert.Equal(t, board, currentRound(t, e, roomID).Options)
}

func TestRevealAndScoreAuthz(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, testWords(10), 1)
	ctx := context.Background()

	roomID, _ := setupRoom(t, e, classicSettings(15), 2)
	require.NoError(t, e.StartGame(ctx, roomID, "H"))
	round := currentRound(t, e, roomID)
	require.NoError(t, e.ChooseWord(ctx, roomID, round.ID, round.ReaderID, round.Candidates[0].ID))
	require.NoError(t, e.OpenVoting(ctx, roomID, round.ID, round.ReaderID))

	err := e.RevealAndScore(ctx, roomID, round.ID, "P1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRevealAndScoreNoReader(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, testWords(10), 1)
	ctx := context.Background()

	roomID, actors := setupRoom(t, e, noReaderSettings(50), 2)
	require.NoError(t, e.StartGame(ctx, roomID, "H"))
	round := currentRound(t, e, roomID)

	// everyone, host included, writes a bluff
	for _, actor := range actors {
		require.NoError(t, e.SubmitDefinition(ctx, roomID, round.ID, actor, "fake by "+actor))
	}
	require.NoError(t, e.OpenVoting(ctx, roomID, round.ID, "H"))

	require.NoError(t, e.CastVote(ctx, roomID, round.ID, "H", "P1"))
	require.NoError(t, e.CastVote(ctx, roomID, round.ID, "P1", RealChoiceID))
	require.NoError(t, e.CastVote(ctx, roomID, round.ID, "P2", RealChoiceID))

	require.NoError(t, e.RevealAndScore(ctx, roomID, round.ID, "H"))

	// no reader means no consolation bonus for fooled voters
	got := scores(t, e, roomID)
	assert.Equal(t, 0, got["H"])
	assert.Equal(t, 3, got["P1"])
	assert.Equal(t, 2, got["P2"])

	round = currentRound(t, e, roomID)
	require.Len(t, round.Options, 4)

	// a player is never offered their own bluff back
	own := round.OptionsFor("P1")
	require.Len(t, own, 3)
	for _, o := range own {
		assert.NotEqual(t, "P1", o.ChoiceID)
	}
}

func TestGameOverAtTargetScore(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, testWords(10), 1)
	ctx := context.Background()

	roomID, actors := setupRoom(t, e, noReaderSettings(4), 2)
	require.NoError(t, e.StartGame(ctx, roomID, "H"))

	playRound(t, e, roomID, actors)
	room, err := e.Room(ctx, roomID)
	require.NoError(t, err)
	assert.False(t, room.GameOver, "everyone sits at 2 of 4")

	finished, err := e.AdvanceOrFinish(ctx, roomID, "H")
	require.NoError(t, err)
	require.False(t, finished)

	playRound(t, e, roomID, actors)
	room, err = e.Room(ctx, roomID)
	require.NoError(t, err)
	assert.True(t, room.GameOver)
	assert.NotEmpty(t, room.WinnerID)
}

func TestGameOverWinnerSticks(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, testWords(10), 1)
	ctx := context.Background()

	roomID, _ := setupRoom(t, e, noReaderSettings(2), 2)
	require.NoError(t, e.StartGame(ctx, roomID, "H"))
	round := currentRound(t, e, roomID)

	require.NoError(t, e.SubmitDefinition(ctx, roomID, round.ID, "P1", "fake by P1"))
	require.NoError(t, e.OpenVoting(ctx, roomID, round.ID, "H"))
	require.NoError(t, e.CastVote(ctx, roomID, round.ID, "P2", RealChoiceID))
	require.NoError(t, e.RevealAndScore(ctx, roomID, round.ID, "H"))

	room, err := e.Room(ctx, roomID)
	require.NoError(t, err)
	require.True(t, room.GameOver)
	assert.Equal(t, "P2", room.WinnerID)

	// re-checking after the flag is set never rewrites the winner
	require.NoError(t, e.checkGameOver(ctx, roomID))
	room, err = e.Room(ctx, roomID)
	require.NoError(t, err)
	assert.Equal(t, "P2", room.WinnerID)
}
