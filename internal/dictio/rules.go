package dictio

import (
	"github.com/dictio-games/dictio/internal/database/gamedb/model"
)

// modeRules resolves the classic/no_reader behavioral split once, instead
// of string comparisons scattered through the controller.
type modeRules struct {
	// hasReader: the round rotates through PlayerOrder and the reader is
	// exempt from bluffing and voting.
	hasReader bool

	// votingSources are the phases voting may be opened from.
	votingSources []model.Phase

	// canOpenVoting guards openVoting and revealAndScore.
	canOpenVoting func(room *model.Room, round *model.Round, actorID string) bool

	// canAdvance guards finishGame and advanceOrFinish. readerID is the
	// current round's reader, empty when there is none.
	canAdvance func(room *model.Room, readerID, actorID string) bool
}

var modeTable = map[model.GameMode]modeRules{
	model.GameModeClassic: {
		hasReader:     true,
		votingSources: []model.Phase{model.PhaseReview, model.PhaseWriting},
		canOpenVoting: func(_ *model.Room, round *model.Round, actorID string) bool {
			return round.ReaderID != "" && round.ReaderID == actorID
		},
		canAdvance: func(room *model.Room, readerID, actorID string) bool {
			return actorID == room.HostID || (readerID != "" && actorID == readerID)
		},
	},
	model.GameModeNoReader: {
		hasReader:     false,
		votingSources: []model.Phase{model.PhaseWriting},
		canOpenVoting: func(room *model.Room, _ *model.Round, actorID string) bool {
			return actorID == room.HostID
		},
		canAdvance: func(room *model.Room, _, actorID string) bool {
			return actorID == room.HostID
		},
	},
}

func rulesFor(room *model.Room) modeRules {
	if rules, ok := modeTable[room.Settings.GameMode]; ok {
		return rules
	}
	return modeTable[model.GameModeClassic]
}

func phaseIn(phase model.Phase, allowed []model.Phase) bool {
	for _, p := range allowed {
		if p == phase {
			return true
		}
	}
	return false
}
