package model

type GameMode string

const (
	GameModeClassic  GameMode = "classic"
	GameModeNoReader GameMode = "no_reader"
)

type LangMode string

const (
	LangModeEN   LangMode = "en"
	LangModeES   LangMode = "es"
	LangModeBoth LangMode = "both"
)

// Settings is the room configuration, fixed at creation time.
type Settings struct {
	TargetScore int      `json:"targetScore"`
	LangMode    LangMode `json:"langMode"`
	GameMode    GameMode `json:"gameMode"`

	// ReaderChoiceDisabled turns off the classic-mode reader's word pick,
	// skipping the word selection phase. The zero value keeps the pick on;
	// no_reader mode has no reader and is always disabled.
	ReaderChoiceDisabled bool `json:"readerChoiceDisabled"`
}

// Normalize fills defaults the way room creation resolves them: classic
// mode, English, reader choice on for classic only.
func (s *Settings) Normalize() {
	if s.GameMode == "" {
		s.GameMode = GameModeClassic
	}
	if s.LangMode == "" {
		s.LangMode = LangModeEN
	}
	if s.GameMode != GameModeClassic {
		s.ReaderChoiceDisabled = true
	}
}

func (s Settings) Valid() bool {
	if s.TargetScore <= 0 {
		return false
	}
	switch s.GameMode {
	case GameModeClassic, GameModeNoReader:
	default:
		return false
	}
	switch s.LangMode {
	case LangModeEN, LangModeES, LangModeBoth:
	default:
		return false
	}
	return true
}
