package model

import "time"

type Room struct {
	ID       string   `json:"id"`
	Code     string   `json:"code"`
	HostID   string   `json:"hostId"`
	Settings Settings `json:"settings"`

	// PlayerOrder is the roster in join order; it drives reader rotation
	// and never contains duplicates.
	PlayerOrder []string `json:"playerOrder"`

	RoundIndex     int      `json:"roundIndex"`
	ReaderIndex    int      `json:"readerIndex"`
	UsedWordIDs    []string `json:"usedWordIds"`
	Status         Phase    `json:"status"`
	CurrentRoundID string   `json:"currentRoundId,omitempty"`
	GameOver       bool     `json:"gameOver"`
	WinnerID       string   `json:"winnerId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Room) IsClassic() bool {
	return r.Settings.GameMode == GameModeClassic
}

func (r *Room) HasPlayer(actorID string) bool {
	for _, id := range r.PlayerOrder {
		if id == actorID {
			return true
		}
	}
	return false
}
