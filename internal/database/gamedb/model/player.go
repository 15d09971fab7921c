package model

import "time"

// Player is keyed by (room, actor). Departure only flips Connected; the
// record itself is never deleted and the score never decreases.
type Player struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	JoinedAt  time.Time `json:"joinedAt"`
	Connected bool      `json:"connected"`
}
