package dictio

import (
	"context"
	"fmt"
	"strings"
	"time"

	gamedb "github.com/dictio-games/dictio/internal/database/gamedb/database"
	"github.com/dictio-games/dictio/internal/database/gamedb/model"
	"github.com/dictio-games/dictio/internal/logging"
	"github.com/google/uuid"
)

// codeAlphabet omits visually ambiguous glyphs (0/O, 1/I): 32 symbols.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

func (e *Engine) newRoomCode() string {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		b.WriteByte(codeAlphabet[e.rnd.Intn(len(codeAlphabet))])
	}
	return b.String()
}

// NormalizeRoomCode uppercases, strips everything outside ASCII A-Z/0-9
// and truncates to the code length.
func NormalizeRoomCode(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if b.Len() == codeLength {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CreateRoom creates a lobby room owned by the host and the host's player
// record. The join code is not re-checked for uniqueness; a collision
// between concurrently live rooms is an accepted, vanishingly small risk.
func (e *Engine) CreateRoom(ctx context.Context, hostID, hostName string, settings model.Settings) (string, string, error) {
	logger := logging.FromContext(ctx).Named("dictio.CreateRoom")

	if hostID == "" || hostName == "" {
		return "", "", fmt.Errorf("host id and name required: %w", ErrValidation)
	}

	settings.Normalize()
	if !settings.Valid() {
		return "", "", fmt.Errorf("bad room settings: %w", ErrValidation)
	}

	roomID := uuid.NewString()
	code := e.newRoomCode()
	now := time.Now()

	if err := e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		room := model.Room{
			ID:          roomID,
			Code:        code,
			HostID:      hostID,
			Settings:    settings,
			PlayerOrder: []string{hostID},
			Status:      model.PhaseLobby,
			UsedWordIDs: []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.PutRoom(room); err != nil {
			return err
		}

		return tx.PutPlayer(model.Player{
			ID:        hostID,
			RoomID:    roomID,
			Name:      hostName,
			JoinedAt:  now,
			Connected: true,
		})
	}); err != nil {
		return "", "", err
	}

	logger.Infof("room created, id: %s, code: %s, host: %s", roomID, code, hostName)
	return roomID, code, nil
}

// JoinRoomByCode admits an actor into a lobby room. Rejoining is
// idempotent: a known actor only refreshes name and connectivity, the
// roster gains no duplicate entry. Joining after the game started is an
// explicit failure, not a no-op.
func (e *Engine) JoinRoomByCode(ctx context.Context, code, actorID, name string) (string, error) {
	logger := logging.FromContext(ctx).Named("dictio.JoinRoomByCode")

	clean := NormalizeRoomCode(code)
	if len(clean) != codeLength {
		return "", fmt.Errorf("malformed room code %q: %w", code, ErrValidation)
	}

	room, err := e.db.RoomByCode(clean)
	if err != nil {
		return "", storeErr("room with code "+clean, err)
	}

	if err := e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		cur, err := tx.Room(room.ID)
		if err != nil {
			return storeErr("room "+room.ID, err)
		}

		if cur.Status != model.PhaseLobby {
			return fmt.Errorf("room %s already started: %w", cur.ID, ErrInvalidState)
		}

		now := time.Now()
		if cur.HasPlayer(actorID) {
			player, err := tx.Player(cur.ID, actorID)
			if err != nil {
				return storeErr("player "+actorID, err)
			}
			player.Name = name
			player.Connected = true
			return tx.PutPlayer(player)
		}

		cur.PlayerOrder = append(cur.PlayerOrder, actorID)
		cur.UpdatedAt = now
		if err := tx.PutRoom(cur); err != nil {
			return err
		}

		return tx.PutPlayer(model.Player{
			ID:        actorID,
			RoomID:    cur.ID,
			Name:      name,
			JoinedAt:  now,
			Connected: true,
		})
	}); err != nil {
		return "", err
	}

	logger.Infof("player %s joined room %s", name, room.ID)
	return room.ID, nil
}

// MarkDisconnected flips the connectivity flag; the player record and the
// roster entry stay.
func (e *Engine) MarkDisconnected(ctx context.Context, roomID, actorID string) error {
	return e.db.RunAtomic(ctx, func(tx *gamedb.Tx) error {
		player, err := tx.Player(roomID, actorID)
		if err != nil {
			return storeErr("player "+actorID, err)
		}
		player.Connected = false
		return tx.PutPlayer(player)
	})
}
