package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dictio-games/dictio/internal/cache"
	"github.com/dictio-games/dictio/internal/database"
	"github.com/dictio-games/dictio/internal/database/gamedb/model"
	"github.com/dictio-games/dictio/internal/logging"
	"github.com/dictio-games/dictio/internal/watch"
	bolt "go.etcd.io/bbolt"
)

// Buckets hold one JSON document per key. Rooms are keyed by id; everything
// below a room is keyed by a composite "roomID/..." path so collections can
// be read with a prefix scan.
const (
	bucketRooms       = "rooms"
	bucketPlayers     = "players"
	bucketRounds      = "rounds"
	bucketSubmissions = "submissions"
	bucketVotes       = "votes"
)

var NotFoundErr = fmt.Errorf("not found")

// New wraps the bolt connection into the game document store. codes caches
// join-code lookups; hub (optional) receives a full snapshot of every
// entity touched by a committed transaction.
func New(db *database.DB, codes cache.Cache, hub *watch.Hub) *DB {
	return &DB{sDB: db, codes: codes, hub: hub}
}

type DB struct {
	sDB   *database.DB
	codes cache.Cache
	hub   *watch.Hub
}

// Topic names for the watch hub.

func RoomTopic(roomID string) string {
	return "room/" + roomID
}

func PlayersTopic(roomID string) string {
	return "players/" + roomID
}

func RoundTopic(roomID, roundID string) string {
	return "round/" + roomID + "/" + roundID
}

func SubmissionsTopic(roomID, roundID string) string {
	return "submissions/" + roomID + "/" + roundID
}

func VotesTopic(roomID, roundID string) string {
	return "votes/" + roomID + "/" + roundID
}

func key(parts ...string) []byte {
	return []byte(strings.Join(parts, "/"))
}

// Tx is one atomic unit against the store. bolt serializes writers, so a
// guard validated against documents read through the same Tx still holds
// at commit; losers of a racing transition observe the committed state.
type Tx struct {
	btx *bolt.Tx

	dirtyRooms   map[string]struct{}
	dirtyPlayers map[string]struct{}
	dirtyRounds  map[[2]string]struct{}
	dirtySubs    map[[2]string]struct{}
	dirtyVotes   map[[2]string]struct{}
}

func newTx(btx *bolt.Tx) *Tx {
	return &Tx{
		btx:          btx,
		dirtyRooms:   map[string]struct{}{},
		dirtyPlayers: map[string]struct{}{},
		dirtyRounds:  map[[2]string]struct{}{},
		dirtySubs:    map[[2]string]struct{}{},
		dirtyVotes:   map[[2]string]struct{}{},
	}
}

func (tx *Tx) bucket(name string) (*bolt.Bucket, error) {
	if tx.btx.Writable() {
		b, err := tx.btx.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", name, err)
		}
		return b, nil
	}
	return tx.btx.Bucket([]byte(name)), nil
}

func (tx *Tx) get(bucket string, k []byte, out interface{}) error {
	b, err := tx.bucket(bucket)
	if err != nil {
		return err
	}
	if b == nil {
		return NotFoundErr
	}

	raw := b.Get(k)
	if len(raw) == 0 {
		return NotFoundErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal %s/%s: %w", bucket, k, err)
	}

	return nil
}

func (tx *Tx) put(bucket string, k []byte, doc interface{}) error {
	b, err := tx.bucket(bucket)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", bucket, k, err)
	}

	if err := b.Put(k, raw); err != nil {
		return fmt.Errorf("put to bucket error: %w", err)
	}

	return nil
}

func (tx *Tx) scan(bucket string, prefix []byte, fn func(k, v []byte) error) error {
	b, err := tx.bucket(bucket)
	if err != nil {
		return err
	}
	if b == nil {
		return nil
	}

	c := b.Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		if err := fn(k, v); err != nil {
			return err
		}
	}

	return nil
}

func (tx *Tx) Room(roomID string) (model.Room, error) {
	var room model.Room
	if err := tx.get(bucketRooms, key(roomID), &room); err != nil {
		return room, err
	}
	return room, nil
}

func (tx *Tx) PutRoom(room model.Room) error {
	if err := tx.put(bucketRooms, key(room.ID), room); err != nil {
		return err
	}
	tx.dirtyRooms[room.ID] = struct{}{}
	return nil
}

func (tx *Tx) Player(roomID, actorID string) (model.Player, error) {
	var player model.Player
	if err := tx.get(bucketPlayers, key(roomID, actorID), &player); err != nil {
		return player, err
	}
	return player, nil
}

func (tx *Tx) PutPlayer(player model.Player) error {
	if err := tx.put(bucketPlayers, key(player.RoomID, player.ID), player); err != nil {
		return err
	}
	tx.dirtyPlayers[player.RoomID] = struct{}{}
	return nil
}

// AddScore applies an atomic score increment to a player. Within a bolt
// write transaction no other writer can interleave, so the add cannot lose
// updates; engine code must never read-modify-write scores itself.
func (tx *Tx) AddScore(roomID, actorID string, delta int) error {
	player, err := tx.Player(roomID, actorID)
	if err != nil {
		return fmt.Errorf("add score %s: %w", actorID, err)
	}

	player.Score += delta
	return tx.PutPlayer(player)
}

func (tx *Tx) Players(roomID string) ([]model.Player, error) {
	var players []model.Player
	if err := tx.scan(bucketPlayers, append(key(roomID), '/'), func(k, v []byte) error {
		var p model.Player
		if err := json.Unmarshal(v, &p); err != nil {
			return fmt.Errorf("unmarshal player %s: %w", k, err)
		}
		players = append(players, p)
		return nil
	}); err != nil {
		return nil, err
	}
	return players, nil
}

func (tx *Tx) Round(roomID, roundID string) (model.Round, error) {
	var round model.Round
	if err := tx.get(bucketRounds, key(roomID, roundID), &round); err != nil {
		return round, err
	}
	return round, nil
}

func (tx *Tx) PutRound(round model.Round) error {
	if err := tx.put(bucketRounds, key(round.RoomID, round.ID), round); err != nil {
		return err
	}
	tx.dirtyRounds[[2]string{round.RoomID, round.ID}] = struct{}{}
	return nil
}

func (tx *Tx) PutSubmission(roomID, roundID string, sub model.Submission) error {
	if err := tx.put(bucketSubmissions, key(roomID, roundID, sub.ActorID), sub); err != nil {
		return err
	}
	tx.dirtySubs[[2]string{roomID, roundID}] = struct{}{}
	return nil
}

func (tx *Tx) Submissions(roomID, roundID string) ([]model.Submission, error) {
	var subs []model.Submission
	if err := tx.scan(bucketSubmissions, append(key(roomID, roundID), '/'), func(k, v []byte) error {
		var s model.Submission
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("unmarshal submission %s: %w", k, err)
		}
		subs = append(subs, s)
		return nil
	}); err != nil {
		return nil, err
	}
	return subs, nil
}

func (tx *Tx) PutVote(roomID, roundID string, vote model.Vote) error {
	if err := tx.put(bucketVotes, key(roomID, roundID, vote.ActorID), vote); err != nil {
		return err
	}
	tx.dirtyVotes[[2]string{roomID, roundID}] = struct{}{}
	return nil
}

func (tx *Tx) Votes(roomID, roundID string) ([]model.Vote, error) {
	var votes []model.Vote
	if err := tx.scan(bucketVotes, append(key(roomID, roundID), '/'), func(k, v []byte) error {
		var vt model.Vote
		if err := json.Unmarshal(v, &vt); err != nil {
			return fmt.Errorf("unmarshal vote %s: %w", k, err)
		}
		votes = append(votes, vt)
		return nil
	}); err != nil {
		return nil, err
	}
	return votes, nil
}

// RunAtomic executes fn as a single serializable read-validate-write unit.
// On commit, the hub receives a fresh full snapshot of every entity the
// transaction wrote.
func (db *DB) RunAtomic(ctx context.Context, fn func(tx *Tx) error) error {
	var tx *Tx
	if err := db.sDB.DB.Update(func(btx *bolt.Tx) error {
		tx = newTx(btx)
		return fn(tx)
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	db.publishDirty(ctx, tx)
	return nil
}

// View executes fn against a read-only snapshot.
func (db *DB) View(fn func(tx *Tx) error) error {
	if err := db.sDB.DB.View(func(btx *bolt.Tx) error {
		return fn(newTx(btx))
	}); err != nil {
		return err
	}
	return nil
}

func (db *DB) publishDirty(ctx context.Context, tx *Tx) {
	if db.hub == nil || tx == nil {
		return
	}
	logger := logging.FromContext(ctx).Named("gamedb.publish")

	if err := db.View(func(vtx *Tx) error {
		for roomID := range tx.dirtyRooms {
			room, err := vtx.Room(roomID)
			if err != nil {
				return err
			}
			db.hub.Publish(RoomTopic(roomID), room)
		}
		for roomID := range tx.dirtyPlayers {
			players, err := vtx.Players(roomID)
			if err != nil {
				return err
			}
			db.hub.Publish(PlayersTopic(roomID), players)
		}
		for rk := range tx.dirtyRounds {
			round, err := vtx.Round(rk[0], rk[1])
			if err != nil {
				return err
			}
			db.hub.Publish(RoundTopic(rk[0], rk[1]), round)
		}
		for rk := range tx.dirtySubs {
			subs, err := vtx.Submissions(rk[0], rk[1])
			if err != nil {
				return err
			}
			db.hub.Publish(SubmissionsTopic(rk[0], rk[1]), subs)
		}
		for rk := range tx.dirtyVotes {
			votes, err := vtx.Votes(rk[0], rk[1])
			if err != nil {
				return err
			}
			db.hub.Publish(VotesTopic(rk[0], rk[1]), votes)
		}
		return nil
	}); err != nil {
		logger.Errorf("publish snapshots: %v", err)
	}
}

// RoomByCode resolves a join code to its room, scanning the rooms bucket on
// a cache miss. Rooms are never deleted, so the code index never goes
// stale. If two rooms ever share a code, the first in bucket order wins.
func (db *DB) RoomByCode(code string) (model.Room, error) {
	if db.codes != nil {
		if v, ok := db.codes.Get(code); ok {
			var room model.Room
			if err := db.View(func(tx *Tx) error {
				r, err := tx.Room(v.(string))
				room = r
				return err
			}); err != nil {
				return room, err
			}
			return room, nil
		}
	}

	var room model.Room
	found := false
	if err := db.View(func(tx *Tx) error {
		return tx.scan(bucketRooms, nil, func(k, v []byte) error {
			if found {
				return nil
			}
			var r model.Room
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshal room %s: %w", k, err)
			}
			if r.Code == code {
				room = r
				found = true
			}
			return nil
		})
	}); err != nil {
		return room, err
	}

	if !found {
		return room, NotFoundErr
	}

	if db.codes != nil {
		db.codes.Add(code, room.ID)
	}

	return room, nil
}

// Snapshot readers used by the engine's read-side accessors.

func (db *DB) RoomSnapshot(roomID string) (model.Room, error) {
	var room model.Room
	err := db.View(func(tx *Tx) error {
		r, err := tx.Room(roomID)
		room = r
		return err
	})
	return room, err
}

func (db *DB) PlayersSnapshot(roomID string) ([]model.Player, error) {
	var players []model.Player
	err := db.View(func(tx *Tx) error {
		p, err := tx.Players(roomID)
		players = p
		return err
	})
	return players, err
}

func (db *DB) RoundSnapshot(roomID, roundID string) (model.Round, error) {
	var round model.Round
	err := db.View(func(tx *Tx) error {
		r, err := tx.Round(roomID, roundID)
		round = r
		return err
	})
	return round, err
}

func (db *DB) SubmissionsSnapshot(roomID, roundID string) ([]model.Submission, error) {
	var subs []model.Submission
	err := db.View(func(tx *Tx) error {
		s, err := tx.Submissions(roomID, roundID)
		subs = s
		return err
	})
	return subs, err
}

func (db *DB) VotesSnapshot(roomID, roundID string) ([]model.Vote, error) {
	var votes []model.Vote
	err := db.View(func(tx *Tx) error {
		v, err := tx.Votes(roomID, roundID)
		votes = v
		return err
	})
	return votes, err
}
