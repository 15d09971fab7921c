package dictio

import (
	"fmt"
	"sort"

	"github.com/dictio-games/dictio/internal/database/gamedb/model"
	"github.com/dictio-games/dictio/internal/strpool"
	"github.com/enescakir/emoji"
)

// RenderLobby builds the lobby summary shown while players gather.
func RenderLobby(room model.Room, players []model.Player) string {
	buf := strpool.Get()
	defer func() {
		buf.Reset()
		strpool.Put(buf)
	}()

	_, _ = fmt.Fprintf(buf, "%s *The Dictionary*\n\n", emoji.BlueBook.String())
	_, _ = fmt.Fprintf(buf, "%s Room code: *%s*\n", emoji.Key.String(), room.Code)
	_, _ = fmt.Fprintf(buf, "%s Target score: %d\n\n", emoji.ChequeredFlag.String(), room.Settings.TargetScore)
	_, _ = fmt.Fprintf(buf, "%s Players:\n", emoji.BustsInSilhouette.String())

	byID := playersByID(players)
	for _, id := range room.PlayerOrder {
		p, ok := byID[id]
		if !ok {
			continue
		}
		buf.WriteString(" - ")
		buf.WriteString(p.Name)
		if id == room.HostID {
			buf.WriteString(" ")
			buf.WriteString(emoji.Crown.String())
		}
		buf.WriteString("\n")
	}

	return buf.String()
}

// RenderScoreboard builds the standings, highest score first.
func RenderScoreboard(room model.Room, players []model.Player) string {
	buf := strpool.Get()
	defer func() {
		buf.Reset()
		strpool.Put(buf)
	}()

	sorted := append([]model.Player(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	_, _ = fmt.Fprintf(buf, "%s Scoreboard\n\n", emoji.Trophy.String())
	for i, p := range sorted {
		_, _ = fmt.Fprintf(buf, "%d. %s — %d", i+1, p.Name, p.Score)
		if room.GameOver && p.ID == room.WinnerID {
			buf.WriteString(" ")
			buf.WriteString(emoji.PartyPopper.String())
		}
		buf.WriteString("\n")
	}

	return buf.String()
}

// RenderReveal builds the recap of a revealed round: every option in its
// persisted order with its vote count, the real definition marked.
func RenderReveal(round model.Round, votes []model.Vote) string {
	buf := strpool.Get()
	defer func() {
		buf.Reset()
		strpool.Put(buf)
	}()

	counts := map[string]int{}
	for _, v := range votes {
		counts[v.ChoiceID]++
	}

	_, _ = fmt.Fprintf(buf, "%s *%s*\n\n", emoji.OpenBook.String(), round.Word)
	for _, o := range round.Options {
		mark := emoji.SpeechBalloon.String()
		if o.ChoiceID == round.RealChoiceID {
			mark = emoji.CheckMarkButton.String()
		}
		_, _ = fmt.Fprintf(buf, "%s %s — %d %s\n", mark, o.Text, counts[o.ChoiceID], voteNoun(counts[o.ChoiceID]))
	}

	return buf.String()
}

func voteNoun(n int) string {
	if n == 1 {
		return "vote"
	}
	return "votes"
}

func playersByID(players []model.Player) map[string]model.Player {
	byID := make(map[string]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID
}
