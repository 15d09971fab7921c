package dictio

import (
	"github.com/dictio-games/dictio/internal/corpus"
	"github.com/dictio-games/dictio/internal/database/gamedb/model"
)

const maxCandidates = 5

// wordDraw is the allocator's output for one round creation: up to five
// candidates in shuffle order, and whether the draw exhausted the corpus.
type wordDraw struct {
	candidates []model.Candidate
	poolReset  bool
}

// draw samples candidates from the words not yet used in this room. Once
// the corpus is exhausted the whole catalog becomes eligible again and the
// round is flagged as a pool reset. Only the committed choice ever joins
// usedWordIDs; offered-but-unchosen candidates stay eligible.
func (e *Engine) draw(usedWordIDs []string, lang string) wordDraw {
	used := make(map[string]struct{}, len(usedWordIDs))
	for _, id := range usedWordIDs {
		used[id] = struct{}{}
	}

	unused := make([]corpus.Entry, 0, len(e.words))
	for _, w := range e.words {
		if _, ok := used[w.ID]; !ok {
			unused = append(unused, w)
		}
	}

	poolReset := len(unused) == 0
	pool := unused
	if poolReset {
		pool = append([]corpus.Entry(nil), e.words...)
	}

	e.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := len(pool)
	if n > maxCandidates {
		n = maxCandidates
	}

	candidates := make([]model.Candidate, 0, n)
	for _, w := range pool[:n] {
		candidates = append(candidates, model.Candidate{ID: w.ID, Word: w.Localized(lang).Word})
	}

	return wordDraw{candidates: candidates, poolReset: poolReset}
}

// commitUsed records the actually chosen word. A pool reset starts a fresh
// used set containing only the chosen id.
func commitUsed(usedWordIDs []string, wordID string, poolReset bool) []string {
	if poolReset {
		return []string{wordID}
	}
	next := make([]string, 0, len(usedWordIDs)+1)
	next = append(next, usedWordIDs...)
	return append(next, wordID)
}

// roundLang resolves the concrete round language. In "both" mode languages
// alternate round-robin: even creation counts draw Spanish, odd English.
func roundLang(mode model.LangMode, roundIndex int) string {
	switch mode {
	case model.LangModeES:
		return corpus.LangES
	case model.LangModeEN:
		return corpus.LangEN
	}
	if roundIndex%2 == 0 {
		return corpus.LangES
	}
	return corpus.LangEN
}
