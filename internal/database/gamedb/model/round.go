package model

import "time"

// Candidate is a word offered to the reader during word selection. Only the
// id and the localized word are exposed, never the definition.
type Candidate struct {
	ID   string `json:"id"`
	Word string `json:"word"`
}

// Option is one votable entry of the reveal board. AuthorID is empty for
// the real definition.
type Option struct {
	ChoiceID string `json:"choiceId"`
	AuthorID string `json:"authorId,omitempty"`
	Text     string `json:"text"`
}

type Round struct {
	ID       string `json:"id"`
	RoomID   string `json:"roomId"`
	Index    int    `json:"index"`
	ReaderID string `json:"readerId,omitempty"`

	// WordID, Word and RealDefinition are set iff the phase is at or past
	// writing.
	WordID         string `json:"wordId,omitempty"`
	Word           string `json:"word,omitempty"`
	RealDefinition string `json:"realDefinition,omitempty"`

	Lang       string      `json:"lang"`
	Phase      Phase       `json:"phase"`
	Candidates []Candidate `json:"wordCandidates,omitempty"`

	// PoolReset marks that this round's draw exhausted the corpus, so the
	// committed word starts a fresh used set.
	PoolReset bool `json:"poolReset"`

	// Options and RealChoiceID are persisted once at reveal so every client
	// replays the same shuffled board.
	Options      []Option `json:"options,omitempty"`
	RealChoiceID string   `json:"realChoiceId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	ChosenAt  time.Time `json:"chosenAt,omitempty"`
	ScoredAt  time.Time `json:"scoredAt,omitempty"`
}

func (r *Round) Candidate(wordID string) (Candidate, bool) {
	for _, c := range r.Candidates {
		if c.ID == wordID {
			return c, true
		}
	}
	return Candidate{}, false
}

// OptionsFor returns the persisted reveal board from the actor's point of
// view: a player is never offered their own bluff as a votable choice.
func (r *Round) OptionsFor(actorID string) []Option {
	options := make([]Option, 0, len(r.Options))
	for _, o := range r.Options {
		if o.ChoiceID == actorID {
			continue
		}
		options = append(options, o)
	}
	return options
}
