package corpus

// The word catalog is immutable, read-only data compiled into the binary.
// Every entry carries both language projections; the round language decides
// which one players see.

const (
	LangEN = "en"
	LangES = "es"
)

type Text struct {
	Word string `json:"word"`
	Def  string `json:"def"`
}

type Entry struct {
	ID string `json:"id"`
	EN Text   `json:"en"`
	ES Text   `json:"es"`
}

// Localized projects the entry to a concrete round language. Anything that
// is not Spanish falls back to English.
func (e Entry) Localized(lang string) Text {
	if lang == LangES {
		return e.ES
	}
	return e.EN
}

// All returns the full catalog. Callers must treat the slice as read-only.
func All() []Entry {
	return entries
}

func Size() int {
	return len(entries)
}

func ByID(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
