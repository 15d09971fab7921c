package corpus

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	if Size() == 0 {
		t.Fatal("empty catalog")
	}

	seen := map[string]bool{}
	for _, e := range All() {
		if e.ID == "" {
			t.Fatal("entry without id")
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %s", e.ID)
		}
		seen[e.ID] = true

		if e.EN.Word == "" || e.EN.Def == "" {
			t.Fatalf("entry %s missing the English projection", e.ID)
		}
		if e.ES.Word == "" || e.ES.Def == "" {
			t.Fatalf("entry %s missing the Spanish projection", e.ID)
		}
	}
}

func TestLocalized(t *testing.T) {
	e := Entry{
		ID: "x",
		EN: Text{Word: "word", Def: "meaning"},
		ES: Text{Word: "palabra", Def: "significado"},
	}

	if got := e.Localized(LangES); got.Word != "palabra" {
		t.Fatalf("es projection: %+v", got)
	}
	if got := e.Localized(LangEN); got.Word != "word" {
		t.Fatalf("en projection: %+v", got)
	}
	// anything unknown falls back to English
	if got := e.Localized("fr"); got.Word != "word" {
		t.Fatalf("fallback projection: %+v", got)
	}
}

func TestByID(t *testing.T) {
	first := All()[0]

	e, ok := ByID(first.ID)
	if !ok || e.ID != first.ID {
		t.Fatalf("lookup %s failed", first.ID)
	}

	if _, ok := ByID("nope"); ok {
		t.Fatal("unexpected hit for an unknown id")
	}
}
