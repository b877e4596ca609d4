package quotes

import "testing"

func TestEveryVoiceHasQuotes(t *testing.T) {
	for _, v := range All {
		if len(Catalog(v)) == 0 {
			t.Fatalf("voice %s has no quotes", v)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	a := Catalog(Nyra)
	a[0] = "mutated"
	if Catalog(Nyra)[0] == "mutated" {
		t.Fatal("Catalog leaked internal slice")
	}
}

func TestPickRotates(t *testing.T) {
	n := len(Catalog(Solea))
	if Pick(Solea, 0) != Pick(Solea, n) {
		t.Fatal("Pick should wrap around the catalog")
	}
	if Pick(Solea, 0) == Pick(Solea, 1) {
		t.Fatal("consecutive picks should differ")
	}
	// Negative indices must not panic.
	if Pick(Solea, -1) == "" {
		t.Fatal("negative index returned empty quote")
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, v := range All {
		got, err := Parse(v.Key())
		if err != nil {
			t.Fatalf("parse %q: %v", v.Key(), err)
		}
		if got != v {
			t.Fatalf("parse %q: got %v, want %v", v.Key(), got, v)
		}
	}

	if _, err := Parse("hal9000"); err == nil {
		t.Fatal("expected error for unknown voice")
	}
}
