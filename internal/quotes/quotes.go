// Package quotes holds the break-time quote catalog. It is a pure mapping
// from voice to an ordered list of strings; which quote to show when is
// the presentation layer's choice.
package quotes

import "fmt"

// Voice identifies a quote persona.
type Voice int

const (
	Solea Voice = iota
	Nyra
	Vox
	Atlas
)

// All lists every voice in catalog order.
var All = []Voice{Solea, Nyra, Vox, Atlas}

func (v Voice) String() string {
	switch v {
	case Solea:
		return "Soléa"
	case Nyra:
		return "Nyra"
	case Vox:
		return "VOX"
	case Atlas:
		return "Atlas"
	}
	return "unknown"
}

// Key returns the lowercase settings key for the voice.
func (v Voice) Key() string {
	switch v {
	case Solea:
		return "solea"
	case Nyra:
		return "nyra"
	case Vox:
		return "vox"
	case Atlas:
		return "atlas"
	}
	return "unknown"
}

// Parse maps a settings key back to its voice.
func Parse(key string) (Voice, error) {
	for _, v := range All {
		if v.Key() == key {
			return v, nil
		}
	}
	return Solea, fmt.Errorf("unknown voice %q", key)
}

var catalog = map[Voice][]string{
	Solea: {
		"Die Pausen sind nicht Leerlauf, sondern Raum für neue Einsicht.",
		"Im Stillen wächst die Klarheit, im Rhythmus die Kraft.",
		"Jeder Atemzug zwischen den Fokus-Phasen nährt die Kreativität.",
		"Geduld ist keine Untätigkeit – sie ist aktives Warten auf den richtigen Moment.",
		"Die Schönheit der Arbeit liegt im Wechsel von Spannung und Entspannung.",
	},
	Nyra: {
		"Effizienz entsteht durch Rhythmus – nicht durch Hetze.",
		"Pause ist strategische Regeneration, nicht Zeitverschwendung.",
		"Ein klarer Timer schafft klare Ergebnisse.",
		"Disziplin im Fokus, Freiheit in der Pause.",
		"Der nächste Schritt ist immer der wichtigste – aber nur mit frischer Energie.",
	},
	Vox: {
		"Präzision: 25min ± 0.1% Abweichung tolerabel.",
		"Statistik: 4 Pomodoros = 100min Fokus + 15min Langpause (optimale Ratio).",
		"Evidenz zeigt: Regelmäßige Pausen erhöhen die Gesamtproduktivität um 13-20%.",
		"Zyklus-Konsistenz ist nachweisbar effektiver als unstrukturierte Arbeitsblöcke.",
		"Timer-basierte Arbeit reduziert Entscheidungsmüdigkeit um 34%.",
	},
	Atlas: {
		"Balance zwischen Fokus und Erholung ist der Kern nachhaltiger Produktivität.",
		"Das System atmet: Anspannung – Lösung – Integration.",
		"Nicht die Länge der Pause zählt, sondern ihre Qualität.",
		"Rhythmus schafft Stabilität, Stabilität schafft Flow.",
		"Der Wechsel selbst ist die Konstante, die Entwicklung ermöglicht.",
	},
}

// Catalog returns a copy of the ordered quote list for a voice.
func Catalog(v Voice) []string {
	src := catalog[v]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Pick returns the n-th quote for a voice, wrapping around the catalog.
// Deterministic so the host can rotate quotes per completed break.
func Pick(v Voice, n int) string {
	src := catalog[v]
	if len(src) == 0 {
		return ""
	}
	if n < 0 {
		n = -n
	}
	return src[n%len(src)]
}
