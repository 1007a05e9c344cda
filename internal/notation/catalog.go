// Package notation holds the fixed note catalogs for the supported clefs
// and the pitch arithmetic used to filter them by octave range.
package notation

import "fmt"

// Clef identifies which staff mapping a note belongs to.
type Clef string

const (
	Treble Clef = "treble"
	Bass   Clef = "bass"
)

// Clefs lists the supported clefs in display order.
var Clefs = []Clef{Treble, Bass}

// Note is one entry in a clef's catalog. StepsFromTop is the authored
// vertical offset from the staff's top line in half-line units; values
// outside [0,4] sit on ledger lines above or below the staff.
type Note struct {
	Letter       string
	Octave       int
	StepsFromTop float64
}

// ID returns the catalog key for the note, e.g. "C4".
func (n Note) ID() string {
	return fmt.Sprintf("%s%d", n.Letter, n.Octave)
}

// Catalogs are authored high-to-low so StepsFromTop never decreases.
// Treble covers C6 down to A3, bass E4 down to C2; both include middle C.
var trebleCatalog = []Note{
	{"C", 6, -2},
	{"B", 5, -1.5},
	{"A", 5, -1},
	{"G", 5, -0.5},
	{"F", 5, 0},
	{"E", 5, 0.5},
	{"D", 5, 1},
	{"C", 5, 1.5},
	{"B", 4, 2},
	{"A", 4, 2.5},
	{"G", 4, 3},
	{"F", 4, 3.5},
	{"E", 4, 4},
	{"D", 4, 4.5},
	{"C", 4, 5},
	{"B", 3, 5.5},
	{"A", 3, 6},
}

var bassCatalog = []Note{
	{"E", 4, -2},
	{"D", 4, -1.5},
	{"C", 4, -1},
	{"B", 3, -0.5},
	{"A", 3, 0},
	{"G", 3, 0.5},
	{"F", 3, 1},
	{"E", 3, 1.5},
	{"D", 3, 2},
	{"C", 3, 2.5},
	{"B", 2, 3},
	{"A", 2, 3.5},
	{"G", 2, 4},
	{"F", 2, 4.5},
	{"E", 2, 5},
	{"D", 2, 5.5},
	{"C", 2, 6},
}

// Catalog returns the full note list for a clef, highest pitch first.
// The returned slice is shared; callers must not mutate it.
func Catalog(clef Clef) []Note {
	switch clef {
	case Bass:
		return bassCatalog
	default:
		return trebleCatalog
	}
}

// Lookup finds a note by its catalog ID within a clef.
func Lookup(clef Clef, id string) (Note, bool) {
	for _, n := range Catalog(clef) {
		if n.ID() == id {
			return n, true
		}
	}
	return Note{}, false
}
