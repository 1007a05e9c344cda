package notation

import "testing"

func TestSpanWindows(t *testing.T) {
	cases := []struct {
		span   Span
		lo, hi int
	}{
		{SpanZero, 48, 48},
		{SpanOne, 36, 60},
		{SpanTwo, 24, 72},
	}
	for _, c := range cases {
		lo, hi := c.span.Window()
		if lo != c.lo || hi != c.hi {
			t.Errorf("span %d window = [%d,%d], want [%d,%d]", c.span, lo, hi, c.lo, c.hi)
		}
	}
}

func TestInRangeSpanZeroIsMiddleC(t *testing.T) {
	for _, clef := range Clefs {
		notes := InRange(clef, SpanZero)
		if len(notes) != 1 {
			t.Fatalf("%s span 0 yielded %d notes, want 1", clef, len(notes))
		}
		if notes[0].ID() != "C4" {
			t.Errorf("%s span 0 yielded %s, want C4", clef, notes[0].ID())
		}
	}
}

func TestInRangeWiderSpanIsSuperset(t *testing.T) {
	for _, clef := range Clefs {
		narrow := InRange(clef, SpanOne)
		wide := InRange(clef, SpanTwo)

		wideIDs := map[string]bool{}
		for _, n := range wide {
			wideIDs[n.ID()] = true
		}
		for _, n := range narrow {
			if !wideIDs[n.ID()] {
				t.Errorf("%s span 1 note %s missing from span 2", clef, n.ID())
			}
		}
		if len(wide) <= len(narrow) {
			t.Errorf("%s span 2 (%d notes) not larger than span 1 (%d)", clef, len(wide), len(narrow))
		}
	}
}

func TestInRangeWithinWindow(t *testing.T) {
	for _, clef := range Clefs {
		for _, span := range Spans {
			lo, hi := span.Window()
			for _, n := range InRange(clef, span) {
				if p := n.Pitch(); p < lo || p > hi {
					t.Errorf("%s span %d returned %s with pitch %d outside [%d,%d]",
						clef, span, n.ID(), p, lo, hi)
				}
			}
		}
	}
}

func TestSpanTwoCoversFullCatalogs(t *testing.T) {
	for _, clef := range Clefs {
		if got, want := len(InRange(clef, SpanTwo)), len(Catalog(clef)); got != want {
			t.Errorf("%s span 2 yielded %d notes, want full catalog of %d", clef, got, want)
		}
	}
}
