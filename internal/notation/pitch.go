package notation

// Letters is the seven-letter pitch alphabet used for answer options.
var Letters = []string{"A", "B", "C", "D", "E", "F", "G"}

// semitones maps a letter to its semitone offset within an octave.
var semitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// MiddleC is the pitch value of C4.
const MiddleC = 4*12 + 0

// Pitch returns the note's pitch value (octave*12 + semitone class).
// Used only for range comparisons; staff placement uses StepsFromTop.
func (n Note) Pitch() int {
	return n.Octave*12 + semitones[n.Letter]
}

// Span is an octave radius around middle C.
type Span int

const (
	SpanZero Span = iota
	SpanOne
	SpanTwo
)

// Spans lists the selectable range settings, narrowest first.
var Spans = []Span{SpanZero, SpanOne, SpanTwo}

// Window returns the inclusive pitch-value bounds for the span.
func (s Span) Window() (lo, hi int) {
	r := int(s) * 12
	return MiddleC - r, MiddleC + r
}

func (s Span) String() string {
	switch s {
	case SpanZero:
		return "middle C"
	case SpanOne:
		return "±1 octave"
	default:
		return "±2 octaves"
	}
}

// InRange returns the clef's catalog notes whose pitch falls inside the
// span's window, in catalog order. The same filter feeds both uniform and
// mistake-weighted pools so the two modes agree on which notes count.
func InRange(clef Clef, span Span) []Note {
	lo, hi := span.Window()
	var out []Note
	for _, n := range Catalog(clef) {
		if p := n.Pitch(); p >= lo && p <= hi {
			out = append(out, n)
		}
	}
	return out
}
