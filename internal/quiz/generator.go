// Package quiz selects drill questions and tracks session scoring.
package quiz

import (
	"math/rand"

	"github.com/ridgely/clefdrill/internal/notation"
)

// Mode controls how the next note is chosen.
type Mode int

const (
	// Uniform picks any in-range note with equal probability.
	Uniform Mode = iota
	// Weighted prefers notes with outstanding mistakes, weight = miss count.
	Weighted
)

func (m Mode) String() string {
	if m == Weighted {
		return "mistakes"
	}
	return "all notes"
}

// Option is one of the four answer choices shown to the user.
type Option struct {
	Letter string
	Label  string
}

// Question is one rendered drill prompt.
type Question struct {
	Clef    notation.Clef
	Note    notation.Note
	Options []Option
}

// MistakeSource supplies outstanding miss counts for weighted selection.
type MistakeSource interface {
	Count(clef notation.Clef, note notation.Note) int
}

// maxDrawAttempts bounds the anti-repeat retry loop so tiny pools (a
// span-0 range holds a single note) cannot stall question generation.
const maxDrawAttempts = 5

// Generator produces questions. Randomness is injected so tests can seed
// it; the generator is not safe for concurrent use.
type Generator struct {
	rng      *rand.Rand
	mistakes MistakeSource
}

// NewGenerator builds a Generator drawing randomness from rng and miss
// counts from mistakes (nil disables weighted selection).
func NewGenerator(rng *rand.Rand, mistakes MistakeSource) *Generator {
	return &Generator{rng: rng, mistakes: mistakes}
}

// Next draws the next question, retrying up to maxDrawAttempts to avoid
// repeating prev's exact (clef, note); after that the last draw is
// accepted as-is.
func (g *Generator) Next(mode Mode, span notation.Span, prev *Question) Question {
	var clef notation.Clef
	var note notation.Note
	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		clef, note = g.draw(mode, span)
		if prev == nil || prev.Clef != clef || prev.Note.ID() != note.ID() {
			break
		}
	}
	return Question{
		Clef:    clef,
		Note:    note,
		Options: g.buildOptions(note.Letter),
	}
}

// draw picks one (clef, note) under the given mode and range. Weighted
// mode considers both clefs' ledgers at once; only when no note anywhere
// in range has an outstanding miss does it fall back to a uniform draw
// over a randomly chosen clef's in-range pool.
func (g *Generator) draw(mode Mode, span notation.Span) (notation.Clef, notation.Note) {
	if mode == Weighted && g.mistakes != nil {
		if clef, note, ok := g.drawWeighted(span); ok {
			return clef, note
		}
	}
	clef := notation.Clefs[g.rng.Intn(len(notation.Clefs))]
	pool := notation.InRange(clef, span)
	if len(pool) == 0 {
		// Cannot happen with the shipped catalogs, but never stall.
		pool = notation.Catalog(clef)
	}
	return clef, pool[g.rng.Intn(len(pool))]
}

// drawWeighted runs roulette-wheel selection over every in-range note on
// either clef with outstanding misses; the clef comes from the chosen
// entry, never from a separate roll. Reports ok=false when nothing is
// eligible so the caller falls back to uniform selection.
func (g *Generator) drawWeighted(span notation.Span) (notation.Clef, notation.Note, bool) {
	type candidate struct {
		clef   notation.Clef
		note   notation.Note
		weight int
	}
	var cands []candidate
	total := 0
	for _, clef := range notation.Clefs {
		for _, n := range notation.InRange(clef, span) {
			if c := g.mistakes.Count(clef, n); c > 0 {
				cands = append(cands, candidate{clef: clef, note: n, weight: c})
				total += c
			}
		}
	}
	if total == 0 {
		return "", notation.Note{}, false
	}

	r := g.rng.Float64() * float64(total)
	for _, c := range cands {
		r -= float64(c.weight)
		if r <= 0 {
			return c.clef, c.note, true
		}
	}
	// Floating-point overshoot lands on the last candidate.
	last := cands[len(cands)-1]
	return last.clef, last.note, true
}

// buildOptions returns four shuffled options: the correct letter plus
// three distinct wrong letters drawn from the full alphabet. Distractors
// are deliberately independent of the current range setting.
func (g *Generator) buildOptions(correct string) []Option {
	others := make([]string, 0, len(notation.Letters)-1)
	for _, l := range notation.Letters {
		if l != correct {
			others = append(others, l)
		}
	}
	g.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	letters := append([]string{correct}, others[:3]...)
	g.rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	opts := make([]Option, len(letters))
	for i, l := range letters {
		opts[i] = Option{Letter: l, Label: l}
	}
	return opts
}
