package app

import (
	"strings"

	"github.com/ridgely/clefdrill/internal/notation"
	"github.com/ridgely/clefdrill/internal/ui"
)

const (
	staffWidth = 33
	noteCol    = 16
	ledgerHalf = 3 // ledger lines extend this far either side of the note
	noteGlyph  = '●'
)

// clefGlyphs drawn at the left edge of the staff.
var clefGlyphs = map[notation.Clef]rune{
	notation.Treble: '𝄞',
	notation.Bass:   '𝄢',
}

// renderStaff draws the five-line staff with the note placed at its
// authored StepsFromTop offset. Whole steps outside [0,4] between the
// staff and the note get ledger lines. The canvas covers steps -2..6,
// the full extent of both catalogs.
func renderStaff(clef notation.Clef, note notation.Note) string {
	rowOf := func(steps float64) int { return int(steps*2) + 4 }

	rows := make([][]rune, rowOf(6)+1)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", staffWidth))
	}

	// The five staff lines sit at whole steps 0 through 4.
	for s := 0; s <= 4; s++ {
		row := rows[rowOf(float64(s))]
		for c := 2; c < staffWidth; c++ {
			row[c] = '─'
		}
	}

	// Ledger lines between the staff and an outlying note.
	for s := -2; s <= 6; s++ {
		if s >= 0 && s <= 4 {
			continue
		}
		steps := float64(s)
		outlying := (s < 0 && note.StepsFromTop <= steps) ||
			(s > 4 && note.StepsFromTop >= steps)
		if !outlying {
			continue
		}
		row := rows[rowOf(steps)]
		for c := noteCol - ledgerHalf; c <= noteCol+ledgerHalf; c++ {
			row[c] = '─'
		}
	}

	// Clef symbol on the middle line.
	rows[rowOf(2)][0] = clefGlyphs[clef]

	noteRow := rowOf(note.StepsFromTop)
	rows[noteRow][noteCol] = noteGlyph

	lines := make([]string, len(rows))
	for i, row := range rows {
		line := string(row)
		if i == noteRow {
			// Style just the note glyph so the staff stays dim.
			left := string(row[:noteCol])
			right := string(row[noteCol+1:])
			line = ui.StaffStyle.Render(left) +
				ui.NoteStyle.Render(string(noteGlyph)) +
				ui.StaffStyle.Render(right)
		} else {
			line = ui.StaffStyle.Render(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
