// Package app implements the drill's terminal UI as a bubbletea program.
package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ridgely/clefdrill/internal/ledger"
	"github.com/ridgely/clefdrill/internal/notation"
	"github.com/ridgely/clefdrill/internal/quiz"
	"github.com/ridgely/clefdrill/internal/ui"
)

// Model is the root bubbletea model for the drill.
type Model struct {
	// Collaborators
	gen      *quiz.Generator
	mistakes *ledger.Ledger

	// Practice settings
	mode quiz.Mode
	span notation.Span

	// Current question. seq increments per question and keys the
	// auto-advance timer; ticks armed for an older seq are ignored.
	question quiz.Question
	seq      int

	// Answer state
	answered    bool
	lastCorrect bool
	chosen      int

	// Session
	stats     quiz.Stats
	startedAt time.Time

	// UI state
	notice       string
	advanceDelay time.Duration
	width        int
	height       int
}

// New creates a Model showing its first question.
func New(gen *quiz.Generator, mistakes *ledger.Ledger, mode quiz.Mode, span notation.Span, advanceDelay time.Duration) Model {
	m := Model{
		gen:          gen,
		mistakes:     mistakes,
		mode:         mode,
		span:         span,
		chosen:       -1,
		startedAt:    time.Now(),
		advanceDelay: advanceDelay,
	}
	m.question = gen.Next(mode, span, nil)
	m.seq = 1
	return m
}

// Stats returns the session tally, read by main after the program exits.
func (m Model) Stats() quiz.Stats { return m.stats }

// StartedAt returns when the session began.
func (m Model) StartedAt() time.Time { return m.startedAt }

// Init returns the initial command; the first question is already drawn.
func (m Model) Init() tea.Cmd {
	return nil
}

// advanceCmd arms the post-answer delay for the question identified by seq.
func advanceCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return AdvanceMsg{Seq: seq}
	})
}

// clearNoticeCmd fires after a delay to clear transient notices.
func clearNoticeCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case AdvanceMsg:
		if msg.Seq != m.seq {
			// A newer question replaced the one this timer was armed for.
			return m, nil
		}
		m.nextQuestion()
		return m, nil

	case ClearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit

	case KeyOption1, KeyOption2, KeyOption3, KeyOption4:
		idx := int(msg.String()[0] - '1')
		return m.submitAnswer(idx)

	case KeyToggleMode:
		return m.toggleMode()

	case KeyCycleRange:
		return m.cycleRange()
	}

	return m, nil
}

// submitAnswer scores the chosen option, updates the ledger, and arms the
// auto-advance timer. Extra presses while feedback is showing are ignored.
func (m Model) submitAnswer(idx int) (tea.Model, tea.Cmd) {
	if m.answered || idx < 0 || idx >= len(m.question.Options) {
		return m, nil
	}

	m.chosen = idx
	m.answered = true
	m.lastCorrect = m.question.Options[idx].Letter == m.question.Note.Letter
	m.stats.RecordAttempt(m.lastCorrect)

	if m.lastCorrect {
		m.mistakes.RecordHit(m.question.Clef, m.question.Note)
	} else {
		m.mistakes.RecordMiss(m.question.Clef, m.question.Note)
	}

	return m, advanceCmd(m.seq, m.advanceDelay)
}

// toggleMode switches between uniform and mistake-weighted practice. The
// weighted mode is only selectable while the ledger has in-range entries.
func (m Model) toggleMode() (tea.Model, tea.Cmd) {
	if m.mode == quiz.Weighted {
		m.mode = quiz.Uniform
		m.nextQuestion()
		return m, nil
	}
	if !m.mistakes.HasEligible(m.span) {
		m.notice = "No missed notes in range yet — mistake practice unavailable"
		return m, clearNoticeCmd()
	}
	m.mode = quiz.Weighted
	m.nextQuestion()
	return m, nil
}

// cycleRange steps through the octave spans and draws a fresh question.
func (m Model) cycleRange() (tea.Model, tea.Cmd) {
	for i, s := range notation.Spans {
		if s == m.span {
			m.span = notation.Spans[(i+1)%len(notation.Spans)]
			break
		}
	}
	m.nextQuestion()
	return m, nil
}

// nextQuestion draws the next question and invalidates any pending
// advance timer by bumping seq.
func (m *Model) nextQuestion() {
	prev := m.question
	m.question = m.gen.Next(m.mode, m.span, &prev)
	m.seq++
	m.answered = false
	m.chosen = -1
}

// View renders the full TUI.
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderDivider())
	sections = append(sections, "")
	sections = append(sections, renderStaff(m.question.Clef, m.question.Note))
	sections = append(sections, "")
	sections = append(sections, m.renderOptions())
	sections = append(sections, m.renderFeedback())
	sections = append(sections, m.renderStats())
	sections = append(sections, m.renderDivider())
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("CLEFDRILL")

	clefName := strings.ToUpper(string(m.question.Clef)) + " CLEF"
	clef := ui.ClefLabelStyle.Render(clefName)

	var mode string
	if m.mode == quiz.Weighted {
		mode = ui.ModeBadgeStyle.Render("[" + m.mode.String() + "]")
		if !m.mistakes.HasEligible(m.span) {
			mode += ui.DimStyle.Render(" (none in range)")
		}
	} else {
		mode = ui.ModeOffStyle.Render("[" + m.mode.String() + "]")
	}

	span := ui.DimStyle.Render("range: " + m.span.String())

	return title + "  " + clef + "  " + mode + "  " + span
}

func (m Model) renderDivider() string {
	width := m.width
	if width == 0 {
		width = staffWidth + 20
	}
	return ui.DividerStyle.Render(strings.Repeat("─", width))
}

func (m Model) renderOptions() string {
	var parts []string
	for i, opt := range m.question.Options {
		key := fmt.Sprintf("%d)", i+1)
		label := opt.Label

		var rendered string
		switch {
		case m.answered && opt.Letter == m.question.Note.Letter:
			rendered = ui.CorrectStyle.Render(key + " " + label)
		case m.answered && i == m.chosen:
			rendered = ui.IncorrectStyle.Render(key + " " + label)
		default:
			rendered = ui.OptionKeyStyle.Render(key) + " " + ui.OptionStyle.Render(label)
		}
		parts = append(parts, rendered)
	}
	return "  " + strings.Join(parts, "    ")
}

func (m Model) renderFeedback() string {
	if m.notice != "" {
		return "  " + ui.NoticeStyle.Render(m.notice)
	}
	if !m.answered {
		return "  " + ui.DimStyle.Render("Name the note")
	}
	if m.lastCorrect {
		return "  " + ui.CorrectStyle.Render("✓ Correct")
	}
	return "  " + ui.IncorrectStyle.Render("✗ Incorrect") +
		ui.DimStyle.Render(" — that was "+m.question.Note.ID())
}

func (m Model) renderStats() string {
	line := fmt.Sprintf("answered %d · correct %d", m.stats.Total, m.stats.Correct)
	if pct, ok := m.stats.Accuracy(); ok {
		line += fmt.Sprintf(" · %d%%", pct)
	}
	if n := m.mistakes.Len(); n > 0 {
		line += fmt.Sprintf(" · tracking %d missed", n)
	}
	return "  " + ui.StatsStyle.Render(line)
}

func (m Model) renderFooter() string {
	var parts []string
	parts = append(parts, ui.FooterKeyStyle.Render("1-4")+ui.FooterDescStyle.Render(" Answer"))
	parts = append(parts, ui.FooterKeyStyle.Render("m")+ui.FooterDescStyle.Render(" Mode"))
	parts = append(parts, ui.FooterKeyStyle.Render("r")+ui.FooterDescStyle.Render(" Range"))
	parts = append(parts, ui.FooterKeyStyle.Render("q")+ui.FooterDescStyle.Render(" Quit"))
	return strings.Join(parts, "  ")
}
