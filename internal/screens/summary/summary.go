package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"prepkit/internal/router"
	"prepkit/internal/scoring"
	"prepkit/internal/screen"
	sess "prepkit/internal/session"
	"prepkit/internal/ui/layout"
	"prepkit/internal/ui/theme"
)

// SummaryScreen displays the completed session: per-question results, AI
// scores as they arrive, and session totals.
type SummaryScreen struct {
	engine *sess.Engine
	scorer *scoring.Service

	scores  map[string]*scoring.Score
	waiting int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// scorePollMsg drives collection of in-flight scores.
type scorePollMsg time.Time

// New creates a summary screen over a completed session.
func New(engine *sess.Engine, scorer *scoring.Service) *SummaryScreen {
	return &SummaryScreen{
		engine: engine,
		scorer: scorer,
		scores: make(map[string]*scoring.Score),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.scorer == nil {
		return nil
	}
	return scorePollCmd()
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scorePollMsg:
		return s.collectScores()
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// collectScores drains finished scoring requests and keeps polling while
// any remain pending.
func (s *SummaryScreen) collectScores() (screen.Screen, tea.Cmd) {
	s.waiting = 0
	for _, ans := range s.engine.Answers() {
		if _, have := s.scores[ans.QuestionID]; have {
			continue
		}
		if score, ok := s.scorer.Consume(ans.QuestionID); ok {
			s.scores[ans.QuestionID] = score
			continue
		}
		if s.scorer.StatusFor(ans.QuestionID) == scoring.StatusPending {
			s.waiting++
		}
	}
	if s.waiting > 0 {
		return s, scorePollCmd()
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	m := s.engine.Metrics()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %s", layout.FormatClock(int(s.engine.Elapsed().Seconds())))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Answered: %d        Skipped: %d",
		m.QuestionsTotal, m.QuestionsAnswered, m.QuestionsSkipped)
	if m.HintsUsed > 0 {
		statsLine += fmt.Sprintf("        Hints: %d (-%d pts)", m.HintsUsed, m.PenaltyTotal)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Questions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i := 0; i < s.engine.Len(); i++ {
		q, _ := s.engine.QuestionAt(i)
		b.WriteString(s.renderQuestionLine(i, q.ID, q.Prompt, width))
	}

	return b.String()
}

func (s *SummaryScreen) renderQuestionLine(index int, qid, prompt string, width int) string {
	title := prompt
	if len(title) > 56 {
		title = title[:53] + "..."
	}

	var status, detail string
	style := lipgloss.NewStyle().Foreground(theme.Text)

	ans, answered := s.engine.Answer(qid)
	switch {
	case answered:
		status = theme.Answered.Render("answered")
		detail = fmt.Sprintf("in %s", layout.FormatClock(int(ans.TimeSpent.Seconds())))
		if score, ok := s.scores[qid]; ok {
			detail = fmt.Sprintf("%s   score %d/100", detail, score.Value)
		} else if s.scorer != nil && s.scorer.StatusFor(qid) == scoring.StatusPending {
			detail += "   scoring..."
		}
	case s.engine.Skipped(qid):
		status = theme.SkippedMark.Render("skipped")
		style = style.Foreground(theme.TextDim)
	default:
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Render("unanswered")
		style = style.Foreground(theme.TextDim)
	}

	line := fmt.Sprintf("  %d. %s    %s", index+1, title, status)
	if detail != "" {
		line += "    " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)
	}

	out := lipgloss.PlaceHorizontal(width, lipgloss.Left, style.Render(line)) + "\n"

	if score, ok := s.scores[qid]; ok && score.Feedback != "" {
		fb := score.Feedback
		if len(fb) > width-10 && width > 13 {
			fb = fb[:width-13] + "..."
		}
		out += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			PaddingLeft(6).
			Render(fb) + "\n"
	}
	return out
}

// scorePollCmd checks for finished scores twice a second.
func scorePollCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return scorePollMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
