package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"prepkit/internal/question"
	sess "prepkit/internal/session"
	"prepkit/internal/ui/components"
	"prepkit/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.engine == nil || s.engine.Status() == sess.StatusNotStarted {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing session...")
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.engine.Status() == sess.StatusPaused {
		return renderPaused(width)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) renderQuestionView(width, height int) string {
	q := s.engine.Current()
	m := s.engine.Metrics()

	var b strings.Builder

	// Progress line: position, type, answered count.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.engine.Cursor()+1, s.engine.Len()))

	marker := ""
	if _, ok := s.engine.Answer(q.ID); ok {
		marker = theme.Answered.Render("  answered")
	} else if s.engine.Skipped(q.ID) {
		marker = theme.SkippedMark.Render("  skipped")
	}

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  %d answered", question.TypeDisplayName(q.Type), m.QuestionsAnswered))

	infoLine := infoLeft + marker
	rightPad := width - lipgloss.Width(infoLine) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width - 4).
		PaddingLeft(2).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	// Revealed hints.
	for i, text := range s.shownHints[q.ID] {
		b.WriteString(theme.Hint.PaddingLeft(2).Render(fmt.Sprintf("Hint %d: %s", i+1, text)))
		b.WriteString("\n")
	}
	if s.hintPending {
		b.WriteString(theme.Hint.PaddingLeft(2).Render("Thinking of a hint..."))
		b.WriteString("\n")
	}
	if len(s.shownHints[q.ID]) > 0 || s.hintPending {
		b.WriteString("\n")
	}

	// Answer area.
	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.input.Resize(inputWidth, answerHeight(height))
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.input.View()))
	b.WriteString("\n")

	// Session progress bar.
	if s.engine.Len() > 0 {
		bar := components.ProgressBar{
			Label:   "  Progress",
			Percent: float64(m.QuestionsAnswered) / float64(s.engine.Len()),
			Width:   width - 6,
		}
		b.WriteString("\n" + bar.View() + "\n")
	}

	if s.notice != "" {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(theme.Warning).
			PaddingLeft(2).
			Render(s.notice))
	}

	return b.String()
}

// answerHeight sizes the answer box to the space left after the prompt and
// chrome.
func answerHeight(total int) int {
	h := total - 14
	if h < 4 {
		return 4
	}
	if h > 16 {
		return 16
	}
	return h
}

func renderPaused(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Session paused\n\n  The clock is stopped. Press Ctrl+P to resume.")
}

func renderQuitConfirm(width int) string {
	content := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End this session?") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Unanswered questions stay unanswered.\nDrafts are saved.") +
			"\n\n" +
			theme.Selected.Render("[Y]es") + "   " + theme.Unselected.Render("[N]o"))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(3).
		Render(content)
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n  Something went wrong:\n\n  %s\n\n  Press any key to go back.", msg))
}
