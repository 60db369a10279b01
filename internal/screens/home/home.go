package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"prepkit/internal/hints"
	"prepkit/internal/question"
	"prepkit/internal/router"
	"prepkit/internal/scoring"
	"prepkit/internal/screen"
	sessionscreen "prepkit/internal/screens/session"
	sess "prepkit/internal/session"
	"prepkit/internal/store"
	"prepkit/internal/ui/components"
	"prepkit/internal/ui/layout"
	"prepkit/internal/ui/theme"
)

// Deps are the long-lived services the home screen hands to each session.
type Deps struct {
	Bank      *question.Bank
	EventRepo store.EventRepo
	DraftRepo store.DraftRepo
	Scorer    *scoring.Service
	HintText  *hints.ContentService

	// FallbackHintLevels is forwarded to each session's engine.
	FallbackHintLevels int
}

// HomeScreen is the mode-selection entry screen.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	summary store.Summary
	haveSum bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen and loads the all-time stats line.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	if deps.EventRepo != nil {
		if sum, err := deps.EventRepo.Summary(context.Background()); err == nil {
			h.summary = sum
			h.haveSum = true
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "Practice",
			Detail: "Untimed, hints on, revise answers freely",
			Action: h.startSession(sess.ModePractice),
		},
		{
			Label:  "Assessment",
			Detail: "30 minutes, no hints, one shot per question",
			Action: h.startSession(sess.ModeAssessment),
		},
		{
			Label:  "Mock Interview",
			Detail: "45 minutes, earned hints, auto-submits at the bell",
			Action: h.startSession(sess.ModeMockInterview),
		},
	})

	return h
}

// startSession builds a fresh engine and pushes the session screen.
func (h *HomeScreen) startSession(mode sess.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		engine := sess.New(sess.Options{
			Events:             h.deps.EventRepo,
			Drafts:             h.deps.DraftRepo,
			FallbackHintLevels: h.deps.FallbackHintLevels,
		})
		s := sessionscreen.New(sessionscreen.Deps{
			Engine:   engine,
			Mode:     mode,
			Settings: sess.DefaultSettings(mode),
			Bank:     h.deps.Bank,
			Scorer:   h.deps.Scorer,
			HintText: h.deps.HintText,
		})
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: s}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Interview practice, one question at a time"))
	b.WriteString("\n")

	if h.haveSum && h.summary.SessionsCompleted > 0 {
		stats := fmt.Sprintf("%d sessions   %d answers   %s practiced",
			h.summary.SessionsCompleted,
			h.summary.AnswersSubmitted,
			layout.FormatClock(h.summary.TotalPracticeSecs))
		if h.summary.AverageScore > 0 {
			stats += fmt.Sprintf("   avg score %.0f", h.summary.AverageScore)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(stats))
	}
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions loaded", h.deps.Bank.Len())))

	return b.String()
}
