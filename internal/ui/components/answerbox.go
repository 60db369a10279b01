package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// AnswerBox wraps bubbles/textarea for composing multi-line answers.
type AnswerBox struct {
	Model textarea.Model
}

// NewAnswerBox creates a focused answer area with the given placeholder.
func NewAnswerBox(placeholder string, width, height int) AnswerBox {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()
	return AnswerBox{Model: ta}
}

// Init returns the initial command.
func (a AnswerBox) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerBox) Update(msg tea.Msg) (AnswerBox, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the answer area.
func (a AnswerBox) View() string {
	return a.Model.View()
}

// Value returns the current text.
func (a AnswerBox) Value() string {
	return a.Model.Value()
}

// SetValue replaces the current text, placing the cursor at the end.
func (a *AnswerBox) SetValue(text string) {
	a.Model.SetValue(text)
}

// Resize adjusts the box to the available area.
func (a *AnswerBox) Resize(width, height int) {
	a.Model.SetWidth(width)
	a.Model.SetHeight(height)
}
