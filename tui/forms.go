package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// form is a vertical stack of text inputs with one focused field.
// Submission is signalled by pressing enter on the last field.
type form struct {
	title  string
	fields []formField
	focus  int
}

type formField struct {
	label string
	input textinput.Model
}

func newField(label, placeholder string, secret bool) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	if secret {
		in.EchoMode = textinput.EchoPassword
	}
	return formField{label: label, input: in}
}

func newForm(title string, fields ...formField) *form {
	f := &form{title: title, fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

// update routes key input to the focused field. It reports submitted=true
// when enter is pressed on the last field.
func (f *form) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		if f.focus == len(f.fields)-1 {
			return nil, true
		}
		f.setFocus(f.focus + 1)
		return nil, false
	case tea.KeyTab, tea.KeyDown:
		f.setFocus(f.focus + 1)
		return nil, false
	case tea.KeyShiftTab, tea.KeyUp:
		f.setFocus(f.focus - 1)
		return nil, false
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd, false
}

func (f *form) setFocus(i int) {
	if len(f.fields) == 0 {
		return
	}
	if i < 0 {
		i = len(f.fields) - 1
	}
	if i >= len(f.fields) {
		i = 0
	}
	f.fields[f.focus].input.Blur()
	f.focus = i
	f.fields[f.focus].input.Focus()
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(f.title))
	b.WriteString("\n\n")
	for i, field := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker + field.label + ": " + field.input.View() + "\n")
	}
	b.WriteString("\n" + hint("enter next/submit • tab move • esc back"))
	return b.String()
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

// Numeric coercion mirrors the loose client-side handling the backend
// expects: malformed input becomes the zero value and the server stays
// authoritative for business-rule validation.
func (f *form) intValue(i int) int {
	n, _ := strconv.Atoi(f.value(i))
	return n
}

func (f *form) int64Value(i int) int64 {
	n, _ := strconv.ParseInt(f.value(i), 10, 64)
	return n
}

func (f *form) floatValue(i int) float64 {
	n, _ := strconv.ParseFloat(f.value(i), 64)
	return n
}

func (f *form) listValue(i int) []string {
	var out []string
	for _, part := range strings.Split(f.value(i), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
