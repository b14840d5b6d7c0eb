package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is one prompt in a formFrame. A blank validate accepts anything;
// otherwise it returns the message to show above the field until the input
// parses.
type field struct {
	prompt   string
	input    textinput.Model
	validate func(value string) string
}

func newField(prompt, placeholder string, validate func(string) string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	return field{prompt: prompt, input: ti, validate: validate}
}

// formFrame collects its fields in sequence: enter advances, esc aborts the
// whole form. When the last field is accepted the frame pops itself and
// hands the collected values to onSubmit, which may push further frames.
type formFrame struct {
	title    string
	fields   []field
	current  int
	errMsg   string
	onSubmit func(m *Model, values []string) tea.Cmd
}

func newForm(title string, fields []field, onSubmit func(m *Model, values []string) tea.Cmd) *formFrame {
	f := &formFrame{title: title, fields: fields, onSubmit: onSubmit}
	f.fields[0].input.Focus()
	return f
}

func (f *formFrame) update(m *Model, key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.pop()
		return nil
	case "enter":
		value := f.fields[f.current].input.Value()
		if validate := f.fields[f.current].validate; validate != nil {
			if msg := validate(value); msg != "" {
				f.errMsg = msg
				f.fields[f.current].input.SetValue("")
				return nil
			}
		}
		f.errMsg = ""
		if f.current+1 < len(f.fields) {
			f.fields[f.current].input.Blur()
			f.current++
			f.fields[f.current].input.Focus()
			return nil
		}
		values := make([]string, len(f.fields))
		for i := range f.fields {
			values[i] = f.fields[i].input.Value()
		}
		m.pop()
		return f.onSubmit(m, values)
	}

	var cmd tea.Cmd
	f.fields[f.current].input, cmd = f.fields[f.current].input.Update(key)
	return cmd
}

func (f *formFrame) view(m *Model) string {
	var b strings.Builder
	if f.title != "" {
		b.WriteString(titleStyle.Render(f.title))
		b.WriteString("\n\n")
	}
	for i := 0; i <= f.current; i++ {
		b.WriteString(f.fields[i].prompt)
		b.WriteString("\n")
		if i == f.current && f.errMsg != "" {
			b.WriteString(errorStyle.Render(f.errMsg))
			b.WriteString("\n")
		}
		b.WriteString(f.fields[i].input.View())
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("\nEnter confirms each field. Esc cancels."))
	b.WriteString("\n")
	return b.String()
}
