package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// frame is one screen on the navigation stack.
type frame interface {
	update(m *Model, key tea.KeyMsg) tea.Cmd
	view(m *Model) string
}

// menuItem is one selectable row. For data-selection lists the label is an
// id-prefixed table row; the action closes over the record's id.
type menuItem struct {
	label  string
	action func(m *Model) tea.Cmd
}

// menuFrame renders a vertical option list with a wrap-around cursor.
// Confirm runs the highlighted item's action; esc pops one level when the
// frame allows back.
type menuFrame struct {
	title     string
	header    []string
	items     []menuItem
	cursor    int
	allowBack bool
}

func (f *menuFrame) update(m *Model, key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "down", "j":
		f.cursor = (f.cursor + 1) % len(f.items)
	case "up", "k":
		f.cursor = (f.cursor - 1 + len(f.items)) % len(f.items)
	case "enter":
		return f.items[f.cursor].action(m)
	case "esc":
		if f.allowBack {
			m.pop()
		}
	}
	return nil
}

func (f *menuFrame) view(m *Model) string {
	var b strings.Builder
	if f.title != "" {
		b.WriteString(titleStyle.Render(f.title))
		b.WriteString("\n\n")
	}
	for _, line := range f.header {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i, item := range f.items {
		if i == f.cursor {
			b.WriteString(selectedStyle.Render(selectedMarker + item.label))
		} else {
			b.WriteString("  " + item.label)
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render(menuHint(f.allowBack)))
	b.WriteString("\n")
	return b.String()
}

func menuHint(allowBack bool) string {
	hint := "\nUse ↑ and ↓ to navigate and Enter to select."
	if allowBack {
		hint += " Esc goes back."
	}
	return hint
}

// noticeFrame shows a message and waits for a key. Dismissing pops the
// frame and then runs onDismiss, which may rearrange the stack (for
// example, reopening the user-setup menu after the active user is gone).
type noticeFrame struct {
	lines     []string
	onDismiss func(m *Model) tea.Cmd
}

func notice(lines ...string) *noticeFrame {
	return &noticeFrame{lines: lines}
}

func (f *noticeFrame) update(m *Model, key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter", "esc", " ":
		m.pop()
		if f.onDismiss != nil {
			return f.onDismiss(m)
		}
	}
	return nil
}

func (f *noticeFrame) view(m *Model) string {
	var b strings.Builder
	for _, line := range f.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("\nPress Enter to return to the menu..."))
	b.WriteString("\n")
	return b.String()
}

// confirmFrame asks a yes/no question. Yes pops and runs onYes; no or esc
// pops and shows the cancellation notice.
type confirmFrame struct {
	question string
	onYes    func(m *Model) tea.Cmd
}

func (f *confirmFrame) update(m *Model, key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "y", "Y":
		m.pop()
		return f.onYes(m)
	case "n", "N", "esc":
		m.pop()
		m.push(notice("Deletion canceled."))
	}
	return nil
}

func (f *confirmFrame) view(m *Model) string {
	return f.question + " (Y/N)\n"
}
