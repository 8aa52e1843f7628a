package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeString(t TextInput, s string) TextInput {
	for _, r := range s {
		t, _ = t.Update(keyPress(r))
	}
	return t
}

func TestMenu_NavigationSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A"},
		{Label: "B", Disabled: true},
		{Label: "C"},
	})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_EnterAndShortcut(t *testing.T) {
	var fired []string
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			fired = append(fired, name)
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Add", Shortcut: "1", Action: action("add")},
		{Label: "List", Shortcut: "2", Action: action("list")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = m.Update(keyPress('2'))

	if len(fired) != 2 || fired[0] != "add" || fired[1] != "list" {
		t.Errorf("fired = %v, want [add list]", fired)
	}
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1 after shortcut", m.Selected)
	}
	if !strings.Contains(m.View(), "(2) List") {
		t.Errorf("view missing shortcut label: %q", m.View())
	}
}

func TestTextInput_RejectsCharacters(t *testing.T) {
	in := NewTokenInput("word", "%$ ", 0)
	in = typeString(in, "ca%t$")
	in, _ = in.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	in = typeString(in, "s")

	if got := in.Value(); got != "cats" {
		t.Errorf("Value = %q, want %q", got, "cats")
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	in := NewTextInput("position", true, 4)
	in = typeString(in, "1a2")
	n, err := in.NumericValue()
	if err != nil || n != 12 {
		t.Errorf("NumericValue = %d, %v, want 12", n, err)
	}
}

func TestTextInput_Reset(t *testing.T) {
	in := NewTextInput("x", false, 0)
	in = typeString(in, "abc")
	in.Submit(true)
	in.Reset()
	if in.Value() != "" {
		t.Errorf("Value after Reset = %q", in.Value())
	}
	if strings.Contains(in.View(), "✓") {
		t.Error("submitted mark should be cleared by Reset")
	}
}

func TestExperienceBar(t *testing.T) {
	bar := ExperienceBar(3, 50, 100, 40)
	if !strings.Contains(bar, "Lv 3") || !strings.Contains(bar, "50%") {
		t.Errorf("bar = %q", bar)
	}
}
