package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormSubmitsOnLastField(t *testing.T) {
	f := newForm("Test", newField("One", "", false), newField("Two", "", false))

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	if _, submitted := f.update(enter); submitted {
		t.Fatal("enter on first field must advance, not submit")
	}
	if f.focus != 1 {
		t.Fatalf("focus = %d, want 1", f.focus)
	}
	if _, submitted := f.update(enter); !submitted {
		t.Fatal("enter on last field must submit")
	}
}

func TestFormFocusWraps(t *testing.T) {
	f := newForm("Test", newField("One", "", false), newField("Two", "", false))

	f.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.focus != 1 {
		t.Errorf("shift+tab from first field: focus = %d, want 1", f.focus)
	}
	f.update(tea.KeyMsg{Type: tea.KeyTab})
	if f.focus != 0 {
		t.Errorf("tab from last field: focus = %d, want 0", f.focus)
	}
}

func TestFormValueParsing(t *testing.T) {
	f := newForm("Test",
		newField("Text", "", false),
		newField("Int", "", false),
		newField("Float", "", false),
		newField("List", "", false),
	)
	f.fields[0].input.SetValue("  hello  ")
	f.fields[1].input.SetValue("42")
	f.fields[2].input.SetValue("249.50")
	f.fields[3].input.SetValue("A. Rao, J. Kim , ")

	if got := f.value(0); got != "hello" {
		t.Errorf("value = %q", got)
	}
	if got := f.intValue(1); got != 42 {
		t.Errorf("intValue = %d", got)
	}
	if got := f.floatValue(2); got != 249.5 {
		t.Errorf("floatValue = %v", got)
	}
	if got := f.listValue(3); !reflect.DeepEqual(got, []string{"A. Rao", "J. Kim"}) {
		t.Errorf("listValue = %v", got)
	}
}

func TestFormMalformedNumbersBecomeZero(t *testing.T) {
	f := newForm("Test", newField("Int", "", false))
	f.fields[0].input.SetValue("not a number")

	if got := f.intValue(0); got != 0 {
		t.Errorf("intValue = %d, want 0", got)
	}
	if got := f.int64Value(0); got != 0 {
		t.Errorf("int64Value = %d, want 0", got)
	}
	if got := f.floatValue(0); got != 0 {
		t.Errorf("floatValue = %v, want 0", got)
	}
}
