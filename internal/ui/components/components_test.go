package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_Letter(t *testing.T) {
	mc := NewMultiChoice([]string{"<", ">", "="}, ">")
	if mc.CorrectIndex != 1 {
		t.Fatalf("CorrectIndex = %d, want 1", mc.CorrectIndex)
	}

	mc, _ = mc.Update(key('b'))
	if !mc.Submitted || mc.Chosen() != ">" {
		t.Fatalf("after 'b': submitted=%v chosen=%q", mc.Submitted, mc.Chosen())
	}
	if !mc.IsCorrect() {
		t.Error("expected correct")
	}

	// Further keys are ignored once submitted.
	mc, _ = mc.Update(key('a'))
	if mc.Chosen() != ">" {
		t.Errorf("chosen changed to %q after submission", mc.Chosen())
	}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice([]string{"10", "20", "30"}, "30")
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if mc.Selected != 2 {
		t.Fatalf("Selected = %d, want 2", mc.Selected)
	}
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !mc.IsCorrect() {
		t.Error("expected correct after choosing the last option")
	}
}

func TestMultiChoice_OutOfRangeKey(t *testing.T) {
	mc := NewMultiChoice([]string{"A", "B"}, "A")
	mc, _ = mc.Update(key('4'))
	if mc.Submitted {
		t.Error("'4' should not select with two options")
	}
}

func TestMenu_SkipsHeaders(t *testing.T) {
	var picked string
	items := []MenuItem{
		{Label: "Year 3", Header: true},
		{Label: "Perimeter", Action: func() tea.Cmd { picked = "Perimeter"; return nil }},
		{Label: "Year 4", Header: true},
		{Label: "Money", Action: func() tea.Cmd { picked = "Money"; return nil }},
	}
	m := NewMenu(items)
	if m.Selected != 1 {
		t.Fatalf("initial Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if picked != "Perimeter" {
		t.Errorf("picked = %q, want Perimeter", picked)
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("answer", true, 10)
	ti, _ = ti.Update(key('x'))
	if ti.Value() != "" {
		t.Errorf("Value = %q, want letters rejected", ti.Value())
	}

	ti.Model.SetValue(" £2.50 ")
	if ti.Value() != "£2.50" {
		t.Errorf("Value = %q, want trimmed", ti.Value())
	}
}

func TestQuestionTrack(t *testing.T) {
	tests := []struct {
		results []bool
		total   int
		want    float64
	}{
		{nil, 10, 0},
		{[]bool{true, false, true}, 10, 0.3},
		{[]bool{true, true}, 2, 1},
		{[]bool{true}, 0, 0},
	}
	for _, tc := range tests {
		tr := NewQuestionTrack("Q", tc.results, tc.total, 40)
		if got := tr.Fraction(); got != tc.want {
			t.Errorf("Fraction(%v/%d) = %v, want %v", tc.results, tc.total, got, tc.want)
		}
		if tr.View() == "" {
			t.Errorf("empty view for %v/%d", tc.results, tc.total)
		}
	}
}

func TestQuestionTrack_CellWidth(t *testing.T) {
	if w := NewQuestionTrack("", nil, 10, 100).cellWidth(); w != 4 {
		t.Errorf("wide track cell = %d, want 4", w)
	}
	if w := NewQuestionTrack("", nil, 10, 5).cellWidth(); w != 1 {
		t.Errorf("narrow track cell = %d, want 1", w)
	}
}
