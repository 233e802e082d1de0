package topics

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ks2maths/internal/curriculum"
)

func testTopics() []curriculum.Topic {
	return []curriculum.Topic{
		{ID: "M07_Y3_MEAS", Name: "Perimeter", Year: 3},
		{ID: "M01_Y4_MEAS", Name: "Money", Year: 4, Description: "Compare amounts of money."},
		{ID: "M06_Y4_MEAS", Name: "Converting units", Year: 4},
	}
}

func TestScreen_FirstTopicSelected(t *testing.T) {
	s := New(testTopics())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(SelectedMsg)
	if !ok {
		t.Fatalf("got %T, want SelectedMsg", cmd())
	}
	if msg.Topic.ID != "M07_Y3_MEAS" || msg.Level != 1 {
		t.Errorf("selected %s level %d", msg.Topic.ID, msg.Level)
	}
}

func TestScreen_LevelKeys(t *testing.T) {
	tests := []struct {
		keys []tea.KeyPressMsg
		want int
	}{
		{[]tea.KeyPressMsg{{Code: tea.KeyRight}}, 2},
		{[]tea.KeyPressMsg{{Code: tea.KeyLeft}}, 1},
		{[]tea.KeyPressMsg{{Code: '4', Text: "4"}}, 4},
		{[]tea.KeyPressMsg{{Code: '4', Text: "4"}, {Code: tea.KeyRight}}, 4},
		{[]tea.KeyPressMsg{{Code: '3', Text: "3"}, {Code: tea.KeyLeft}}, 2},
	}
	for _, tc := range tests {
		s := New(testTopics())
		for _, k := range tc.keys {
			s.Update(k)
		}
		if s.Level() != tc.want {
			t.Errorf("keys %v: level = %d, want %d", tc.keys, s.Level(), tc.want)
		}
	}
}

func TestScreen_LevelAppliesAtPress(t *testing.T) {
	s := New(testTopics())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	msg := cmd().(SelectedMsg)
	if msg.Topic.ID != "M01_Y4_MEAS" || msg.Level != 3 {
		t.Errorf("selected %s level %d, want M01_Y4_MEAS level 3", msg.Topic.ID, msg.Level)
	}
}

func TestScreen_View(t *testing.T) {
	s := New(testTopics())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	view := s.View(80, 20)
	for _, want := range []string{"Year 3", "Year 4", "Perimeter", "Money", "Compare amounts of money."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScreen_Empty(t *testing.T) {
	view := New(nil).View(80, 20)
	if !strings.Contains(view, "No topics") {
		t.Errorf("unexpected empty view: %q", view)
	}
}

func TestScreen_HistoryKey(t *testing.T) {
	s := New(testTopics())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on r")
	}
	if _, ok := cmd().(HistoryMsg); !ok {
		t.Errorf("got %T, want HistoryMsg", cmd())
	}
}
