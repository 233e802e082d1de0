package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tc := range tests {
		if got := IsTooSmall(tc.w, tc.h); got != tc.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Practice", "Q 3/10", 80)
	for _, want := range []string{"KS2 Maths", "Practice", "Q 3/10"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(24); got != 24-HeaderHeight-FooterHeight {
		t.Errorf("ContentHeight(24) = %d", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderFooter_DropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Hint"},
		{Key: "Esc", Description: "Quit practice"},
	}
	wide := RenderFooter(hints, 100)
	for _, h := range hints {
		if !strings.Contains(wide, h.Description) {
			t.Errorf("wide footer missing %q", h.Description)
		}
	}
	narrow := RenderFooter(hints, 24)
	if !strings.Contains(narrow, "Submit") || strings.Contains(narrow, "Quit practice") {
		t.Errorf("narrow footer should keep only the first hints:\n%s", narrow)
	}
}
