package components

import (
	"github.com/abhisek/ks2maths/internal/ui/theme"
)

// Button is a labelled action with its shortcut key.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// NewButton creates a button.
func NewButton(label, key string, active bool) Button {
	return Button{Label: label, Key: key, Active: active}
}

// View renders the button, e.g. "[P] Practise again".
func (b Button) View() string {
	label := "[" + b.Key + "] " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
