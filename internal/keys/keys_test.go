package keys

import "testing"

func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},
		{"Enter", Enter, "enter"},
		{"ShiftEnter", ShiftEnter, "shift+enter"},
		{"AltEnter", AltEnter, "alt+enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Escape", Escape, "esc"},
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlN", CtrlN, "ctrl+n"},
		{"CtrlO", CtrlO, "ctrl+o"},
		{"CtrlP", CtrlP, "ctrl+p"},
		{"CtrlR", CtrlR, "ctrl+r"},
		{"CtrlY", CtrlY, "ctrl+y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}
