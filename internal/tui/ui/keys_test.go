package ui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", keys.Up},
		{"Down", keys.Down},
		{"NextTab", keys.NextTab},
		{"PrevTab", keys.PrevTab},
		{"Tab1", keys.Tab1},
		{"Tab2", keys.Tab2},
		{"Tab3", keys.Tab3},
		{"Tab4", keys.Tab4},
		{"Tab5", keys.Tab5},
		{"Select", keys.Select},
		{"Back", keys.Back},
		{"Quit", keys.Quit},
		{"Help", keys.Help},
		{"Refresh", keys.Refresh},
		{"Toggle", keys.Toggle},
		{"Save", keys.Save},
		{"Copy", keys.Copy},
		{"Theme", keys.Theme},
		{"Clear", keys.Clear},
		{"Confirm", keys.Confirm},
		{"Deny", keys.Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("expected keys for binding %s", tt.name)
			}
			help := tt.binding.Help()
			if help.Key == "" {
				t.Errorf("expected help key for binding %s", tt.name)
			}
			if help.Desc == "" {
				t.Errorf("expected help description for binding %s", tt.name)
			}
		})
	}
}

func TestKeyBindingsMatch(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"Quit q", keys.Quit, "q"},
		{"Quit ctrl+c", keys.Quit, "ctrl+c"},
		{"Up k", keys.Up, "k"},
		{"Up arrow", keys.Up, "up"},
		{"Down j", keys.Down, "j"},
		{"Down arrow", keys.Down, "down"},
		{"Select enter", keys.Select, "enter"},
		{"Back esc", keys.Back, "esc"},
		{"Help ?", keys.Help, "?"},
		{"Tab1 1", keys.Tab1, "1"},
		{"Tab5 5", keys.Tab5, "5"},
		{"NextTab tab", keys.NextTab, "tab"},
		{"Toggle space", keys.Toggle, " "},
		{"Save ctrl+s", keys.Save, "ctrl+s"},
		{"Copy c", keys.Copy, "c"},
		{"Theme t", keys.Theme, "t"},
		{"Clear x", keys.Clear, "x"},
		{"Confirm y", keys.Confirm, "y"},
		{"Deny n", keys.Deny, "n"},
		{"Deny esc", keys.Deny, "esc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Contains(tt.binding.Keys(), tt.key) {
				t.Errorf("expected binding %s to include key %q, got keys %v", tt.name, tt.key, tt.binding.Keys())
			}
		})
	}
}

func TestTabKeysAreDistinct(t *testing.T) {
	keys := DefaultKeyMap()
	seen := map[string]bool{}
	for _, b := range []key.Binding{keys.Tab1, keys.Tab2, keys.Tab3, keys.Tab4, keys.Tab5} {
		for _, k := range b.Keys() {
			if seen[k] {
				t.Errorf("key %q bound to more than one tab", k)
			}
			seen[k] = true
		}
	}
}
