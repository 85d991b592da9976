package ui

import (
	"slices"
	"testing"
)

func TestNewThemeProvider_Default(t *testing.T) {
	tp := NewThemeProvider("")

	if tp == nil {
		t.Fatal("expected non-nil ThemeProvider")
	}
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected default theme %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestNewThemeProvider_WithTheme(t *testing.T) {
	tp := NewThemeProvider("nord")

	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestNewThemeProvider_InvalidTheme(t *testing.T) {
	tp := NewThemeProvider("nonexistent-theme-xyz")

	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected fallback to %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Error("expected SetTheme to return true for valid theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}

	if tp.SetTheme("nonexistent-theme-xyz") {
		t.Error("expected SetTheme to return false for invalid theme")
	}
	if tp.CurrentName() != "nord" {
		t.Error("theme should not change after invalid SetTheme")
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")

	themes := tp.AvailableThemes()
	if len(themes) == 0 {
		t.Fatal("expected at least one available theme")
	}
	if !slices.IsSorted(themes) {
		t.Error("expected themes to be sorted")
	}
	if !slices.Contains(themes, "dracula") {
		t.Error("expected 'dracula' in available themes")
	}
}

func TestThemeProvider_Styles(t *testing.T) {
	tp := NewThemeProvider("dracula")

	styles := tp.Styles()
	if styles.App.GetPaddingTop() == 0 && styles.App.GetPaddingBottom() == 0 {
		t.Error("expected App style to have padding")
	}
}

