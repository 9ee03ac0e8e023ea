package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func tempDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestBrowserFileSelectionReturnsMessage(t *testing.T) {
	dir := tempDir(t, map[string]string{"tone.wav": "data"})
	m := NewBrowser(dir)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(BrowserModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}
	selected, ok := cmd().(BrowserSelectedMsg)
	if !ok {
		t.Fatalf("expected BrowserSelectedMsg, got %T", cmd())
	}
	if want := filepath.Join(dir, "tone.wav"); selected.Path != want {
		t.Fatalf("expected %s, got %q", want, selected.Path)
	}
}

func TestBrowserPathEntryReturnsMessage(t *testing.T) {
	m := NewBrowser(tempDir(t, nil))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(BrowserModel)
	if !m.pathMode {
		t.Fatal("expected path mode")
	}
	m.input.SetValue("  capture.s16  ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected path selection command")
	}
	selected, ok := cmd().(BrowserSelectedMsg)
	if !ok || selected.Path != "capture.s16" {
		t.Fatalf("unexpected message %#v", cmd())
	}
}

func TestBrowserPathEntryEscReturnsToList(t *testing.T) {
	m := NewBrowser(tempDir(t, nil))
	m.pathMode = true

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.(BrowserModel).pathMode {
		t.Fatal("expected list mode after esc")
	}
}

func TestBrowserCancelReturnsMessage(t *testing.T) {
	m := NewBrowser(tempDir(t, nil))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(BrowserCancelledMsg); !ok {
		t.Fatalf("expected BrowserCancelledMsg, got %T", cmd())
	}
}

func TestBrowserListsOnlyViewableFiles(t *testing.T) {
	dir := tempDir(t, map[string]string{
		"take.flac":   "data",
		"capture.raw": "data",
		"notes.txt":   "data",
	})
	m := NewBrowser(dir)

	names := map[string]bool{}
	for _, item := range m.list.Items() {
		if file, ok := item.(fileItem); ok {
			names[file.name+file.ext] = true
		}
	}
	if !names["take.flac"] || !names["capture.raw"] {
		t.Fatalf("missing viewable files: %v", names)
	}
	if names["notes.txt"] {
		t.Fatal("unexpected notes.txt in browser")
	}
}

func TestBrowserMissingDirectory(t *testing.T) {
	m := NewBrowser(filepath.Join(t.TempDir(), "missing"))
	if !m.HasError() || m.Error() == nil {
		t.Fatal("expected error for missing directory")
	}
}
