package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeLexiconFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write lexicon file: %v", err)
	}
}

func TestStatic_Current(t *testing.T) {
	lex := Default()
	p := Static{Lexicon: lex}
	if p.Current() != lex {
		t.Error("expected Static to return the fixed lexicon")
	}
}

func TestNewWatcher_InitialLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	writeLexiconFile(t, path, sampleYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := NewWatcher(ctx, path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if got := len(w.Current().Entries()); got != 3 {
		t.Errorf("expected 3 entries, got %d", got)
	}
}

func TestNewWatcher_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := NewWatcher(context.Background(), path, nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatcher_ReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	writeLexiconFile(t, path, sampleYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(ctx, path, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	writeLexiconFile(t, path, sampleYAML+`  - canonical: "खांसी"
    category: symptom
`)

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if got := len(w.Current().Entries()); got != 4 {
		t.Errorf("expected 4 entries after reload, got %d", got)
	}
}

func TestWatcher_KeepsSnapshotOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	writeLexiconFile(t, path, sampleYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := NewWatcher(ctx, path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	before := w.Current()
	writeLexiconFile(t, path, "entries: [")

	// give the watcher a moment to observe the bad write
	time.Sleep(300 * time.Millisecond)

	if w.Current() != before && len(w.Current().Entries()) != len(before.Entries()) {
		t.Error("expected previous snapshot to survive a bad reload")
	}
}
