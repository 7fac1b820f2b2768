package todocore

import (
	"errors"
	"testing"

	"github.com/opd-ai/todocore/limits"
)

func TestNewDefaults(t *testing.T) {
	app, err := New(nil)
	if err != nil {
		t.Fatalf("Failed to create App: %v", err)
	}
	defer app.Kill()

	count, err := app.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected count 0 on fresh App, got %d", count)
	}
}

// TestAppRoundTrip covers the canonical three-entry scenario: adds come
// back by index in insertion order, and the first out-of-range index is
// exactly Count().
func TestAppRoundTrip(t *testing.T) {
	app, err := New(NewOptions())
	if err != nil {
		t.Fatalf("Failed to create App: %v", err)
	}
	defer app.Kill()

	entries := []struct {
		id   int32
		note string
	}{
		{1, "buy milk"},
		{2, "write report"},
		{3, "call a friend"},
	}

	for _, e := range entries {
		if err := app.Add(e.id, e.note); err != nil {
			t.Fatalf("Add(%d, %q) failed: %v", e.id, e.note, err)
		}
	}

	count, err := app.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("Expected count 3, got %d", count)
	}

	id, err := app.IDAt(1)
	if err != nil || id != 2 {
		t.Errorf("IDAt(1) = %d, %v; want 2, nil", id, err)
	}
	note, err := app.NoteAt(1)
	if err != nil || note != "write report" {
		t.Errorf("NoteAt(1) = %q, %v; want \"write report\", nil", note, err)
	}

	if _, err := app.NoteAt(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("NoteAt(3) = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := app.IDAt(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("IDAt(3) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestAppRejectsTerminatorNote(t *testing.T) {
	app, err := New(nil)
	if err != nil {
		t.Fatalf("Failed to create App: %v", err)
	}
	defer app.Kill()

	if err := app.Add(1, "embedded\x00nul"); !errors.Is(err, limits.ErrNoteTerminator) {
		t.Fatalf("Add with NUL = %v, want ErrNoteTerminator", err)
	}

	count, err := app.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Failed add must leave the store unchanged, count = %d", count)
	}
}

func TestAppKillTombstone(t *testing.T) {
	app, err := New(nil)
	if err != nil {
		t.Fatalf("Failed to create App: %v", err)
	}
	if err := app.Add(1, "short lived"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	app.Kill()

	// Every operation after Kill reports the tombstone
	if err := app.Add(2, "late"); !errors.Is(err, ErrAppKilled) {
		t.Errorf("Add after Kill = %v, want ErrAppKilled", err)
	}
	if _, err := app.Count(); !errors.Is(err, ErrAppKilled) {
		t.Errorf("Count after Kill = %v, want ErrAppKilled", err)
	}
	if _, err := app.IDAt(0); !errors.Is(err, ErrAppKilled) {
		t.Errorf("IDAt after Kill = %v, want ErrAppKilled", err)
	}
	if _, err := app.NoteAt(0); !errors.Is(err, ErrAppKilled) {
		t.Errorf("NoteAt after Kill = %v, want ErrAppKilled", err)
	}

	// Second Kill is a no-op
	app.Kill()
}

func TestAppIsolation(t *testing.T) {
	first, err := New(nil)
	if err != nil {
		t.Fatalf("Failed to create first App: %v", err)
	}
	defer first.Kill()

	second, err := New(nil)
	if err != nil {
		t.Fatalf("Failed to create second App: %v", err)
	}

	if err := first.Add(1, "mine"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := second.Add(2, "yours"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Killing one App never disturbs another
	second.Kill()

	count, err := first.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1 on surviving App, got %d", count)
	}
	note, err := first.NoteAt(0)
	if err != nil || note != "mine" {
		t.Errorf("NoteAt(0) = %q, %v; want \"mine\", nil", note, err)
	}
}
