package limits

import (
	"errors"
	"strings"
	"testing"
)

// TestValidateNoteAcceptsPlainText verifies ordinary notes pass validation
func TestValidateNoteAcceptsPlainText(t *testing.T) {
	valid := []string{
		"",
		"buy milk",
		"unicode: héllo wörld 日本語",
		strings.Repeat("x", MaxNoteLength),
	}

	for _, note := range valid {
		if err := ValidateNote(note); err != nil {
			t.Errorf("ValidateNote(%q...) = %v, want nil", truncate(note), err)
		}
	}
}

// TestValidateNoteRejectsTerminator verifies embedded NUL bytes are rejected
// regardless of position
func TestValidateNoteRejectsTerminator(t *testing.T) {
	invalid := []string{
		"\x00",
		"\x00leading",
		"mid\x00dle",
		"trailing\x00",
	}

	for _, note := range invalid {
		err := ValidateNote(note)
		if !errors.Is(err, ErrNoteTerminator) {
			t.Errorf("ValidateNote(%q) = %v, want ErrNoteTerminator", note, err)
		}
	}
}

// TestValidateNoteRejectsOversize verifies the MaxNoteLength guard
func TestValidateNoteRejectsOversize(t *testing.T) {
	note := strings.Repeat("a", MaxNoteLength+1)

	err := ValidateNote(note)
	if !errors.Is(err, ErrNoteTooLarge) {
		t.Errorf("ValidateNote(oversize) = %v, want ErrNoteTooLarge", err)
	}
}

func truncate(s string) string {
	if len(s) > 16 {
		return s[:16]
	}
	return s
}
