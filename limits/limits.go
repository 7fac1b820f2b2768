// Package limits provides centralized note size and encoding limits for todocore.
// This ensures consistent validation across the Go API, the flat C boundary,
// and the cgo bindings.
package limits

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxNoteLength is the maximum byte length of a single note (1MB limit).
	// This prevents memory exhaustion through the boundary layer, which must
	// heap-allocate an independent copy of the note for every retrieval.
	MaxNoteLength = 1024 * 1024

	// Terminator is the byte that delimits note text on the C side.
	// Notes cross the boundary as NUL-terminated byte sequences, so the
	// terminator can never appear inside a note.
	Terminator = byte(0)
)

var (
	// ErrNoteTerminator indicates the note contains an embedded NUL byte
	// and cannot be represented under the terminator convention
	ErrNoteTerminator = errors.New("note contains terminator byte")

	// ErrNoteTooLarge indicates the note exceeds MaxNoteLength
	ErrNoteTooLarge = errors.New("note too large")
)

// ValidateNote validates a note for transfer across the C boundary.
// Empty notes are legal. Returns an error with context if the note embeds
// the terminator byte or exceeds MaxNoteLength.
func ValidateNote(note string) error {
	if strings.IndexByte(note, Terminator) >= 0 {
		return fmt.Errorf("%w: NUL at byte %d", ErrNoteTerminator, strings.IndexByte(note, Terminator))
	}
	if len(note) > MaxNoteLength {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrNoteTooLarge, len(note), MaxNoteLength)
	}
	return nil
}
