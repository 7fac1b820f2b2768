// Package handle implements the opaque-token table used by the todocore
// boundary layers.
//
// A Handle is a pointer-sized token that identifies one owned resource
// without exposing its layout. Every token carries a generation counter, so
// a slot recycled after Remove never validates a stale token: use-after-
// destroy and double-destroy surface as ErrInvalidHandle instead of
// undefined behavior.
//
// Example:
//
//	t := handle.NewTable()
//	h := t.Put(list)
//	v, err := t.Get(h)   // the live value
//	_, err = t.Remove(h) // consumes the token
//	_, err = t.Get(h)    // ErrInvalidHandle from here on
package handle

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrInvalidHandle indicates a zero, stale, or already-removed token
var ErrInvalidHandle = errors.New("invalid handle")

// Handle is an opaque token identifying one table entry. Handle 0 is
// reserved and always invalid. The low slotBits bits index the slot; the
// remaining bits hold the slot's generation at the time of Put.
type Handle uintptr

// The token splits the uintptr evenly between slot index and generation,
// so even 32-bit platforms keep 16 generation bits: a slot must be
// recycled 65536 times before a stale token could wrap back to a valid
// generation.
const (
	slotBits = bits.UintSize / 2
	slotMask = 1<<slotBits - 1
)

type entry struct {
	value      any
	generation uintptr
	live       bool
}

// Table is a mutex-guarded handle table. Distinct handles are safe to use
// concurrently from different goroutines; the lock protects table
// integrity, not the values it stores.
type Table struct {
	mu      sync.RWMutex
	entries []entry
	free    []uintptr
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		entries: make([]entry, 0, 16),
	}
}

// Put stores a value and returns its token. The table takes no ownership
// interest in the value beyond keeping it reachable until Remove.
func (t *Table) Put(value any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var slot uintptr
	if len(t.free) > 0 {
		slot = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.entries[slot].value = value
		t.entries[slot].live = true
	} else {
		slot = uintptr(len(t.entries))
		// Generation starts at 1 so no valid token is ever zero.
		t.entries = append(t.entries, entry{value: value, generation: 1, live: true})
	}

	h := Handle(t.entries[slot].generation<<slotBits | slot)

	logrus.WithFields(logrus.Fields{
		"function": "Put",
		"slot":     slot,
		"live":     t.liveLocked(),
	}).Debug("Handle allocated")

	return h
}

// Get returns the value for a token, or ErrInvalidHandle if the token is
// zero, stale, or already removed.
func (t *Table) Get(h Handle) (any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	slot, err := t.lookupLocked(h)
	if err != nil {
		return nil, err
	}
	return t.entries[slot].value, nil
}

// Remove consumes a token and returns the value it identified. The slot's
// generation is advanced so the token can never validate again.
func (t *Table) Remove(h Handle) (any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot, err := t.lookupLocked(h)
	if err != nil {
		return nil, err
	}

	value := t.entries[slot].value
	t.entries[slot].value = nil
	t.entries[slot].live = false
	t.entries[slot].generation++
	t.free = append(t.free, slot)

	logrus.WithFields(logrus.Fields{
		"function": "Remove",
		"slot":     slot,
		"live":     t.liveLocked(),
	}).Debug("Handle removed")

	return value, nil
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.liveLocked()
}

func (t *Table) lookupLocked(h Handle) (uintptr, error) {
	if h == 0 {
		return 0, fmt.Errorf("%w: zero token", ErrInvalidHandle)
	}

	slot := uintptr(h) & slotMask
	generation := uintptr(h) >> slotBits

	if int(slot) >= len(t.entries) {
		return 0, fmt.Errorf("%w: unknown slot %d", ErrInvalidHandle, slot)
	}
	e := t.entries[slot]
	if !e.live || e.generation != generation {
		return 0, fmt.Errorf("%w: stale token for slot %d", ErrInvalidHandle, slot)
	}
	return slot, nil
}

func (t *Table) liveLocked() int {
	return len(t.entries) - len(t.free)
}
