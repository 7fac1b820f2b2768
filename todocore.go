// Package todocore implements a small in-process Todo store built to be
// exposed across a C foreign-function boundary.
//
// The package itself is the safe Go surface: it owns the store, tombstones
// destroyed instances so use-after-destroy is a reported error, and keeps
// the manual create/destroy and string-release obligations confined to the
// flat boundary layers (capi and c).
//
// Example:
//
//	app, err := todocore.New(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Kill()
//
//	if err := app.Add(1, "buy milk"); err != nil {
//	    log.Fatal(err)
//	}
//
//	count, _ := app.Count()
//	for i := 0; i < count; i++ {
//	    id, _ := app.IDAt(i)
//	    note, _ := app.NoteAt(i)
//	    fmt.Printf("todo[%d]: %d %s\n", i, id, note)
//	}
package todocore

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/todocore/todo"
)

// ErrAppKilled indicates an operation on an App after Kill
var ErrAppKilled = errors.New("app already killed")

// ErrIndexOutOfRange is re-exported so boundary layers can translate
// accessor failures without importing the todo package.
var ErrIndexOutOfRange = todo.ErrIndexOutOfRange

// Options contains configuration options for creating an App instance.
//
//export TodoOptions
type Options struct {
	// InitialCapacity preallocates storage for this many records.
	InitialCapacity int
}

// NewOptions creates a new Options with default values.
//
//export TodoOptionsNew
func NewOptions() *Options {
	return &Options{
		InitialCapacity: 0,
	}
}

// App owns exactly one Todo store. One App corresponds to one opaque token
// on the C side. An App is not safe for concurrent use; sharing one App
// across goroutines requires external synchronization. Distinct Apps are
// fully independent.
//
//export TodoApp
type App struct {
	list   *todo.List
	killed bool
}

// New creates an App with its own empty store.
//
//export TodoAppNew
func New(options *Options) (*App, error) {
	if options == nil {
		options = NewOptions()
	}

	logrus.WithFields(logrus.Fields{
		"function":         "New",
		"initial_capacity": options.InitialCapacity,
	}).Info("Creating new todocore App")

	return &App{
		list: todo.NewList(options.InitialCapacity),
	}, nil
}

// Add appends a record to the store. A failed add leaves the store
// unchanged.
//
//export TodoAppAdd
func (a *App) Add(id int32, note string) error {
	if a.killed {
		return ErrAppKilled
	}
	return a.list.Add(id, note)
}

// Count returns the number of records in the store.
//
//export TodoAppCount
func (a *App) Count() (int, error) {
	if a.killed {
		return 0, ErrAppKilled
	}
	return a.list.Count(), nil
}

// IDAt returns the ID of the record at the given zero-based index.
//
//export TodoAppIDAt
func (a *App) IDAt(index int) (int32, error) {
	if a.killed {
		return 0, ErrAppKilled
	}
	record, err := a.list.At(index)
	if err != nil {
		return 0, err
	}
	return record.ID, nil
}

// NoteAt returns the note of the record at the given zero-based index.
// The returned string is an independent Go value; no native ownership
// crosses here; the copy-and-release protocol lives in the boundary
// layers only.
//
//export TodoAppNoteAt
func (a *App) NoteAt(index int) (string, error) {
	if a.killed {
		return "", ErrAppKilled
	}
	record, err := a.list.At(index)
	if err != nil {
		return "", err
	}
	return record.Note, nil
}

// Kill tombstones the App and releases its store. Every later operation
// returns ErrAppKilled. Calling Kill again is a no-op.
//
//export TodoAppKill
func (a *App) Kill() {
	if a.killed {
		return
	}

	logrus.WithFields(logrus.Fields{
		"function": "Kill",
		"count":    a.list.Count(),
	}).Info("Killing todocore App")

	a.killed = true
	a.list = nil
}
