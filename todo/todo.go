// Package todo implements the Todo record and the ordered Todo store that
// back the todocore boundary API.
//
// Example:
//
//	l := todo.NewList(0)
//	if err := l.Add(1, "buy milk"); err != nil {
//	    log.Fatal(err)
//	}
//	count := l.Count()
//	record, err := l.At(0)
package todo

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/todocore/limits"
)

// ErrIndexOutOfRange indicates an accessor index outside [0, Count())
var ErrIndexOutOfRange = errors.New("index out of range")

// Todo is a single record in the store. Fields are never mutated after
// creation; the store only appends.
//
//export TodoRecord
type Todo struct {
	ID   int32
	Note string
}

// List is an ordered, append-only sequence of Todo records. Insertion order
// is preserved and duplicate IDs are permitted. A List is not safe for
// concurrent use; callers that share one List across goroutines must
// synchronize externally.
//
//export TodoList
type List struct {
	records []Todo
}

// NewList creates an empty List. A non-zero initial capacity preallocates
// the backing storage.
//
//export TodoListNew
func NewList(initialCapacity int) *List {
	if initialCapacity < 0 {
		initialCapacity = 0
	}

	logrus.WithFields(logrus.Fields{
		"function":         "NewList",
		"initial_capacity": initialCapacity,
	}).Debug("Creating new todo list")

	return &List{
		records: make([]Todo, 0, initialCapacity),
	}
}

// Add appends a new record. The note is validated for boundary transfer
// first; on validation failure the list is left unchanged.
//
//export TodoListAdd
func (l *List) Add(id int32, note string) error {
	if err := limits.ValidateNote(note); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Add",
			"id":       id,
			"error":    err.Error(),
		}).Error("Rejected invalid note")
		return fmt.Errorf("add todo: %w", err)
	}

	l.records = append(l.records, Todo{ID: id, Note: note})

	logrus.WithFields(logrus.Fields{
		"function": "Add",
		"id":       id,
		"count":    len(l.records),
	}).Debug("Todo added")

	return nil
}

// Count returns the number of records in the list.
//
//export TodoListCount
func (l *List) Count() int {
	return len(l.records)
}

// At returns the record at the given zero-based index, or
// ErrIndexOutOfRange if the index is outside [0, Count()).
//
//export TodoListAt
func (l *List) At(index int) (Todo, error) {
	if index < 0 || index >= len(l.records) {
		return Todo{}, fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, index, len(l.records))
	}
	return l.records[index], nil
}
