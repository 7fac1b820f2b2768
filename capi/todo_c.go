package main

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/todocore"
	"github.com/opd-ai/todocore/handle"
	"github.com/opd-ai/todocore/limits"
)

// This is the main package required for building as c-shared
// It provides C-compatible wrappers for the Go todocore implementation

func main() {} // Required for c-shared build mode

// Status codes reported through the optional int32 out-parameter.
// Mirrored as TODO_STATUS_* in the generated header.
const (
	todoStatusOK           int32 = 0
	todoStatusNullArgument int32 = 1
	todoStatusInvalidToken int32 = 2
	todoStatusOutOfRange   int32 = 3
	todoStatusInvalidNote  int32 = 4
	todoStatusMalloc       int32 = 5 // reserved for allocation failure
)

// Global registries for live tokens and caller-owned string copies
var (
	apps = handle.NewTable()

	ownedStrings     = make(map[*byte][]byte)
	ownedStringsLock sync.Mutex
)

func setStatus(status *int32, code int32) {
	if status != nil {
		*status = code
	}
}

func getApp(token unsafe.Pointer) (*todocore.App, bool) {
	if token == nil {
		return nil, false
	}
	v, err := apps.Get(handle.Handle(uintptr(token)))
	if err != nil {
		return nil, false
	}
	return v.(*todocore.App), true
}

// goString copies a NUL-terminated byte sequence into a Go string.
func goString(s *byte) string {
	if s == nil {
		return ""
	}
	var out []byte
	for p := uintptr(unsafe.Pointer(s)); ; p++ {
		b := *(*byte)(unsafe.Pointer(p))
		if b == limits.Terminator {
			break
		}
		out = append(out, b)
	}
	return string(out)
}

// newOwnedString allocates a NUL-terminated copy of s and records it in the
// owned-string registry. Ownership of the returned pointer belongs to the
// caller until todo_string_free.
func newOwnedString(s string) *byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	buf[len(s)] = limits.Terminator

	ptr := &buf[0]

	ownedStringsLock.Lock()
	ownedStrings[ptr] = buf
	ownedStringsLock.Unlock()

	return ptr
}

//export todo_new
func todo_new() unsafe.Pointer {
	app, err := todocore.New(nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "todo_new",
			"error":    err.Error(),
		}).Error("Failed to create new todocore App")
		return nil
	}

	token := apps.Put(app)
	return unsafe.Pointer(uintptr(token))
}

//export todo_add
func todo_add(token unsafe.Pointer, id int32, note *byte, status *int32) bool {
	if token == nil || note == nil {
		setStatus(status, todoStatusNullArgument)
		return false
	}

	app, ok := getApp(token)
	if !ok {
		setStatus(status, todoStatusInvalidToken)
		return false
	}

	if err := app.Add(id, goString(note)); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "todo_add",
			"id":       id,
			"error":    err.Error(),
		}).Error("Failed to add todo")
		setStatus(status, todoStatusInvalidNote)
		return false
	}

	setStatus(status, todoStatusOK)
	return true
}

//export todo_count
func todo_count(token unsafe.Pointer) int {
	app, ok := getApp(token)
	if !ok {
		return -1
	}

	count, err := app.Count()
	if err != nil {
		return -1
	}
	return count
}

//export todo_get_id_at
func todo_get_id_at(token unsafe.Pointer, index int, status *int32) int32 {
	app, ok := getApp(token)
	if !ok {
		setStatus(status, todoStatusInvalidToken)
		return -1
	}

	id, err := app.IDAt(index)
	if err != nil {
		setStatus(status, todoStatusOutOfRange)
		return -1
	}

	setStatus(status, todoStatusOK)
	return id
}

//export todo_get_note_at
func todo_get_note_at(token unsafe.Pointer, index int, status *int32) *byte {
	app, ok := getApp(token)
	if !ok {
		setStatus(status, todoStatusInvalidToken)
		return nil
	}

	note, err := app.NoteAt(index)
	if err != nil {
		if !errors.Is(err, todocore.ErrIndexOutOfRange) {
			logrus.WithFields(logrus.Fields{
				"function": "todo_get_note_at",
				"index":    index,
				"error":    err.Error(),
			}).Error("Failed to read note")
		}
		setStatus(status, todoStatusOutOfRange)
		return nil
	}

	setStatus(status, todoStatusOK)
	return newOwnedString(note)
}

//export todo_string_free
func todo_string_free(s *byte) {
	if s == nil {
		return
	}

	ownedStringsLock.Lock()
	defer ownedStringsLock.Unlock()

	if _, ok := ownedStrings[s]; !ok {
		logrus.WithFields(logrus.Fields{
			"function": "todo_string_free",
		}).Warn("Release of unknown or already freed string")
		return
	}
	delete(ownedStrings, s)
}

//export todo_destroy
func todo_destroy(token unsafe.Pointer) {
	if token == nil {
		return
	}

	v, err := apps.Remove(handle.Handle(uintptr(token)))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "todo_destroy",
			"error":    err.Error(),
		}).Warn("Destroy of invalid or already destroyed token")
		return
	}
	v.(*todocore.App).Kill()
}

//export todo_instance_count
func todo_instance_count() int {
	return apps.Len()
}

//export todo_string_count
func todo_string_count() int {
	ownedStringsLock.Lock()
	defer ownedStringsLock.Unlock()
	return len(ownedStrings)
}

//export todo_process_string
func todo_process_string(input *byte) *byte {
	if input == nil {
		return nil
	}
	return newOwnedString("Processed: " + goString(input))
}
