package c

/*
#include <stdlib.h>
#include <stdint.h>
#include <stdbool.h>

typedef struct TodoList TodoList;

typedef enum TODO_STATUS {
    TODO_STATUS_OK = 0,
    TODO_STATUS_NULL,
    TODO_STATUS_INVALID_TOKEN,
    TODO_STATUS_OUT_OF_RANGE,
    TODO_STATUS_INVALID_NOTE,
    TODO_STATUS_MALLOC
} TODO_STATUS;
*/
import "C"

import (
	"log"
	"os"
	"unsafe"

	"github.com/opd-ai/todocore"
	"github.com/opd-ai/todocore/handle"
)

// Global registry to manage App instances and prevent garbage collection
var instances = handle.NewTable()

func getInstance(listPtr unsafe.Pointer) *todocore.App {
	if listPtr == nil {
		return nil
	}
	v, err := instances.Get(handle.Handle(uintptr(listPtr)))
	if err != nil {
		return nil
	}
	return v.(*todocore.App)
}

//export TodoNew
func TodoNew(errorOut *C.TODO_STATUS) unsafe.Pointer {
	app, err := todocore.New(nil)
	if err != nil {
		if errorOut != nil {
			*errorOut = C.TODO_STATUS_MALLOC
		}
		return nil
	}

	if errorOut != nil {
		*errorOut = C.TODO_STATUS_OK
	}
	return unsafe.Pointer(uintptr(instances.Put(app)))
}

//export TodoKill
func TodoKill(listPtr unsafe.Pointer) {
	if listPtr == nil {
		return
	}

	v, err := instances.Remove(handle.Handle(uintptr(listPtr)))
	if err != nil {
		return
	}
	v.(*todocore.App).Kill()
}

//export TodoAdd
func TodoAdd(listPtr unsafe.Pointer, id C.int32_t, note *C.char, errorOut *C.TODO_STATUS) C.bool {
	if note == nil {
		if errorOut != nil {
			*errorOut = C.TODO_STATUS_NULL
		}
		return C.bool(false)
	}

	app := getInstance(listPtr)
	if app == nil {
		if errorOut != nil {
			*errorOut = C.TODO_STATUS_INVALID_TOKEN
		}
		return C.bool(false)
	}

	if err := app.Add(int32(id), C.GoString(note)); err != nil {
		if errorOut != nil {
			*errorOut = C.TODO_STATUS_INVALID_NOTE
		}
		return C.bool(false)
	}

	if errorOut != nil {
		*errorOut = C.TODO_STATUS_OK
	}
	return C.bool(true)
}

//export TodoCount
func TodoCount(listPtr unsafe.Pointer) C.int {
	app := getInstance(listPtr)
	if app == nil {
		return -1
	}

	count, err := app.Count()
	if err != nil {
		return -1
	}
	return C.int(count)
}

//export TodoGetIdAt
func TodoGetIdAt(listPtr unsafe.Pointer, index C.size_t, errorOut *C.TODO_STATUS) C.int32_t {
	app := getInstance(listPtr)
	if app == nil {
		if errorOut != nil {
			*errorOut = C.TODO_STATUS_INVALID_TOKEN
		}
		return -1
	}

	id, err := app.IDAt(int(index))
	if err != nil {
		if errorOut != nil {
			*errorOut = C.TODO_STATUS_OUT_OF_RANGE
		}
		return -1
	}

	if errorOut != nil {
		*errorOut = C.TODO_STATUS_OK
	}
	return C.int32_t(id)
}

// TodoGetNoteAt returns a newly allocated NUL-terminated copy of the note.
// The caller owns the copy and must release it through TodoStringFree
// exactly once. The copy is made with the C allocator, so no Go memory
// crosses the boundary.
//
//export TodoGetNoteAt
func TodoGetNoteAt(listPtr unsafe.Pointer, index C.size_t, errorOut *C.TODO_STATUS) *C.char {
	app := getInstance(listPtr)
	if app == nil {
		if errorOut != nil {
			*errorOut = C.TODO_STATUS_INVALID_TOKEN
		}
		return nil
	}

	note, err := app.NoteAt(int(index))
	if err != nil {
		if errorOut != nil {
			*errorOut = C.TODO_STATUS_OUT_OF_RANGE
		}
		return nil
	}

	if errorOut != nil {
		*errorOut = C.TODO_STATUS_OK
	}
	return C.CString(note)
}

//export TodoStringFree
func TodoStringFree(s *C.char) {
	if s == nil {
		return
	}
	C.free(unsafe.Pointer(s))
}

//export TodoInstanceCount
func TodoInstanceCount() C.int {
	return C.int(instances.Len())
}

//export TodoProcessString
func TodoProcessString(input *C.char) *C.char {
	if input == nil {
		return nil
	}
	return C.CString("Processed: " + C.GoString(input))
}

// Utility function to create a C header file for the bindings
func generateHeader() {
	header := `// Generated by todocore bindings
#ifndef _TODOCORE_H
#define _TODOCORE_H

#include <stddef.h>
#include <stdint.h>
#include <stdbool.h>

#ifdef __cplusplus
extern "C" {
#endif

typedef struct TodoList TodoList;

typedef enum TODO_STATUS {
	TODO_STATUS_OK = 0,
	TODO_STATUS_NULL,
	TODO_STATUS_INVALID_TOKEN,
	TODO_STATUS_OUT_OF_RANGE,
	TODO_STATUS_INVALID_NOTE,
	TODO_STATUS_MALLOC
} TODO_STATUS;

// Lifecycle
TodoList* TodoNew(TODO_STATUS* error);
void TodoKill(TodoList* list);

// Store operations
bool TodoAdd(TodoList* list, int32_t id, const char* note, TODO_STATUS* error);
int TodoCount(TodoList* list);
int32_t TodoGetIdAt(TodoList* list, size_t index, TODO_STATUS* error);

// Returns a newly allocated copy owned by the caller.
// Release it with TodoStringFree exactly once.
char* TodoGetNoteAt(TodoList* list, size_t index, TODO_STATUS* error);
void TodoStringFree(char* s);

// Diagnostics
int TodoInstanceCount(void);

// String transfer demo
char* TodoProcessString(const char* input);

#ifdef __cplusplus
}
#endif

#endif // _TODOCORE_H
`

	// Write the header to a file
	err := os.WriteFile("todocore.h", []byte(header), 0o644)
	if err != nil {
		log.Printf("Error writing header file: %v", err)
		return
	}
	log.Println("Successfully generated todocore.h")
}
