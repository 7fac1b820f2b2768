// Package main provides the flat C-convention API for todocore, enabling
// cross-language interoperability with C applications and other language
// bindings.
//
// # Overview
//
// The capi package exposes the Todo store through a fixed set of entry
// points operating on opaque tokens and NUL-terminated byte strings. The
// token returned by todo_new identifies one store; every other entry point
// borrows the token, except todo_destroy, which consumes it.
//
// # Build Instructions
//
// To build as a C shared library:
//
//	go build -buildmode=c-shared -o libtodocore.so ./capi/
//
// # C API Usage
//
//	TodoList *list = todo_new();
//
//	int32_t status;
//	todo_add(list, 1, "buy milk", &status);
//
//	int count = todo_count(list);
//	for (int i = 0; i < count; i++) {
//	    int32_t id = todo_get_id_at(list, i, &status);
//	    char *note = todo_get_note_at(list, i, &status);
//	    printf("%d: %s\n", id, note);
//	    todo_string_free(note); // required for every non-NULL note
//	}
//
//	todo_destroy(list);
//
// # Ownership Rules
//
//   - todo_new transfers ownership of the token to the caller; the caller
//     must pass it to todo_destroy exactly once.
//   - todo_get_note_at and todo_process_string return a newly allocated,
//     NUL-terminated copy owned by the caller; every non-NULL result must
//     be released through todo_string_free, and only through it. Releasing
//     through any other free primitive pairs the wrong allocator with the
//     memory, which is undefined behavior.
//   - All other parameters are borrowed for the duration of the call.
//
// # Handle Safety
//
// Tokens carry a generation counter. Calling any entry point with a NULL,
// destroyed, or otherwise stale token is detected and reported through the
// status out-parameter (or the function's sentinel return); it is never
// undefined behavior. todo_destroy on an already destroyed token is a
// detected no-op.
//
// # Error Handling
//
// Entry points that can fail take an optional int32 status out-parameter
// (pass NULL to ignore it) and additionally signal failure through the
// return value: false for todo_add, -1 for todo_count and todo_get_id_at,
// NULL for todo_get_note_at. A failed call never mutates the store and
// never allocates.
//
// # Thread Safety
//
// The token registries are internally synchronized, so distinct tokens are
// safe to use concurrently from different threads. A single token is not
// protected against concurrent use; callers sharing one token across
// threads must synchronize externally.
//
// # Diagnostics
//
// todo_instance_count and todo_string_count report the number of live
// tokens and outstanding caller-owned strings. Both return to their prior
// values after balanced create/destroy and get/free cycles, which makes
// leak checks in embedding test suites exact.
package main
