package dispatch

import (
	"errors"
	"io"
	"log/slog"

	json "github.com/json-iterator/go"
)

// Handler consumes a single raw game state snapshot. The dispatcher observes
// no return value: a handler reports its own failures through its own
// logging, and a panicking handler is contained at the dispatch site.
//
// The event slice is shared between all registered handlers and must not be
// mutated; retain a copy if the bytes are needed past the call.
type Handler interface {
	Handle(event []byte)
}

// Func adapts a plain function to the Handler interface.
type Func func(event []byte)

func (f Func) Handle(event []byte) {
	f(event)
}

// Typed adapts a function taking an already-deserialized snapshot. Events
// that fail to decode into T are logged and skipped; the game keeps sending
// snapshots either way.
func Typed[T any](fn func(state T)) Handler {
	return Func(func(event []byte) {
		var state T

		iterator := json.ConfigDefault.BorrowIterator(event)
		iterator.ReadVal(&state)
		err := iterator.Error
		json.ConfigDefault.ReturnIterator(iterator)

		if err != nil && !errors.Is(err, io.EOF) {
			slog.Error("discarding undecodable snapshot", "err", err)
			return
		}

		fn(state)
	})
}
