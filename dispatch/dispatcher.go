package dispatch

import (
	"log/slog"
)

// Dispatcher delivers every accepted snapshot to an ordered, immutable list
// of handlers. The list is finalized before the server starts serving, so
// concurrent dispatches from independent connections read it without any
// locking.
type Dispatcher struct {
	handlers []Handler
	log      *slog.Logger
}

func New(log *slog.Logger, handlers []Handler) *Dispatcher {
	return &Dispatcher{
		handlers: handlers,
		log:      log,
	}
}

// Dispatch invokes the handlers sequentially in registration order. A
// panicking handler is logged and the remaining handlers still run; by the
// time Dispatch returns, every handler has been given the event. Returns the
// number of handlers that panicked.
func (d *Dispatcher) Dispatch(event []byte) (failed int) {
	for i, handler := range d.handlers {
		if !d.invoke(i, handler, event) {
			failed++
		}
	}

	return failed
}

func (d *Dispatcher) invoke(i int, handler Handler, event []byte) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			d.log.Error("handler panicked", "handler", i, "panic", r)
		}
	}()

	handler.Handle(event)

	return true
}
