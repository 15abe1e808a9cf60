package appstate

import "sync"

//go:generate mockery --name "VisibilitySource|ConnectivitySource" --with-expecter --output mocks --outpkg mocks

// VisibilitySource reports whether the host currently shows the app and
// notifies when that changes.
type VisibilitySource interface {
	// Hidden reports whether the app is currently not visible.
	Hidden() bool

	// OnVisibilityChange subscribes fn to visibility changes.
	// The returned function removes the subscription and is safe to call more than once.
	OnVisibilityChange(fn func()) (remove func())
}

// ConnectivitySource reports the host's network online flag and notifies on
// transitions in either direction.
type ConnectivitySource interface {
	// OnLine returns the online flag. supported is false when the host cannot
	// report connectivity, in which case online carries no meaning.
	OnLine() (online, supported bool)

	// OnOnline subscribes fn to "went online" notifications.
	OnOnline(fn func()) (remove func())

	// OnOffline subscribes fn to "went offline" notifications.
	OnOffline(fn func()) (remove func())
}

// EventTarget is a concurrency-safe list of handlers for a single host event.
// Source implementations embed one per event they expose.
type EventTarget struct {
	mu       sync.Mutex
	nextID   uint64
	handlers []handlerEntry
}

type handlerEntry struct {
	id uint64
	fn func()
}

// Add subscribes fn. The returned remover is idempotent.
func (e *EventTarget) Add(fn func()) (remove func()) {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, handlerEntry{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(id) })
	}
}

func (e *EventTarget) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, h := range e.handlers {
		if h.id == id {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Dispatch calls every handler subscribed at the time of the call, in
// subscription order, on the caller's goroutine.
func (e *EventTarget) Dispatch() {
	e.mu.Lock()
	handlers := make([]handlerEntry, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.Unlock()

	for _, h := range handlers {
		h.fn()
	}
}

// Len returns the number of subscribed handlers.
func (e *EventTarget) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}
