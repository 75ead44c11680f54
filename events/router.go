package events

import "github.com/sheikhrachel/go-gol-decay/model"

// Handler receives the cells that flipped during one completed tick.
// Renderers implement it and own their own coordinate-to-visual mapping.
type Handler interface {
	// HandleChanges is called synchronously after every tick, including ticks
	// with no changes.
	HandleChanges(generation int, changes []model.Change)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(generation int, changes []model.Change)

// HandleChanges calls f.
func (f HandlerFunc) HandleChanges(generation int, changes []model.Change) {
	f(generation, changes)
}

// Router fans tick results out to registered handlers.
//
// Dispatch is single-threaded and handlers run in registration order. The
// changes slice is shared between handlers and must not be modified.
type Router struct {
	handlers []Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Register adds a handler. Nil handlers are ignored.
func (r *Router) Register(h Handler) {
	if h == nil {
		return
	}
	r.handlers = append(r.handlers, h)
}

// Dispatch delivers one tick's changes to every handler.
func (r *Router) Dispatch(generation int, changes []model.Change) {
	for _, h := range r.handlers {
		h.HandleChanges(generation, changes)
	}
}

// HandlerCount returns the number of registered handlers.
func (r *Router) HandlerCount() int {
	return len(r.handlers)
}
