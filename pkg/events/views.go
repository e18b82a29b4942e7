package events

import (
	"sync"

	"menuqr/entity"
)

// ViewEmitter fans recorded menu views out to subscribers. Each published
// view is delivered to every live subscriber exactly once; unsubscribing is
// the returned func. Replaces the ad-hoc listener-list-on-an-object pattern.
type ViewEmitter struct {
	mu   sync.Mutex
	subs map[int]func(entity.MenuView)
	next int
}

func NewViewEmitter() *ViewEmitter {
	return &ViewEmitter{subs: make(map[int]func(entity.MenuView))}
}

func (e *ViewEmitter) Subscribe(fn func(entity.MenuView)) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.next
	e.next++
	e.subs[id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

func (e *ViewEmitter) Publish(v entity.MenuView) {
	e.mu.Lock()
	fns := make([]func(entity.MenuView), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
