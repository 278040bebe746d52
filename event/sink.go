package event

import "sync"

// Sink receives weapon events
// Emit runs on the simulation thread and must not block
type Sink interface {
	Emit(ev GameEvent)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ev GameEvent)

// Emit implements Sink
func (f SinkFunc) Emit(ev GameEvent) {
	f(ev)
}

// Discard drops every event
var Discard Sink = SinkFunc(func(GameEvent) {})

// Fanout forwards each event to every non-nil sink in order
type Fanout []Sink

// Emit implements Sink
func (f Fanout) Emit(ev GameEvent) {
	for _, s := range f {
		if s != nil {
			s.Emit(ev)
		}
	}
}

// Recorder keeps every event it receives, for test harnesses and replay
type Recorder struct {
	mu     sync.Mutex
	events []GameEvent
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit implements Sink
func (r *Recorder) Emit(ev GameEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Events returns a copy of recorded events in arrival order
func (r *Recorder) Events() []GameEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]GameEvent, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns recorded events matching t
func (r *Recorder) OfType(t EventType) []GameEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []GameEvent
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// Count returns how many events of type t were recorded
func (r *Recorder) Count(t EventType) int {
	return len(r.OfType(t))
}

// Reset drops all recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = r.events[:0]
	r.mu.Unlock()
}
