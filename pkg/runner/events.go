package runner

import "sync"

// EventLevel grades an engine event.
type EventLevel string

const (
	LevelDebug EventLevel = "debug"
	LevelInfo  EventLevel = "info"
	LevelWarn  EventLevel = "warn"
	LevelError EventLevel = "error"
)

// Event is one entry of the run's append-only progress stream.
type Event struct {
	Level    EventLevel `json:"level"`
	Stage    string     `json:"stage"`
	Platform string     `json:"platform,omitempty"`
	Message  string     `json:"message"`
}

// Sink receives engine progress events. Implementations must not block the
// engine; the engine appends and moves on.
type Sink interface {
	Event(ev Event)
}

// QueueSink delivers events in append order over an unbounded in-memory
// queue, so the producing engine never blocks on a slow consumer. A drain
// goroutine feeds the Events channel; Close marks the producer side done and
// the channel closes once the queue empties.
type QueueSink struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Event
	closed bool
	out    chan Event
}

// NewQueueSink creates a QueueSink and starts its drain goroutine.
func NewQueueSink() *QueueSink {
	s := &QueueSink{out: make(chan Event)}
	s.cond = sync.NewCond(&s.mu)
	go s.drain()
	return s
}

// Event appends one event. Events after Close are dropped.
func (s *QueueSink) Event(ev Event) {
	s.mu.Lock()
	if !s.closed {
		s.queue = append(s.queue, ev)
		s.cond.Signal()
	}
	s.mu.Unlock()
}

// Events returns the ordered receive side of the stream.
func (s *QueueSink) Events() <-chan Event {
	return s.out
}

// Close marks the producer side done. Pending events are still delivered.
func (s *QueueSink) Close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Signal()
	s.mu.Unlock()
}

func (s *QueueSink) drain() {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 {
			s.mu.Unlock()
			close(s.out)
			return
		}
		ev := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()
		s.out <- ev
	}
}

func info(sink Sink, stage, message string) {
	sink.Event(Event{Level: LevelInfo, Stage: stage, Message: message})
}

func warn(sink Sink, stage, message string) {
	sink.Event(Event{Level: LevelWarn, Stage: stage, Message: message})
}

func platformEvent(sink Sink, level EventLevel, platformName, message string) {
	sink.Event(Event{Level: level, Stage: "platform", Platform: platformName, Message: message})
}
