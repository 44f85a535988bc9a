package sim

type EventType int

const (
	EventHit EventType = iota
	EventMiss
	EventRespawn
)

func (t EventType) String() string {
	switch t {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventRespawn:
		return "respawn"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	X, Y  float64 // ball centre in scene coordinates
	Score int     // score after the event was applied
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
