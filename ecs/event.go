package ecs

// EventType identifies different types of events
type EventType string

const (
	// EntityCreated is emitted once for every entity built by a World
	EntityCreated EventType = "entity_created"
	// EntityDestroyed is emitted once for every entity destroyed by a World
	EntityDestroyed EventType = "entity_destroyed"
)

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EntityCreatedEvent carries the new entity and the names of its components
type EntityCreatedEvent struct {
	Entity     Entity
	Components []string
}

// Type implements Event
func (EntityCreatedEvent) Type() EventType { return EntityCreated }

// EntityDestroyedEvent carries the destroyed entity
type EntityDestroyedEvent struct {
	Entity Entity
}

// Type implements Event
func (EntityDestroyedEvent) Type() EventType { return EntityDestroyed }

// EventHandler is a function that processes events
type EventHandler func(Event)

// SubscriptionID identifies a handler registered with an EventManager
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler EventHandler
}

// EventManager dispatches events synchronously, in subscription order
type EventManager struct {
	subscribers map[EventType][]subscription
	lastID      SubscriptionID
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscription),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) SubscriptionID {
	em.lastID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscription{id: em.lastID, handler: handler})
	return em.lastID
}

// Unsubscribe removes the handler registered under id
func (em *EventManager) Unsubscribe(id SubscriptionID) {
	for eventType, subs := range em.subscribers {
		kept := subs[:0:0]
		for _, sub := range subs {
			if sub.id != id {
				kept = append(kept, sub)
			}
		}
		if len(kept) == 0 {
			delete(em.subscribers, eventType)
		} else {
			em.subscribers[eventType] = kept
		}
	}
}

// Emit dispatches an event to all subscribed handlers
func (em *EventManager) Emit(event Event) {
	for _, sub := range em.subscribers[event.Type()] {
		sub.handler(event)
	}
}
