// pkg/event/event.go
package event

import (
	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// Type represents the type of event
type Type string

// Duel event types
const (
	ProjectileFired    Type = "projectile_fired"
	ProjectileRejected Type = "projectile_rejected"
	ProjectilesExpired Type = "projectiles_expired"
	ShipDestroyed      Type = "ship_destroyed"
	RoundOver          Type = "round_over"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// SubscriptionID identifies a registered handler so it can be removed.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Bus dispatches events synchronously to subscribers. It is owned by the
// simulation goroutine and is not safe for concurrent use.
type Bus struct {
	handlers map[Type][]subscription
	nextID   SubscriptionID
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) SubscriptionID {
	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a handler for a specific event type. It reports
// whether the subscription existed.
func (b *Bus) Unsubscribe(eventType Type, id SubscriptionID) bool {
	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish sends an event to all subscribed handlers in subscription order
func (b *Bus) Publish(event Event) {
	for _, s := range b.handlers[event.GetType()] {
		s.handler(event)
	}
}

// Specific event implementations

// ShipEvent contains information about ship-related events
type ShipEvent struct {
	BaseEvent
	Player   entity.PlayerID
	Position physics.Vector2D
}

// NewShipEvent creates a new ship event
func NewShipEvent(eventType Type, source interface{}, player entity.PlayerID, position physics.Vector2D) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Player:   player,
		Position: position,
	}
}

// ProjectileEvent describes a fire attempt, accepted or rejected
type ProjectileEvent struct {
	BaseEvent
	Owner    entity.PlayerID
	Position physics.Vector2D
	InFlight int
}

// NewProjectileEvent creates a new projectile event
func NewProjectileEvent(eventType Type, source interface{}, owner entity.PlayerID, position physics.Vector2D, inFlight int) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Owner:    owner,
		Position: position,
		InFlight: inFlight,
	}
}

// ExpiryEvent reports projectiles removed at the playfield edge in a tick
type ExpiryEvent struct {
	BaseEvent
	Removed   int
	Remaining int
}

// NewExpiryEvent creates a new expiry event
func NewExpiryEvent(source interface{}, removed, remaining int) *ExpiryEvent {
	return &ExpiryEvent{
		BaseEvent: BaseEvent{
			EventType: ProjectilesExpired,
			Source:    source,
		},
		Removed:   removed,
		Remaining: remaining,
	}
}

// RoundOverEvent announces the end of the round
type RoundOverEvent struct {
	BaseEvent
	Tick   uint64
	Winner entity.PlayerID
	Draw   bool
}

// NewRoundOverEvent creates a new round-over event
func NewRoundOverEvent(source interface{}, tick uint64, winner entity.PlayerID, draw bool) *RoundOverEvent {
	return &RoundOverEvent{
		BaseEvent: BaseEvent{
			EventType: RoundOver,
			Source:    source,
		},
		Tick:   tick,
		Winner: winner,
		Draw:   draw,
	}
}
